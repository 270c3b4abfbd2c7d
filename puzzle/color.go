package puzzle

// Color is the binary state of a cube.
type Color uint8

const (
	White Color = iota
	Black
)

// Toggle returns White for Black and Black for anything else.
func (c Color) Toggle() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// RGB is the display color of c.
func (c Color) RGB() [3]uint8 {
	if c == Black {
		return [3]uint8{0, 0, 0}
	}
	return [3]uint8{255, 255, 255}
}
