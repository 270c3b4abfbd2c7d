package puzzle

// Axis names one grid dimension.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Cursor is the keyboard selection. Moves are clamped to the grid.
type Cursor struct {
	Coord
}

// Move shifts the cursor by delta along axis, stopping at the grid edge.
// It reports whether the position changed.
func (c *Cursor) Move(axis Axis, delta int) bool {
	var v *int
	switch axis {
	case AxisX:
		v = &c.X
	case AxisY:
		v = &c.Y
	case AxisZ:
		v = &c.Z
	default:
		return false
	}

	next := min(max(*v+delta, 0), Size-1)
	if next == *v {
		return false
	}
	*v = next
	return true
}
