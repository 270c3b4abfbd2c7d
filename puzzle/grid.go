package puzzle

import (
	"math/rand/v2"
	"strings"
)

// Grid is a value snapshot of all cube colors, indexed by Coord.Index. The
// zero Grid is all white.
type Grid [Cells]Color

// At returns the color at c. c must be in bounds.
func (g *Grid) At(c Coord) Color {
	return g[c.Index()]
}

// Set stores color at c. c must be in bounds.
func (g *Grid) Set(c Coord, color Color) {
	g[c.Index()] = color
}

// Flip toggles c and its neighborhood and returns how many cells changed.
// Out of range coordinates flip only their in-range neighbors.
func (g *Grid) Flip(c Coord) int {
	cells := Neighborhood(c)
	for _, n := range cells {
		g[n.Index()] = g[n.Index()].Toggle()
	}
	return len(cells)
}

// Reset makes every cell white.
func (g *Grid) Reset() {
	*g = Grid{}
}

// Randomize resets the grid and then flips n uniformly random cells. A
// non-positive n leaves the grid white. The flipped coordinates are
// returned in order.
func (g *Grid) Randomize(rng *rand.Rand, n int) []Coord {
	g.Reset()
	flips := RandomCoords(rng, n)
	for _, c := range flips {
		g.Flip(c)
	}
	return flips
}

// RandomCoords draws n coordinates uniformly from the grid.
func RandomCoords(rng *rand.Rand, n int) []Coord {
	if n <= 0 {
		return nil
	}
	coords := make([]Coord, n)
	for i := range coords {
		coords[i] = Coord{X: rng.IntN(Size), Y: rng.IntN(Size), Z: rng.IntN(Size)}
	}
	return coords
}

// Count returns the number of cells with the given color.
func (g *Grid) Count(color Color) int {
	n := 0
	for _, c := range g {
		if c == color {
			n++
		}
	}
	return n
}

// String draws the grid as Size layers (y from top to bottom), each a
// Size×Size block with x across and z down. '#' is black, '.' white.
func (g *Grid) String() string {
	var b strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for z := 0; z < Size; z++ {
			for x := 0; x < Size; x++ {
				if g.At(Coord{X: x, Y: y, Z: z}) == Black {
					b.WriteByte('#')
				} else {
					b.WriteByte('.')
				}
			}
			b.WriteByte('\n')
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
