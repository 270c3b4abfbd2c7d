// Package puzzle holds the rules of the 3×3×3 toggle puzzle: coordinates,
// the neighbor flip, random scrambles and the selection cursor. It has no
// knowledge of rendering or input.
package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the edge length of the cube grid.
const Size = 3

// Cells is the number of cubes in the grid.
const Cells = Size * Size * Size

// Coord addresses one cube. Valid components are 0..Size-1.
type Coord struct {
	X, Y, Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// ParseCoord reads "x,y,z" as printed by Coord.String, with or without
// the parentheses. The result must be inside the grid.
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(strings.Trim(strings.TrimSpace(s), "()"), ",")
	if len(parts) != 3 {
		return Coord{}, fmt.Errorf("invalid coordinate %q: want x,y,z", s)
	}

	var v [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
		v[i] = n
	}

	c := Coord{X: v[0], Y: v[1], Z: v[2]}
	if !c.InBounds() {
		return Coord{}, fmt.Errorf("coordinate %v outside the %dx%dx%d grid", c, Size, Size, Size)
	}
	return c, nil
}

// InBounds reports whether every component lies inside the grid.
func (c Coord) InBounds() bool {
	return inRange(c.X) && inRange(c.Y) && inRange(c.Z)
}

func inRange(v int) bool {
	return v >= 0 && v < Size
}

// Index is the x-major linear index of c, in 0..Cells-1.
func (c Coord) Index() int {
	return (c.X*Size+c.Y)*Size + c.Z
}

// CoordAt is the inverse of Coord.Index.
func CoordAt(index int) Coord {
	return Coord{
		X: index / (Size * Size),
		Y: index / Size % Size,
		Z: index % Size,
	}
}

// All returns every coordinate in index order.
func All() []Coord {
	coords := make([]Coord, Cells)
	for i := range coords {
		coords[i] = CoordAt(i)
	}
	return coords
}

// Neighborhood returns c and every cell within Chebyshev distance 1 of it,
// skipping cells outside the grid. Offsets are visited with dx outermost
// and dz innermost, each from -1 to 1.
func Neighborhood(c Coord) []Coord {
	out := make([]Coord, 0, 27)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				n := Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
				if n.InBounds() {
					out = append(out, n)
				}
			}
		}
	}
	return out
}
