package game

import (
	"math/rand/v2"

	"github.com/plus3/tileswap/ecs"
	"github.com/plus3/tileswap/puzzle"
)

// shadeAt returns the Shade of the cube at c, or nil if the board has no
// live cube there.
func shadeAt(storage *ecs.Storage, board *Board, c puzzle.Coord) *Shade {
	if !c.InBounds() {
		return nil
	}
	id, ok := storage.ResolveEntityRef(board.Cubes[c.Index()])
	if !ok {
		return nil
	}
	return ecs.ReadComponent[Shade](storage, id)
}

// flip applies the neighbor rule to the cubes around c and returns how
// many were toggled.
func flip(storage *ecs.Storage, board *Board, c puzzle.Coord) int {
	toggled := 0
	for _, n := range puzzle.Neighborhood(c) {
		if shade := shadeAt(storage, board, n); shade != nil {
			shade.Color = shade.Color.Toggle()
			toggled++
		}
	}
	return toggled
}

// scramble whitens every cube and then flips n random cells. It returns the
// flipped coordinates.
func scramble(storage *ecs.Storage, board *Board, rng *rand.Rand, n int) []puzzle.Coord {
	for _, c := range puzzle.All() {
		if shade := shadeAt(storage, board, c); shade != nil {
			shade.Color = puzzle.White
		}
	}

	coords := puzzle.RandomCoords(rng, n)
	for _, c := range coords {
		flip(storage, board, c)
	}
	return coords
}

// snapshot copies the cube colors into a puzzle.Grid.
func snapshot(storage *ecs.Storage, board *Board) puzzle.Grid {
	var g puzzle.Grid
	for _, c := range puzzle.All() {
		if shade := shadeAt(storage, board, c); shade != nil {
			g.Set(c, shade.Color)
		}
	}
	return g
}
