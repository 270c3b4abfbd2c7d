package game_test

import (
	"testing"

	"github.com/plus3/tileswap/ecs"
	"github.com/plus3/tileswap/game"
	"github.com/plus3/tileswap/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newWorld(t *testing.T, iterations int32) *game.World {
	t.Helper()
	opts := game.DefaultOptions()
	opts.Iterations = iterations
	opts.Seed = 42
	return game.NewWorld(ecs.NewComponentRegistry(), opts, zaptest.NewLogger(t))
}

func TestNewWorldWithoutIterationsIsWhite(t *testing.T) {
	w := newWorld(t, 0)

	grid := w.Snapshot()
	assert.Equal(t, puzzle.Cells, grid.Count(puzzle.White))
	assert.Equal(t, puzzle.Coord{}, w.Cursor())
	assert.Equal(t, []puzzle.Coord{{}}, w.HighlightedCells())
	assert.Equal(t, puzzle.Cells, w.Storage.CollectStats().TotalEntityCount)
}

func TestNewWorldScrambles(t *testing.T) {
	w := newWorld(t, 25)

	flipLog := w.FlipLog()
	require.Len(t, flipLog.LastScramble, 25)
	assert.Equal(t, 1, flipLog.Randomizes)

	var want puzzle.Grid
	for _, c := range flipLog.LastScramble {
		want.Flip(c)
	}
	assert.Equal(t, want, w.Snapshot())
}

func TestSameSeedSameScramble(t *testing.T) {
	assert.Equal(t, newWorld(t, 12).Snapshot(), newWorld(t, 12).Snapshot())
}

func TestFlipCornerAndCenter(t *testing.T) {
	w := newWorld(t, 0)

	assert.Equal(t, 8, w.Flip(puzzle.Coord{X: 2, Y: 0, Z: 2}))
	grid := w.Snapshot()
	assert.Equal(t, 8, grid.Count(puzzle.Black))

	w.Flip(puzzle.Coord{X: 2, Y: 0, Z: 2})
	assert.Equal(t, 27, w.Flip(puzzle.Coord{X: 1, Y: 1, Z: 1}))
	grid = w.Snapshot()
	assert.Equal(t, puzzle.Cells, grid.Count(puzzle.Black))
}

func TestFlipTwiceThroughActions(t *testing.T) {
	w := newWorld(t, 9)
	before := w.Snapshot()

	w.Push(game.FlipAt(puzzle.Coord{X: 1, Y: 2, Z: 0}))
	w.Tick(0)
	assert.NotEqual(t, before, w.Snapshot())

	w.Push(game.FlipAt(puzzle.Coord{X: 1, Y: 2, Z: 0}))
	w.Tick(0)
	assert.Equal(t, before, w.Snapshot())
	assert.Equal(t, 2, w.FlipLog().Flips)
}

func TestFlipSelectedUsesCursor(t *testing.T) {
	w := newWorld(t, 0)

	w.Push(
		game.MoveCursor(puzzle.AxisX, 1),
		game.MoveCursor(puzzle.AxisY, 1),
		game.MoveCursor(puzzle.AxisZ, 1),
		game.FlipSelected(),
	)
	w.Tick(0)

	assert.Equal(t, puzzle.Coord{X: 1, Y: 1, Z: 1}, w.Cursor())
	grid := w.Snapshot()
	assert.Equal(t, puzzle.Cells, grid.Count(puzzle.Black))
}

func TestActionsApplyInQueueOrder(t *testing.T) {
	w := newWorld(t, 0)

	w.Push(game.FlipSelected(), game.MoveCursor(puzzle.AxisX, 1))
	w.Tick(0)

	grid := w.Snapshot()
	assert.Equal(t, 8, grid.Count(puzzle.Black))
	assert.Equal(t, puzzle.Black, grid.At(puzzle.Coord{}))
	assert.Equal(t, puzzle.Coord{X: 1}, w.Cursor())
	assert.Equal(t, []puzzle.Coord{{X: 1}}, w.HighlightedCells())

	w.Push(game.Randomize(), game.SetIterations(50))
	w.Tick(0)

	assert.Empty(t, w.FlipLog().LastScramble)
	assert.Equal(t, int32(50), w.Settings().Iterations)
	grid = w.Snapshot()
	assert.Equal(t, puzzle.Cells, grid.Count(puzzle.White))
}

func TestCursorStaysInBoundsAndKeepsOneHighlight(t *testing.T) {
	w := newWorld(t, 3)

	moves := []game.Action{
		game.MoveCursor(puzzle.AxisX, -1),
		game.MoveCursor(puzzle.AxisZ, 1),
		game.MoveCursor(puzzle.AxisZ, 1),
		game.MoveCursor(puzzle.AxisZ, 1),
		game.MoveCursor(puzzle.AxisY, 1),
		game.MoveCursor(puzzle.AxisX, 1),
		game.MoveCursor(puzzle.AxisY, -1),
		game.MoveCursor(puzzle.AxisY, -1),
	}
	for i := 0; i < 4; i++ {
		for _, move := range moves {
			w.Push(move)
			w.Tick(1.0 / 60)

			c := w.Cursor()
			require.True(t, c.InBounds(), "cursor left the grid: %v", c)
			require.Equal(t, []puzzle.Coord{c}, w.HighlightedCells())
		}
	}

	// Several moves inside one frame still leave a single tag.
	w.Push(game.MoveCursor(puzzle.AxisX, -1), game.MoveCursor(puzzle.AxisY, 1), game.MoveCursor(puzzle.AxisZ, -1))
	w.Tick(0)
	assert.Equal(t, []puzzle.Coord{w.Cursor()}, w.HighlightedCells())
}

func TestHighlightMoveKeepsColors(t *testing.T) {
	w := newWorld(t, 17)
	before := w.Snapshot()

	w.Push(game.MoveCursor(puzzle.AxisX, 1))
	w.Tick(0)
	w.Push(game.MoveCursor(puzzle.AxisX, 1))
	w.Tick(0)

	assert.Equal(t, before, w.Snapshot())
}

func TestRandomizeWithZeroIterations(t *testing.T) {
	w := newWorld(t, 30)

	w.Push(game.SetIterations(0), game.Randomize())
	w.Tick(0)

	grid := w.Snapshot()
	assert.Equal(t, puzzle.Cells, grid.Count(puzzle.White))
	assert.Empty(t, w.FlipLog().LastScramble)
	assert.Equal(t, 2, w.FlipLog().Randomizes)
}

func TestSetIterationsClamps(t *testing.T) {
	w := newWorld(t, 0)

	w.Push(game.SetIterations(-4))
	w.Tick(0)
	assert.Equal(t, int32(0), w.Settings().Iterations)

	w.Push(game.SetIterations(5000))
	w.Tick(0)
	assert.Equal(t, w.Settings().MaxIterations, w.Settings().Iterations)
}

func TestOrbitAccumulates(t *testing.T) {
	w := newWorld(t, 0)

	w.Push(game.OrbitBy(0.1, 0), game.OrbitBy(0.1, -0.1))
	w.Tick(0)
	w.Push(game.OrbitBy(0, -0.1))
	w.Tick(0)

	assert.InDelta(t, 0.2, w.Orbit().Pitch, 1e-6)
	assert.InDelta(t, -0.2, w.Orbit().Yaw, 1e-6)
}

func TestActionsAreConsumedOnce(t *testing.T) {
	w := newWorld(t, 0)

	w.Push(game.FlipAt(puzzle.Coord{}))
	w.Tick(0)
	w.Tick(0)

	assert.Equal(t, 1, w.FlipLog().Flips)
	assert.Equal(t, 8, w.FlipLog().CellsToggled)
}

func TestCubePositionIsCentered(t *testing.T) {
	center := game.CubePosition(puzzle.Coord{X: 1, Y: 1, Z: 1}, 2)
	assert.Equal(t, float32(0), center.Len())

	corner := game.CubePosition(puzzle.Coord{X: 2, Y: 0, Z: 2}, 2)
	assert.Equal(t, [3]float32{2, -2, 2}, [3]float32(corner))
}

func TestActionKindNames(t *testing.T) {
	assert.Equal(t, "flip-at", game.ActionFlipAt.String())
	assert.Equal(t, "unknown", game.ActionKind(99).String())
}

func TestCubeAtFollowsHighlightMoves(t *testing.T) {
	w := newWorld(t, 0)

	before, ok := w.CubeAt(puzzle.Coord{})
	require.True(t, ok)

	w.Push(game.MoveCursor(puzzle.AxisY, 1))
	w.Tick(0)

	after, ok := w.CubeAt(puzzle.Coord{})
	require.True(t, ok)
	assert.NotEqual(t, before, after, "losing the tag moves the cube to another archetype")
	assert.Equal(t, puzzle.Coord{}, ecs.ReadComponent[game.Cell](w.Storage, after).Coord)

	_, ok = w.CubeAt(puzzle.Coord{X: 3})
	assert.False(t, ok)
}
