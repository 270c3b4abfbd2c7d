package game

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/tileswap/ecs"
	"github.com/plus3/tileswap/puzzle"
)

// Cell is the grid coordinate of a cube entity.
type Cell struct {
	puzzle.Coord
}

// Transform places a cube inside the rotating group.
type Transform struct {
	Position mgl32.Vec3
	Size     float32
}

// Shade is the cube's current color.
type Shade struct {
	Color puzzle.Color
}

// Highlighted tags the cube under the keyboard cursor. Exactly one cube
// carries it at the end of every frame.
type Highlighted struct{}

// Board finds cube entities by puzzle.Coord.Index.
type Board struct {
	Cubes [puzzle.Cells]*ecs.EntityRef
}

// Selection is the keyboard cursor and the cell currently tagged
// Highlighted.
type Selection struct {
	Cursor puzzle.Cursor
	Marked puzzle.Coord
}

// Orbit is the rotation of the cube group in radians.
type Orbit struct {
	Pitch float32
	Yaw   float32
}

// Settings holds the randomize slider.
type Settings struct {
	Iterations    int32
	MaxIterations int32
}

// Random is the source for scrambles.
type Random struct {
	Rand *rand.Rand
}

// FlipLog counts what the player and the scrambler did.
type FlipLog struct {
	Flips        int
	CellsToggled int
	Randomizes   int
	LastScramble []puzzle.Coord
}

// RegisterComponents registers every entity component used by the game.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Cell](registry)
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Shade](registry)
	ecs.RegisterComponent[Highlighted](registry)
}
