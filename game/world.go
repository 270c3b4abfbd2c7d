// Package game wires the toggle puzzle into an ECS world: one entity per
// cube, singletons for the cursor, camera orbit and settings, and systems
// that turn queued actions into flips.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/tileswap/ecs"
	"github.com/plus3/tileswap/puzzle"
	"go.uber.org/zap"
)

// Options configures a new World.
type Options struct {
	Iterations    int32
	MaxIterations int32
	// Seed for scrambles; zero picks one from the clock.
	Seed     uint64
	Spacing  float32
	CubeSize float32
}

// DefaultOptions returns the standard layout: unit cubes two units apart
// and a ten flip scramble.
func DefaultOptions() Options {
	return Options{
		Iterations:    10,
		MaxIterations: 100,
		Spacing:       2,
		CubeSize:      1,
	}
}

// World is a running puzzle. It is not safe for concurrent use.
type World struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler

	input     *ecs.Singleton[Input]
	board     *ecs.Singleton[Board]
	selection *ecs.Singleton[Selection]
	orbit     *ecs.Singleton[Orbit]
	settings  *ecs.Singleton[Settings]
	random    *ecs.Singleton[Random]
	flipLog   *ecs.Singleton[FlipLog]

	log *zap.Logger
}

// NewWorld spawns the cubes into a storage built on registry, registers the
// game systems after any front end systems given in pre, and scrambles the
// board once. registry must not have had the game components registered
// yet; NewWorld does that.
func NewWorld(registry *ecs.ComponentRegistry, opts Options, log *zap.Logger, pre ...ecs.System) *World {
	if log == nil {
		log = zap.NewNop()
	}
	RegisterComponents(registry)

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	storage := ecs.NewStorage(registry)
	w := &World{
		Storage:   storage,
		Scheduler: ecs.NewScheduler(storage),
		input:     ecs.NewSingleton(storage, Input{}),
		selection: ecs.NewSingleton(storage, Selection{}),
		orbit:     ecs.NewSingleton(storage, Orbit{}),
		settings: ecs.NewSingleton(storage, Settings{
			Iterations:    opts.Iterations,
			MaxIterations: opts.MaxIterations,
		}),
		random:  ecs.NewSingleton(storage, Random{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}),
		flipLog: ecs.NewSingleton(storage, FlipLog{}),
		log:     log,
	}

	var board Board
	for _, c := range puzzle.All() {
		components := []any{
			Cell{Coord: c},
			Shade{Color: puzzle.White},
			Transform{Position: CubePosition(c, opts.Spacing), Size: opts.CubeSize},
		}
		if c == (puzzle.Coord{}) {
			components = append(components, Highlighted{})
		}
		board.Cubes[c.Index()] = storage.CreateEntityRef(storage.Spawn(components...))
	}
	w.board = ecs.NewSingleton(storage, board)

	for _, system := range pre {
		w.Scheduler.Register(system)
	}
	w.Scheduler.Register(&OrbitSystem{})
	w.Scheduler.Register(&ActionSystem{Log: log})
	w.Scheduler.Register(&HighlightSystem{Log: log})
	w.Scheduler.Register(&InputClearSystem{})

	w.Randomize()
	log.Info("world ready",
		zap.Int32("iterations", opts.Iterations),
		zap.Uint64("seed", seed))
	return w
}

// CubePosition is the center of the cube at c, with the grid centered on
// the origin.
func CubePosition(c puzzle.Coord, spacing float32) mgl32.Vec3 {
	const mid = (puzzle.Size - 1) / 2.0
	return mgl32.Vec3{
		(float32(c.X) - mid) * spacing,
		(float32(c.Y) - mid) * spacing,
		(float32(c.Z) - mid) * spacing,
	}
}

// Push queues actions for the next Tick.
func (w *World) Push(actions ...Action) {
	w.input.Get().Push(actions...)
}

// Tick runs one frame.
func (w *World) Tick(dt float64) {
	w.Scheduler.Once(dt)
}

// Randomize whitens the board and applies the slider's number of random
// flips right away.
func (w *World) Randomize() {
	counters := w.flipLog.Get()
	counters.LastScramble = scramble(w.Storage, w.board.Get(), w.random.Get().Rand, int(w.settings.Get().Iterations))
	counters.Randomizes++
}

// Flip applies the neighbor rule at c right away and returns the number of
// cubes toggled.
func (w *World) Flip(c puzzle.Coord) int {
	toggled := flip(w.Storage, w.board.Get(), c)
	counters := w.flipLog.Get()
	counters.Flips++
	counters.CellsToggled += toggled
	return toggled
}

// Snapshot returns the current colors.
func (w *World) Snapshot() puzzle.Grid {
	return snapshot(w.Storage, w.board.Get())
}

// Cursor returns the selected cell.
func (w *World) Cursor() puzzle.Coord {
	return w.selection.Get().Cursor.Coord
}

// Orbit returns the group rotation.
func (w *World) Orbit() Orbit {
	return *w.orbit.Get()
}

// Settings returns the slider state.
func (w *World) Settings() Settings {
	return *w.settings.Get()
}

// FlipLog returns the flip counters.
func (w *World) FlipLog() FlipLog {
	return *w.flipLog.Get()
}

// CubeAt returns the entity of the cube at c.
func (w *World) CubeAt(c puzzle.Coord) (ecs.EntityId, bool) {
	if !c.InBounds() {
		return 0, false
	}
	return w.Storage.ResolveEntityRef(w.board.Get().Cubes[c.Index()])
}

// HighlightedCells lists the cells tagged Highlighted.
func (w *World) HighlightedCells() []puzzle.Coord {
	view := ecs.NewView[struct {
		*Cell
		*Highlighted
	}](w.Storage)

	var cells []puzzle.Coord
	for item := range view.Values() {
		cells = append(cells, item.Cell.Coord)
	}
	return cells
}
