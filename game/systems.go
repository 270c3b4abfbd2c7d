package game

import (
	"reflect"

	"github.com/plus3/tileswap/ecs"
	"go.uber.org/zap"
)

// OrbitSystem rotates the cube group.
type OrbitSystem struct {
	Input ecs.Singleton[Input]
	Orbit ecs.Singleton[Orbit]
}

func (s *OrbitSystem) Execute(frame *ecs.UpdateFrame) {
	orbit := s.Orbit.Get()
	for _, action := range s.Input.Get().Actions {
		if action.Kind == ActionOrbit {
			orbit.Pitch += action.Pitch
			orbit.Yaw += action.Yaw
		}
	}
}

// ActionSystem applies slider changes, cursor moves, flips and scrambles
// one action at a time, in the order they were queued.
type ActionSystem struct {
	Input     ecs.Singleton[Input]
	Selection ecs.Singleton[Selection]
	Board     ecs.Singleton[Board]
	Settings  ecs.Singleton[Settings]
	Random    ecs.Singleton[Random]
	FlipLog   ecs.Singleton[FlipLog]

	Log *zap.Logger
}

func (s *ActionSystem) Execute(frame *ecs.UpdateFrame) {
	board := s.Board.Get()
	settings := s.Settings.Get()
	sel := s.Selection.Get()
	flipLog := s.FlipLog.Get()

	for _, action := range s.Input.Get().Actions {
		switch action.Kind {
		case ActionSetIterations:
			settings.Iterations = min(max(action.Iterations, 0), settings.MaxIterations)

		case ActionMoveCursor:
			sel.Cursor.Move(action.Axis, action.Delta)

		case ActionFlipSelected, ActionFlipAt:
			target := action.Coord
			if action.Kind == ActionFlipSelected {
				target = sel.Cursor.Coord
			}
			toggled := flip(frame.Storage, board, target)
			flipLog.Flips++
			flipLog.CellsToggled += toggled
			s.Log.Debug("flip", zap.Stringer("cell", target), zap.Int("toggled", toggled))

		case ActionRandomize:
			n := int(settings.Iterations)
			flipLog.LastScramble = scramble(frame.Storage, board, s.Random.Get().Rand, n)
			flipLog.Randomizes++
			s.Log.Debug("randomized", zap.Int("iterations", n))
		}
	}
}

// HighlightSystem hands the Highlighted tag to the selected cube once the
// frame's cursor moves are done.
type HighlightSystem struct {
	Selection ecs.Singleton[Selection]
	Board     ecs.Singleton[Board]

	Log *zap.Logger
}

func (s *HighlightSystem) Execute(frame *ecs.UpdateFrame) {
	sel := s.Selection.Get()
	if sel.Cursor.Coord == sel.Marked {
		return
	}

	board := s.Board.Get()
	oldId, oldOk := frame.Storage.ResolveEntityRef(board.Cubes[sel.Marked.Index()])
	newId, newOk := frame.Storage.ResolveEntityRef(board.Cubes[sel.Cursor.Index()])
	if oldOk {
		frame.Commands.RemoveComponent(oldId, reflect.TypeFor[Highlighted]())
	}
	if newOk {
		frame.Commands.AddComponent(newId, Highlighted{})
	}

	s.Log.Debug("cursor moved",
		zap.Stringer("from", sel.Marked),
		zap.Stringer("to", sel.Cursor.Coord))
	sel.Marked = sel.Cursor.Coord
}

// InputClearSystem empties the action queue at the end of the frame.
type InputClearSystem struct {
	Input ecs.Singleton[Input]
}

func (s *InputClearSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	input.Actions = input.Actions[:0]
}
