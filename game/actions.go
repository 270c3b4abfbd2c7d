package game

import "github.com/plus3/tileswap/puzzle"

// ActionKind says what an Action asks for.
type ActionKind uint8

const (
	ActionOrbit ActionKind = iota
	ActionMoveCursor
	ActionFlipSelected
	ActionFlipAt
	ActionRandomize
	ActionSetIterations
)

func (k ActionKind) String() string {
	switch k {
	case ActionOrbit:
		return "orbit"
	case ActionMoveCursor:
		return "move-cursor"
	case ActionFlipSelected:
		return "flip-selected"
	case ActionFlipAt:
		return "flip-at"
	case ActionRandomize:
		return "randomize"
	case ActionSetIterations:
		return "set-iterations"
	}
	return "unknown"
}

// Action is one input event translated into game terms. Only the fields
// relevant to Kind are set.
type Action struct {
	Kind       ActionKind
	Pitch, Yaw float32
	Axis       puzzle.Axis
	Delta      int
	Coord      puzzle.Coord
	Iterations int32
}

// Input queues the actions of the current frame. Front ends append to it
// before the game systems run; InputClearSystem empties it.
type Input struct {
	Actions []Action
}

// Push appends actions to the queue.
func (in *Input) Push(actions ...Action) {
	in.Actions = append(in.Actions, actions...)
}

func OrbitBy(pitch, yaw float32) Action {
	return Action{Kind: ActionOrbit, Pitch: pitch, Yaw: yaw}
}

func MoveCursor(axis puzzle.Axis, delta int) Action {
	return Action{Kind: ActionMoveCursor, Axis: axis, Delta: delta}
}

func FlipSelected() Action {
	return Action{Kind: ActionFlipSelected}
}

func FlipAt(c puzzle.Coord) Action {
	return Action{Kind: ActionFlipAt, Coord: c}
}

func Randomize() Action {
	return Action{Kind: ActionRandomize}
}

func SetIterations(n int32) Action {
	return Action{Kind: ActionSetIterations, Iterations: n}
}
