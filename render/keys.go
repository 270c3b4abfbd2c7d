package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tileswap/game"
	"github.com/plus3/tileswap/puzzle"
)

const (
	repeatDelay    = 30 // ticks before a held key starts repeating
	repeatInterval = 3
)

type keyBinding struct {
	key    ebiten.Key
	action game.Action
	repeat bool
}

// keyBindings maps keys to actions. Arrows rotate the group by step
// radians.
func keyBindings(step float32) []keyBinding {
	return []keyBinding{
		{ebiten.KeyArrowUp, game.OrbitBy(step, 0), true},
		{ebiten.KeyArrowDown, game.OrbitBy(-step, 0), true},
		{ebiten.KeyArrowLeft, game.OrbitBy(0, step), true},
		{ebiten.KeyArrowRight, game.OrbitBy(0, -step), true},

		{ebiten.KeyW, game.MoveCursor(puzzle.AxisZ, -1), true},
		{ebiten.KeyS, game.MoveCursor(puzzle.AxisZ, 1), true},
		{ebiten.KeyA, game.MoveCursor(puzzle.AxisX, -1), true},
		{ebiten.KeyD, game.MoveCursor(puzzle.AxisX, 1), true},
		{ebiten.KeyQ, game.MoveCursor(puzzle.AxisY, -1), true},
		{ebiten.KeyE, game.MoveCursor(puzzle.AxisY, 1), true},

		{ebiten.KeySpace, game.FlipSelected(), false},
		{ebiten.KeyR, game.Randomize(), false},
	}
}

// repeating reports whether a key held for pressDuration ticks fires this
// tick.
func repeating(pressDuration int, repeat bool) bool {
	if pressDuration == 1 {
		return true
	}
	return repeat && pressDuration >= repeatDelay && (pressDuration-repeatDelay)%repeatInterval == 0
}

// keyActions returns the actions fired this tick given each key's press
// duration.
func keyActions(bindings []keyBinding, pressDuration func(ebiten.Key) int) []game.Action {
	var actions []game.Action
	for _, b := range bindings {
		if repeating(pressDuration(b.key), b.repeat) {
			actions = append(actions, b.action)
		}
	}
	return actions
}
