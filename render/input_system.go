package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tileswap/ecs"
	"github.com/plus3/tileswap/ecs/debugui"
	"github.com/plus3/tileswap/game"
	"github.com/plus3/tileswap/puzzle"
	"go.uber.org/zap"
)

// InputSystem queues game actions from the keyboard, mouse and touch
// screen. It must run before the game systems.
type InputSystem struct {
	Input   ecs.Singleton[game.Input]
	View    ecs.Singleton[View]
	Screen  ecs.Singleton[Screen]
	Pointer ecs.Singleton[Pointer]
	Orbit   ecs.Singleton[game.Orbit]
	Imgui   ecs.Singleton[debugui.ImguiInputState]

	Cubes ecs.Query[struct {
		*game.Cell
		*game.Transform
	}]

	Log *zap.Logger

	bindings []keyBinding
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	view := s.View.Get()
	capture := s.Imgui.Get()

	if !capture.WantCaptureKeyboard {
		if s.bindings == nil {
			s.bindings = keyBindings(view.RotateStep)
		}
		input.Push(keyActions(s.bindings, inpututil.KeyPressDuration)...)
	}

	pointer := s.Pointer.Get()
	s.trackMouse(pointer, capture.WantCaptureMouse)
	s.trackTouch(pointer, capture.WantCaptureMouse)
}

func (s *InputSystem) trackMouse(p *Pointer, captured bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !captured {
		p.mouse.Press(ebiten.CursorPosition())
	}
	if !p.mouse.Active() {
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if clicked, x, y := p.mouse.Release(); clicked {
			s.flipAt(x, y)
		}
		return
	}
	s.drag(p.mouse.Move(ebiten.CursorPosition()))
}

func (s *InputSystem) trackTouch(p *Pointer, captured bool) {
	if !p.touching {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 || captured {
			return
		}
		p.touchID = ids[0]
		p.touching = true
		p.touch.Press(ebiten.TouchPosition(p.touchID))
		return
	}

	if inpututil.IsTouchJustReleased(p.touchID) {
		p.touching = false
		if clicked, x, y := p.touch.Release(); clicked {
			s.flipAt(x, y)
		}
		return
	}
	s.drag(p.touch.Move(ebiten.TouchPosition(p.touchID)))
}

func (s *InputSystem) drag(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	sens := s.View.Get().DragSensitivity
	s.Input.Get().Push(game.OrbitBy(float32(dy)*sens, float32(dx)*sens))
}

// flipAt queues a flip of the cube under the screen point, if any.
func (s *InputSystem) flipAt(x, y int) {
	var (
		cells      []puzzle.Coord
		transforms []*game.Transform
	)
	for cube := range s.Cubes.Values() {
		cells = append(cells, cube.Cell.Coord)
		transforms = append(transforms, cube.Transform)
	}

	pr := newProjector(s.View.Get(), s.Screen.Get(), s.Orbit.Get())
	cell, ok := pickCell(pr, cells, transforms, mgl32.Vec2{float32(x), float32(y)})
	if !ok {
		return
	}

	s.Log.Debug("picked cube", zap.Stringer("cell", cell), zap.Int("x", x), zap.Int("y", y))
	s.Input.Get().Push(game.FlipAt(cell))
}
