// Package debugui draws Dear ImGui windows from ECS entities. Any entity
// with an ImguiItem gets its Render func called once per frame, after the
// frame's systems have run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tileswap/ecs"
)

// ImguiItem renders widgets for one window.
type ImguiItem struct {
	Render func()
}

// ImguiInputState mirrors ImGui's capture flags. Systems that read the mouse
// or keyboard should back off while the matching flag is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// RegisterComponents registers ImguiItem and ImguiInputState.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[ImguiInputState](registry)
}

// ImguiSystem refreshes ImguiInputState and defers every ImguiItem's Render
// to the end of the frame.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	state := i.InputState.Get()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.Render)
	}
}
