package render

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tileswap/ecs"
	"github.com/plus3/tileswap/ecs/debugui"
	"github.com/plus3/tileswap/game"
	"github.com/plus3/tileswap/puzzle"
)

const helpText = `arrows  rotate
drag    rotate
w/s     move cursor along z
a/d     move cursor along x
q/e     move cursor along y
space   flip selected
click   flip cube
r       randomize`

// SpawnControlPanel adds the ImGui window with the randomize slider and
// stats. Actions it queues run on the next tick.
func SpawnControlPanel(world *game.World, perf *debugui.PerformanceStats, schedulers ...*ecs.Scheduler) ecs.EntityId {
	return world.Storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(320, 0), imgui.CondOnce)

			if !imgui.BeginV("tileswap", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}
			defer imgui.End()

			settings := world.Settings()
			iterations := settings.Iterations
			if imgui.SliderInt("Iterations", &iterations, 0, settings.MaxIterations) {
				world.Push(game.SetIterations(iterations))
			}
			if imgui.Button("Randomize") {
				world.Push(game.Randomize())
			}

			imgui.Separator()
			grid := world.Snapshot()
			black := grid.Count(puzzle.Black)
			imgui.TextUnformatted(fmt.Sprintf("Black cubes: %d / %d", black, puzzle.Cells))
			if black == 0 {
				imgui.TextUnformatted("All white")
			}

			flips := world.FlipLog()
			imgui.TextUnformatted(fmt.Sprintf("Flips: %d (%d cubes toggled)", flips.Flips, flips.CellsToggled))
			imgui.TextUnformatted(fmt.Sprintf("Randomized: %d times", flips.Randomizes))

			orbit := world.Orbit()
			imgui.TextUnformatted(fmt.Sprintf("Cursor: %v  Rotation: %.2f, %.2f", world.Cursor(), orbit.Pitch, orbit.Yaw))

			if imgui.TreeNodeStr("Controls") {
				imgui.TextUnformatted(helpText)
				imgui.TreePop()
			}

			if imgui.TreeNodeStr("Selected cube") {
				if id, ok := world.CubeAt(world.Cursor()); ok {
					debugui.RenderEntity(world.Storage, id)
				}
				imgui.TreePop()
			}

			if imgui.TreeNodeStr("Performance") {
				perf.Render(world.Storage, schedulers...)
				imgui.TreePop()
			}
		},
	})
}
