package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tileswap/ecs"
)

// PerformanceStats keeps a ring of recent frame times and renders them with
// storage and scheduler counters.
type PerformanceStats struct {
	frameHistory []float32 // milliseconds
	frameIndex   int
	recorded     int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{frameHistory: make([]float32, max(historyFrames, 1))}
}

// Record adds one frame duration in seconds.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000
	ps.frameIndex = (ps.frameIndex + 1) % len(ps.frameHistory)
	ps.recorded = min(ps.recorded+1, len(ps.frameHistory))
}

// AverageFrameTime is the mean of the recorded frames in milliseconds, or 0
// before the first Record.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory[:ps.recorded] {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

// Render draws the stats widgets into the current ImGui window.
func (ps *PerformanceStats) Render(storage *ecs.Storage, schedulers ...*ecs.Scheduler) {
	avg := ps.AverageFrameTime()
	if avg > 0 {
		imgui.TextUnformatted(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	stats := storage.CollectStats()
	imgui.TextUnformatted(fmt.Sprintf("Entities: %d  Archetypes: %d  Singletons: %d",
		stats.TotalEntityCount, stats.ArchetypeCount, stats.SingletonCount))

	if imgui.TreeNodeStr("Archetypes") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entities")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.TextUnformatted(fmt.Sprint(arch.ComponentTypes))
				imgui.TableNextColumn()
				imgui.TextUnformatted(fmt.Sprintf("%d", arch.EntityCount))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Systems") {
		for _, scheduler := range schedulers {
			for _, sys := range scheduler.GetStats().Systems {
				imgui.BulletText(fmt.Sprintf("%s: last %v, avg %v", sys.Name, sys.LastDuration, sys.AvgDuration))
			}
		}
		imgui.TreePop()
	}
}

// FrameTimer measures wall time between calls to GetDeltaTime.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{lastFrameTime: time.Now()}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
