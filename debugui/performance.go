package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/chronochess/frame"
)

// PerformanceWindow plots frame times and lists per-system timings.
func PerformanceWindow(scheduler *frame.Scheduler, historyFrames int) ImguiItem {
	history := NewHistory(historyFrames)
	return ImguiItem{
		Name: "Performance",
		Render: func() {
			stats := scheduler.Stats()
			var frameMs float32
			for _, sys := range stats.Systems {
				frameMs += float32(sys.LastDuration.Microseconds()) / 1000
			}
			history.Add(frameMs)

			imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(360, 260), imgui.CondOnce)
			if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
			imgui.Text(fmt.Sprintf("Avg system time: %.3f ms", history.Average()))
			samples := history.Ordered()
			imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
			imgui.Separator()

			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("Name")
				imgui.TableSetupColumn("Avg (ms)")
				imgui.TableSetupColumn("Min (ms)")
				imgui.TableSetupColumn("Max (ms)")
				imgui.TableHeadersRow()

				for _, sys := range stats.Systems {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(sys.Name)
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000))
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%.3f", float64(sys.MinDuration.Microseconds())/1000))
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000))
				}
				imgui.EndTable()
			}

			resources := scheduler.Resources()
			if imgui.TreeNodeStr(fmt.Sprintf("Resources (%d)", resources.Len())) {
				for _, typ := range resources.Types() {
					imgui.BulletText(typ.String())
				}
				imgui.TreePop()
			}
			imgui.End()
		},
	}
}
