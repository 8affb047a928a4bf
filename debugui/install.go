package debugui

import (
	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/frame"
)

// Install registers the overlay resources and ImguiSystem on the loop's
// scheduler, with the timeline inspector and performance windows. The
// ImGui context must exist before the first frame runs.
func Install(loop *app.Loop) {
	resources := loop.Resources()
	windows := frame.NewSingleton[Windows](resources).Get()
	frame.NewSingleton[InputState](resources)

	windows.Add(
		TimelineInspector(loop.State()),
		PerformanceWindow(loop.Scheduler(), 120),
	)
	loop.Scheduler().Register(&ImguiSystem{})
}
