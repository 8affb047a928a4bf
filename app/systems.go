package app

import (
	"github.com/plus3/chronochess/frame"
)

// InputSystem drains the event queue into the state.
type InputSystem struct {
	Events frame.Singleton[EventQueue]
}

func (s *InputSystem) Execute(f *frame.UpdateFrame) {
	queue := s.Events.Get()
	if queue == nil {
		return
	}
	state := *frame.MustGet[*State](f.Resources)
	for _, ev := range queue.Drain() {
		state.HandleEvent(ev)
	}
}

// AnimationSystem advances the scrubber by one tick per frame.
type AnimationSystem struct{}

func (s *AnimationSystem) Execute(f *frame.UpdateFrame) {
	state := *frame.MustGet[*State](f.Resources)
	if state.Tick() {
		c := state.Tree().Cursor()
		state.log.Debugw("scrub arrived", "timestamp", state.Tree().Timestamp(c), "frame", f.Index)
	}
}

// LayoutSystem publishes the frame's RenderData once input and animation
// have run. The layout itself is only recomputed after tree mutations.
type LayoutSystem struct {
	Output frame.Singleton[RenderData]
}

func (s *LayoutSystem) Execute(f *frame.UpdateFrame) {
	data := (*frame.MustGet[*State](f.Resources)).Render()
	f.Commands.Defer(func() {
		if out := s.Output.Get(); out != nil {
			*out = data
		}
	})
}
