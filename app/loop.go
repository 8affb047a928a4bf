package app

import (
	"github.com/plus3/chronochess/frame"
)

// Loop wires a State into a frame scheduler with the input, animation and
// layout systems, in that order.
type Loop struct {
	resources *frame.Resources
	scheduler *frame.Scheduler
	events    *EventQueue
	output    *RenderData
}

func NewLoop(state *State) *Loop {
	resources := frame.NewResources()
	events := frame.Insert(resources, EventQueue{})
	output := frame.Insert(resources, state.Render())
	frame.Insert(resources, state)

	scheduler := frame.NewScheduler(resources)
	scheduler.Register(&InputSystem{})
	scheduler.Register(&AnimationSystem{})
	scheduler.Register(&LayoutSystem{})

	return &Loop{
		resources: resources,
		scheduler: scheduler,
		events:    events,
		output:    output,
	}
}

// State returns the state the systems currently drive.
func (l *Loop) State() *State {
	return *frame.MustGet[*State](l.resources)
}

func (l *Loop) Scheduler() *frame.Scheduler {
	return l.scheduler
}

func (l *Loop) Resources() *frame.Resources {
	return l.resources
}

// Push queues events for the next Step.
func (l *Loop) Push(events ...Event) {
	l.events.Push(events...)
}

// Step runs one frame.
func (l *Loop) Step(dt float64) {
	l.scheduler.Once(dt)
}

// Frame returns the RenderData published by the last Step.
func (l *Loop) Frame() RenderData {
	return *l.output
}

// Stats returns the per-system execution statistics.
func (l *Loop) Stats() *frame.SchedulerStats {
	return l.scheduler.Stats()
}
