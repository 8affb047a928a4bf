package app

// Event is an input event delivered by a rendering back-end.
type Event interface {
	event()
}

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyA
)

// PointerMove reports the pointer position in window coordinates.
type PointerMove struct {
	X, Y float64
}

type PointerButton struct {
	Button  Button
	Pressed bool
	X, Y    float64
}

type Key struct {
	Code    KeyCode
	Pressed bool
}

func (PointerMove) event()   {}
func (PointerButton) event() {}
func (Key) event()           {}

// EventQueue buffers back-end events until the input system drains them.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Push(events ...Event) {
	q.events = append(q.events, events...)
}

func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns the queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	events := q.events
	q.events = nil
	return events
}
