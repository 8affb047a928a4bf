package app

import "github.com/plus3/chronochess/board"

// HandleEvent applies one input event to the state.
func (s *State) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case PointerMove:
		s.pointerMoved(ev.X, ev.Y)
	case PointerButton:
		if ev.Button != ButtonLeft {
			return
		}
		if ev.Pressed {
			s.pointerPressed(ev.X, ev.Y)
		} else {
			s.pointerReleased(ev.X, ev.Y)
		}
	case Key:
		if ev.Pressed {
			s.keyPressed(ev.Code)
		}
	}
}

func (s *State) pointerMoved(x, y float64) {
	s.pointerX, s.pointerY = x, y
	if s.drag.Active {
		s.drag.X, s.drag.Y = x, y
	}
	if s.scrubbing {
		s.scrub.ScrubTo(s.opts.Geometry.TrackOffset(x))
	}
}

func (s *State) pointerPressed(x, y float64) {
	s.pointerX, s.pointerY = x, y
	g := s.opts.Geometry

	if cell := g.CellAt(x, y); cell >= 0 {
		if p := s.live.At(cell); !p.IsEmpty() {
			s.drag = Drag{Active: true, From: cell, Piece: p, X: x, Y: y}
		}
		return
	}

	if g.OnTrack(x, y) {
		s.scrubbing = true
		s.scrub.ScrubTo(g.TrackOffset(x))
		return
	}

	if g.InTimeline(x, y) {
		if c, ok := s.View().HitTest(x, y); ok {
			s.scrub.JumpTo(c)
		}
	}
}

func (s *State) pointerReleased(x, y float64) {
	s.pointerX, s.pointerY = x, y
	s.scrubbing = false
	if !s.drag.Active {
		return
	}

	from := s.drag.From
	s.drag = Drag{}
	if to := s.opts.Geometry.CellAt(x, y); to >= 0 {
		s.CommitMove(from, to)
	} else {
		s.log.Debugw("drag cancelled", "from", board.CellName(from))
	}
}

func (s *State) keyPressed(code KeyCode) {
	switch code {
	case KeyLeft:
		s.Prev()
	case KeyRight:
		s.Next()
	case KeyUp, KeyDown:
		s.Sibling()
	case KeyHome:
		s.Home()
	case KeyEnd:
		s.End()
	case KeyA:
		s.SetAnimate(!s.scrub.Animate())
	}
}

// Scrubbing reports whether the pointer is held on the scrubber track.
func (s *State) Scrubbing() bool {
	return s.scrubbing
}

// Pointer returns the last known pointer position.
func (s *State) Pointer() (x, y float64) {
	return s.pointerX, s.pointerY
}
