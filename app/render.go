package app

import (
	"fmt"
	"strings"

	"github.com/plus3/chronochess/board"
	"github.com/plus3/chronochess/timeline"
)

// RenderData is everything a back-end needs to draw one frame.
type RenderData struct {
	Geometry Geometry
	Board    board.Board
	View     *timeline.ViewNode

	Cursor    timeline.Cursor
	Timestamp int
	Length    int

	// MarkerX is in window coordinates and only meaningful when
	// MarkerVisible is set; the marker is hidden while the longest path
	// holds a single snapshot.
	MarkerX       float64
	MarkerVisible bool
	Animating     bool
	Animate       bool

	Drag Drag
}

// Render snapshots the state for drawing.
func (s *State) Render() RenderData {
	x, visible := s.scrub.X()
	if visible {
		x += s.opts.Geometry.Track.X
	}
	c := s.tree.Cursor()
	return RenderData{
		Geometry:      s.opts.Geometry,
		Board:         s.live,
		View:          s.View(),
		Cursor:        c,
		Timestamp:     s.tree.Timestamp(c),
		Length:        s.tree.MaxDepth(),
		MarkerX:       x,
		MarkerVisible: visible,
		Animating:     s.scrub.Active(),
		Animate:       s.scrub.Animate(),
		Drag:          s.drag,
	}
}

// Describe renders the timeline, the cursor timestamp and the live position
// as plain text.
func (s *State) Describe() string {
	var sb strings.Builder
	sb.WriteString(s.tree.Dump())
	fmt.Fprintf(&sb, "timestamp: %d\n", s.tree.Timestamp(s.tree.Cursor()))
	fmt.Fprintf(&sb, "fen: %s\n", s.live.FEN())
	return sb.String()
}
