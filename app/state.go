// Package app holds the application state of the visualizer: the live board,
// the timeline tree, the scrubber and the pointer interaction state. All
// mutation happens on the frame loop goroutine.
package app

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plus3/chronochess/board"
	"github.com/plus3/chronochess/scrubber"
	"github.com/plus3/chronochess/timeline"
)

type Options struct {
	Geometry Geometry
	Layout   timeline.LayoutOptions

	Animate       bool
	DurationTicks int
	ScrubMode     scrubber.ScrubMode
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Geometry:      DefaultGeometry(600),
		Layout:        timeline.LayoutOptions{MinThumbnailSize: timeline.DefaultMinThumbnailSize},
		Animate:       true,
		DurationTicks: scrubber.DefaultDuration,
	}
}

// Drag is the piece currently held by the pointer. While a drag is active the
// back-end draws Piece at (X, Y) instead of on From.
type Drag struct {
	Active bool
	From   int
	Piece  board.Piece
	X, Y   float64
}

// CommitStats counts the outcomes of CommitMove.
type CommitStats struct {
	Appends  int
	Forks    int
	Branches int
	Rejected int
}

// State is the single owner of everything the visualizer mutates.
type State struct {
	log     *zap.SugaredLogger
	session uuid.UUID
	opts    Options

	live  board.Board
	tree  *timeline.Tree
	scrub *scrubber.Scrubber

	view  *timeline.ViewNode
	dirty bool

	drag      Drag
	scrubbing bool
	pointerX  float64
	pointerY  float64

	commits CommitStats
}

// NewState starts a session whose timeline root holds initial.
func NewState(initial board.Board, opts Options, log *zap.SugaredLogger) *State {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &State{
		session: uuid.New(),
		opts:    opts,
		live:    initial,
		tree:    timeline.NewFrom(initial),
		dirty:   true,
	}
	s.log = log.With("session", s.session.String())
	s.scrub = scrubber.New(s.tree, opts.Geometry.Track, scrubber.Options{
		Animate:       opts.Animate,
		DurationTicks: opts.DurationTicks,
		ScrubMode:     opts.ScrubMode,
		OnArrive:      s.arrive,
	})
	s.log.Infow("session started", "fen", initial.FEN())
	return s
}

func (s *State) Session() uuid.UUID {
	return s.session
}

func (s *State) Options() Options {
	return s.opts
}

func (s *State) Geometry() Geometry {
	return s.opts.Geometry
}

// Live returns a copy of the board being edited.
func (s *State) Live() board.Board {
	return s.live
}

func (s *State) Tree() *timeline.Tree {
	return s.tree
}

func (s *State) Scrubber() *scrubber.Scrubber {
	return s.scrub
}

func (s *State) Drag() Drag {
	return s.drag
}

func (s *State) CommitStats() CommitStats {
	return s.commits
}

// Resize replaces the geometry, for instance after the window changed size.
func (s *State) Resize(g Geometry) {
	if g == s.opts.Geometry {
		return
	}
	s.opts.Geometry = g
	s.scrub.SetTrack(g.Track)
	s.dirty = true
}

// CommitMove moves the piece on from to to on the live board and records
// the result in the timeline: appended at the tip of a leaf, branched at the
// tip of a node that already has branches, forked anywhere else. It
// is a no-op, reporting false, when the cells are equal, off-board, or from
// is empty.
func (s *State) CommitMove(from, to int) bool {
	if !s.live.Move(from, to) {
		if from != to {
			s.commits.Rejected++
			s.log.Debugw("move rejected", "from", board.CellName(from), "to", board.CellName(to))
		}
		return false
	}

	s.scrub.Cancel()
	outcome := s.tree.Record(s.live)
	s.dirty = true

	switch outcome {
	case timeline.Appended:
		s.commits.Appends++
	case timeline.Forked:
		s.commits.Forks++
	case timeline.Branched:
		s.commits.Branches++
	}
	s.log.Infow("move committed",
		"from", board.CellName(from),
		"to", board.CellName(to),
		"outcome", outcome.String(),
		"timestamp", s.tree.Timestamp(s.tree.Cursor()),
		"branches", s.tree.TotalBranches(),
	)
	return true
}

// Prev steps back one snapshot.
func (s *State) Prev() bool {
	return s.navigate(s.tree.Prev)
}

// Next steps forward one snapshot, entering the first branch at a fork.
func (s *State) Next() bool {
	return s.navigate(s.tree.Next)
}

// Sibling switches to the next branch forked from the same node.
func (s *State) Sibling() bool {
	return s.navigate(s.tree.SiblingCycle)
}

// Home jumps to the first snapshot.
func (s *State) Home() bool {
	return s.scrub.SnapTo(s.tree.CursorAt(0))
}

// End jumps to the tip of the active path.
func (s *State) End() bool {
	return s.scrub.SnapTo(s.tree.CursorAt(s.tree.ActiveLength() - 1))
}

func (s *State) navigate(step func() bool) bool {
	s.scrub.Cancel()
	if !step() {
		return false
	}
	s.arrive(s.tree.Cursor())
	return true
}

// JumpTo moves to c, animated when animation is enabled.
func (s *State) JumpTo(c timeline.Cursor) bool {
	return s.scrub.JumpTo(c)
}

// JumpToTimestamp moves to the snapshot at ts on the active path.
func (s *State) JumpToTimestamp(ts int) bool {
	return s.scrub.JumpTo(s.tree.CursorAt(ts))
}

// SetAnimate toggles animated jumps.
func (s *State) SetAnimate(animate bool) {
	s.scrub.SetAnimate(animate)
	s.log.Debugw("animation toggled", "enabled", animate)
}

// Tick advances the scrubber animation by one frame.
func (s *State) Tick() bool {
	return s.scrub.Tick()
}

func (s *State) arrive(c timeline.Cursor) {
	if b, ok := c.Snapshot(); ok {
		s.live = b
	}
	s.drag = Drag{}
}

// View returns the current timeline layout, recomputing it when the tree or
// geometry changed since the last call.
func (s *State) View() *timeline.ViewNode {
	if s.dirty {
		s.view = timeline.Layout(s.tree, s.opts.Geometry.Timeline, s.opts.Layout)
		s.dirty = false
	}
	return s.view
}

// LayoutDirty reports whether View will recompute the layout.
func (s *State) LayoutDirty() bool {
	return s.dirty
}
