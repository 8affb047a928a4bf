// Package scrubber drives the time marker that slides along the timeline
// track. Jumps either snap the cursor immediately or animate the marker over
// a fixed number of frames and move the cursor when it arrives.
package scrubber

import (
	"math"

	"github.com/plus3/chronochess/timeline"
)

// DefaultDuration is the number of ticks an animated jump takes.
const DefaultDuration = 40

// Track is the horizontal strip the marker moves along. Width is the usable
// length; Margin shifts every marker position to the right.
type Track struct {
	X, Y   float64
	Width  float64
	Margin float64
}

// ScrubMode selects what pointer scrubbing does with the computed target.
type ScrubMode int

const (
	// ScrubSnap moves the cursor immediately.
	ScrubSnap ScrubMode = iota
	// ScrubAnimate slides the marker like JumpTo.
	ScrubAnimate
)

func (m ScrubMode) String() string {
	if m == ScrubAnimate {
		return "animate"
	}
	return "snap"
}

// ParseScrubMode converts a configuration value to a ScrubMode. Unknown
// values select ScrubSnap.
func ParseScrubMode(s string) ScrubMode {
	if s == "animate" {
		return ScrubAnimate
	}
	return ScrubSnap
}

type Options struct {
	Animate       bool
	DurationTicks int
	ScrubMode     ScrubMode
	// OnArrive is called whenever the cursor actually moves, either on a
	// snap or when an animation completes.
	OnArrive func(timeline.Cursor)
}

// Animation is an in-flight marker movement towards Target.
type Animation struct {
	Target  timeline.Cursor
	SrcX    float64
	DstX    float64
	Elapsed int
	Total   int
}

// Active reports whether the animation still has ticks left.
func (a Animation) Active() bool {
	return a.Elapsed < a.Total
}

// Progress returns the completed fraction in [0, 1].
func (a Animation) Progress() float64 {
	if a.Total <= 0 {
		return 1
	}
	return math.Min(float64(a.Elapsed)/float64(a.Total), 1)
}

// X returns the interpolated marker position.
func (a Animation) X() float64 {
	return a.SrcX + (a.DstX-a.SrcX)*a.Progress()
}

// Scrubber maps cursors to marker positions on a Track and animates jumps.
// It reads the tree shape and moves its cursor but never changes its nodes.
type Scrubber struct {
	tree   *timeline.Tree
	track  Track
	opts   Options
	anim   Animation
	active bool
}

// New creates a scrubber for tree.
func New(tree *timeline.Tree, track Track, opts Options) *Scrubber {
	if opts.DurationTicks <= 0 {
		opts.DurationTicks = DefaultDuration
	}
	return &Scrubber{
		tree:  tree,
		track: track,
		opts:  opts,
	}
}

func (s *Scrubber) Track() Track {
	return s.track
}

func (s *Scrubber) SetTrack(track Track) {
	s.track = track
}

func (s *Scrubber) Animate() bool {
	return s.opts.Animate
}

// SetAnimate toggles animated jumps. Disabling it finishes a running
// animation at once.
func (s *Scrubber) SetAnimate(animate bool) {
	s.opts.Animate = animate
	if !animate && s.active {
		s.SnapTo(s.anim.Target)
	}
}

func (s *Scrubber) ScrubMode() ScrubMode {
	return s.opts.ScrubMode
}

func (s *Scrubber) SetScrubMode(mode ScrubMode) {
	s.opts.ScrubMode = mode
}

// Active reports whether an animation is running.
func (s *Scrubber) Active() bool {
	return s.active
}

// Animation returns the running animation, if any.
func (s *Scrubber) Animation() (Animation, bool) {
	return s.anim, s.active
}

func (s *Scrubber) rootLength() int {
	return s.tree.MaxDepth()
}

// PositionOf returns the marker position of c along the track. Positions are
// undefined while the tree is at most one snapshot long.
func (s *Scrubber) PositionOf(c timeline.Cursor) (float64, bool) {
	length := s.rootLength()
	if length <= 1 {
		return 0, false
	}
	ts := float64(s.tree.Timestamp(c))
	return ts/float64(length-1)*s.track.Width + s.track.Margin, true
}

// X returns the marker position to draw: the interpolated position while an
// animation runs, the cursor's position otherwise.
func (s *Scrubber) X() (float64, bool) {
	if s.active {
		return s.anim.X(), true
	}
	return s.PositionOf(s.tree.Cursor())
}

// JumpTo moves to c. With animation enabled the marker starts sliding from
// wherever it is drawn now, which may be the middle of another animation,
// and the cursor follows once the animation completes.
func (s *Scrubber) JumpTo(c timeline.Cursor) bool {
	if !c.Valid() {
		return false
	}
	if !s.opts.Animate {
		return s.SnapTo(c)
	}

	srcX, ok := s.X()
	if !ok {
		return s.SnapTo(c)
	}
	dstX, ok := s.PositionOf(c)
	if !ok {
		return s.SnapTo(c)
	}

	s.anim = Animation{
		Target: c,
		SrcX:   srcX,
		DstX:   dstX,
		Total:  s.opts.DurationTicks,
	}
	s.active = true
	return true
}

// SnapTo moves the cursor to c immediately, dropping any running animation.
func (s *Scrubber) SnapTo(c timeline.Cursor) bool {
	s.Cancel()
	if !s.tree.SetCursor(c) {
		return false
	}
	s.arrive(c)
	return true
}

// Cancel stops a running animation and leaves the cursor where it is.
func (s *Scrubber) Cancel() {
	s.active = false
	s.anim = Animation{}
}

// Tick advances a running animation by one frame. It reports true on the
// tick the animation completes and the cursor moves to the target.
func (s *Scrubber) Tick() bool {
	if !s.active {
		return false
	}
	s.anim.Elapsed++
	if s.anim.Active() {
		return false
	}

	target := s.anim.Target
	s.active = false
	if !s.tree.SetCursor(target) {
		return false
	}
	s.arrive(target)
	return true
}

func (s *Scrubber) arrive(c timeline.Cursor) {
	if s.opts.OnArrive != nil {
		s.opts.OnArrive(c)
	}
}

// TimestampAt converts a pointer x, measured from the start of the track, to
// the nearest timestamp.
func (s *Scrubber) TimestampAt(x float64) (int, bool) {
	length := s.rootLength()
	if length <= 1 || s.track.Width <= 0 {
		return 0, false
	}
	percent := min(max(x/s.track.Width, 0), 1)
	return int(math.Round(percent * float64(length-1))), true
}

// ScrubTo moves to the snapshot under pointer x (relative to the track
// start), snapping or animating according to the scrub mode.
func (s *Scrubber) ScrubTo(x float64) bool {
	ts, ok := s.TimestampAt(x)
	if !ok {
		return false
	}
	c := s.tree.CursorAt(ts)
	if s.opts.ScrubMode == ScrubAnimate {
		return s.JumpTo(c)
	}
	return s.SnapTo(c)
}
