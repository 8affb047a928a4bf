package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/plus3/chronochess/board"
)

// ErrInvalidStep is returned for script steps that cannot be parsed.
var ErrInvalidStep = errors.New("invalid step")

type StepKind int

const (
	StepMove StepKind = iota
	StepPrev
	StepNext
	StepSibling
	StepHome
	StepEnd
	StepJump
	StepTick
	StepAnimate
)

// Step is one scripted interaction.
type Step struct {
	Kind     StepKind
	From, To int
	// N is the timestamp of a jump, the tick count of a tick step, or 1/0 to
	// enable/disable animation.
	N int
}

func (s Step) String() string {
	switch s.Kind {
	case StepMove:
		return board.CellName(s.From) + board.CellName(s.To)
	case StepPrev:
		return "prev"
	case StepNext:
		return "next"
	case StepSibling:
		return "sibling"
	case StepHome:
		return "home"
	case StepEnd:
		return "end"
	case StepJump:
		return "jump:" + strconv.Itoa(s.N)
	case StepTick:
		return "tick:" + strconv.Itoa(s.N)
	case StepAnimate:
		if s.N != 0 {
			return "animate:on"
		}
		return "animate:off"
	}
	return "?"
}

var simpleSteps = map[string]StepKind{
	"prev":    StepPrev,
	"next":    StepNext,
	"sibling": StepSibling,
	"home":    StepHome,
	"end":     StepEnd,
}

// ParseStep parses a single step: a move such as "e2e4", one of prev, next,
// sibling, home and end, "jump:N", "tick:N", or "animate:on|off".
func ParseStep(token string) (Step, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if kind, ok := simpleSteps[token]; ok {
		return Step{Kind: kind}, nil
	}

	if name, arg, ok := strings.Cut(token, ":"); ok {
		switch name {
		case "jump", "tick":
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return Step{}, fmt.Errorf("%w: %q needs a non-negative count", ErrInvalidStep, token)
			}
			if name == "jump" {
				return Step{Kind: StepJump, N: n}, nil
			}
			return Step{Kind: StepTick, N: n}, nil
		case "animate":
			switch arg {
			case "on":
				return Step{Kind: StepAnimate, N: 1}, nil
			case "off":
				return Step{Kind: StepAnimate}, nil
			}
		}
		return Step{}, fmt.Errorf("%w: %q", ErrInvalidStep, token)
	}

	if len(token) == 4 {
		from, errFrom := board.ParseCell(token[:2])
		to, errTo := board.ParseCell(token[2:])
		if err := errors.Join(errFrom, errTo); err != nil {
			return Step{}, fmt.Errorf("%w: %q: %w", ErrInvalidStep, token, err)
		}
		return Step{Kind: StepMove, From: from, To: to}, nil
	}
	return Step{}, fmt.Errorf("%w: %q", ErrInvalidStep, token)
}

// ParseScript parses whitespace separated steps. Lines starting with '#' are
// comments.
func ParseScript(text string) ([]Step, error) {
	var steps []Step
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, token := range strings.Fields(line) {
			step, err := ParseStep(token)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			steps = append(steps, step)
		}
	}
	return steps, nil
}

// Apply runs step against the state and reports whether it changed
// anything. Tick steps report whether an animation arrived.
func (s *State) Apply(step Step) bool {
	switch step.Kind {
	case StepMove:
		return s.CommitMove(step.From, step.To)
	case StepPrev:
		return s.Prev()
	case StepNext:
		return s.Next()
	case StepSibling:
		return s.Sibling()
	case StepHome:
		return s.Home()
	case StepEnd:
		return s.End()
	case StepJump:
		return s.JumpToTimestamp(step.N)
	case StepTick:
		arrived := false
		for range step.N {
			if s.Tick() {
				arrived = true
			}
		}
		return arrived
	case StepAnimate:
		s.SetAnimate(step.N != 0)
		return true
	}
	return false
}

// Run applies every step in order.
func (s *State) Run(steps []Step) {
	for _, step := range steps {
		s.Apply(step)
	}
}
