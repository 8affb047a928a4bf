package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/board"
	"github.com/plus3/chronochess/frame"
)

func TestLoop(t *testing.T) {
	s := newState(t)
	loop := app.NewLoop(s)
	g := s.Geometry()

	fx, fy := center(t, g, "e2")
	tx, ty := center(t, g, "e4")
	loop.Push(
		app.PointerButton{Button: app.ButtonLeft, Pressed: true, X: fx, Y: fy},
		app.PointerMove{X: tx, Y: ty},
		app.PointerButton{Button: app.ButtonLeft, Pressed: false, X: tx, Y: ty},
	)
	loop.Step(1.0 / 60)

	data := loop.Frame()
	assert.Equal(t, 1, data.Timestamp)
	assert.Equal(t, 2, data.Length)
	assert.False(t, data.Board.At(cell(t, "e4")).IsEmpty())
	assert.Zero(t, frame.Get[app.EventQueue](loop.Resources()).Len())

	loop.Push(app.Key{Code: app.KeyHome, Pressed: true})
	loop.Step(1.0 / 60)
	assert.Equal(t, 0, loop.Frame().Timestamp)
	assert.Equal(t, board.Standard(), loop.Frame().Board)

	require.True(t, s.JumpToTimestamp(1))
	var xs []float64
	for range 40 {
		loop.Step(1.0 / 60)
		xs = append(xs, loop.Frame().MarkerX)
	}
	assert.Equal(t, 1, loop.Frame().Timestamp)
	assert.False(t, loop.Frame().Animating)
	assert.IsIncreasing(t, xs)

	stats := loop.Stats()
	require.Equal(t, 3, stats.SystemCount)
	assert.Equal(t, "InputSystem", stats.Systems[0].Name)
	assert.Equal(t, "AnimationSystem", stats.Systems[1].Name)
	assert.Equal(t, "LayoutSystem", stats.Systems[2].Name)
	assert.Equal(t, uint64(42), stats.Frames)

	assert.Same(t, s, *frame.MustGet[*app.State](loop.Resources()))
}

func TestLoopSystemsReadStateResource(t *testing.T) {
	first := newState(t)
	loop := app.NewLoop(first)
	other := newState(t)
	frame.Insert(loop.Resources(), other)

	fx, fy := center(t, other.Geometry(), "e2")
	tx, ty := center(t, other.Geometry(), "e4")
	loop.Push(
		app.PointerButton{Button: app.ButtonLeft, Pressed: true, X: fx, Y: fy},
		app.PointerButton{Button: app.ButtonLeft, Pressed: false, X: tx, Y: ty},
	)
	loop.Step(1.0 / 60)

	assert.Equal(t, 2, other.Tree().Root().Len())
	assert.Equal(t, 1, loop.Frame().Timestamp)
	assert.Same(t, other, loop.State())
	assert.Equal(t, 1, first.Tree().Root().Len(), "the replaced state is untouched")
}
