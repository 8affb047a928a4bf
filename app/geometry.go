package app

import (
	"math"

	"github.com/plus3/chronochess/board"
	"github.com/plus3/chronochess/scrubber"
	"github.com/plus3/chronochess/timeline"
)

// Geometry places the board, the timeline strip and the scrubber track in
// window coordinates.
type Geometry struct {
	Width, Height float64

	BoardX, BoardY float64
	BoardSize      float64

	Timeline timeline.Area

	Track scrubber.Track
	// TrackHeight is the pointer-sensitive band around Track.Y.
	TrackHeight float64
}

// DefaultGeometry stacks a square board, the timeline strip and the track
// vertically in a window of the given width.
func DefaultGeometry(width float64) Geometry {
	const (
		stripHeight = 160
		trackBand   = 24
		margin      = 25
	)
	return Geometry{
		Width:     width,
		Height:    width + stripHeight + trackBand + 16,
		BoardSize: width,
		Timeline: timeline.Area{
			Y:      width + 8,
			Width:  width,
			Height: stripHeight,
		},
		Track: scrubber.Track{
			Y:      width + stripHeight + 8 + trackBand/2 + 8,
			Width:  width - 2*margin,
			Margin: margin,
		},
		TrackHeight: trackBand,
	}
}

// CellAt maps a window position to a board cell, or -1 off the board.
func (g Geometry) CellAt(x, y float64) int {
	if g.BoardSize <= 0 {
		return -1
	}
	col := int(math.Floor(board.Width * (x - g.BoardX) / g.BoardSize))
	row := int(math.Floor(board.Width * (y - g.BoardY) / g.BoardSize))
	return board.Cell(row, col)
}

// CellOrigin returns the top-left corner of cell in window coordinates.
func (g Geometry) CellOrigin(cell int) (x, y float64) {
	row, col := board.RowCol(cell)
	side := g.CellSize()
	return g.BoardX + float64(col)*side, g.BoardY + float64(row)*side
}

func (g Geometry) CellSize() float64 {
	return g.BoardSize / board.Width
}

// OnTrack reports whether the position lies on the scrubber track.
func (g Geometry) OnTrack(x, y float64) bool {
	half := g.TrackHeight / 2
	return y >= g.Track.Y-half && y <= g.Track.Y+half &&
		x >= g.Track.X && x <= g.Track.X+g.Track.Width+2*g.Track.Margin
}

// TrackOffset converts a window x to a distance along the usable track.
func (g Geometry) TrackOffset(x float64) float64 {
	return x - g.Track.X - g.Track.Margin
}

// InTimeline reports whether the position lies in the thumbnail strip.
func (g Geometry) InTimeline(x, y float64) bool {
	a := g.Timeline
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}
