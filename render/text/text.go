// Package text draws the board, the timeline and the scrubber track as
// terminal text. It is the headless counterpart of the ebiten back-end.
package text

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/board"
	"github.com/plus3/chronochess/timeline"
)

// MaxMarks caps the marks drawn per timeline node; longer nodes are sampled.
const MaxMarks = 24

type styles struct {
	light, dark lipgloss.Style
	white, blk  lipgloss.Style
	label       lipgloss.Style
	box         lipgloss.Style
	cursor      lipgloss.Style
	marker      lipgloss.Style
}

// Renderer formats frames for a terminal. Colors follow the capabilities of
// the writer passed to New, so output to a file or buffer is plain text.
type Renderer struct {
	styles     styles
	trackWidth int
}

func New(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		trackWidth: 40,
		styles: styles{
			light:  r.NewStyle().Background(lipgloss.Color("180")),
			dark:   r.NewStyle().Background(lipgloss.Color("137")),
			white:  r.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
			blk:    r.NewStyle().Foreground(lipgloss.Color("16")).Bold(true),
			label:  r.NewStyle().Foreground(lipgloss.Color("244")),
			box:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			cursor: r.NewStyle().Foreground(lipgloss.Color("#d16d7a")).Bold(true),
			marker: r.NewStyle().Foreground(lipgloss.Color("#5f9fb0")).Bold(true),
		},
	}
}

// SetTrackWidth sets the number of columns used by the scrubber track.
func (r *Renderer) SetTrackWidth(width int) {
	r.trackWidth = max(width, 2)
}

// Board draws b with rank and file labels, White at the bottom.
func (r *Renderer) Board(b board.Board) string {
	var sb strings.Builder
	for row := range board.Width {
		sb.WriteString(r.styles.label.Render(fmt.Sprintf("%d ", board.Width-row)))
		for col := range board.Width {
			p := b.At(board.Cell(row, col))
			square := r.styles.light
			if (row+col)%2 == 1 {
				square = r.styles.dark
			}
			glyph := " " + p.String() + " "
			switch {
			case p.IsEmpty():
				sb.WriteString(square.Render(glyph))
			case p.Color == board.White:
				sb.WriteString(square.Inherit(r.styles.white).Render(glyph))
			default:
				sb.WriteString(square.Inherit(r.styles.blk).Render(glyph))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(r.styles.label.Render("   a  b  c  d  e  f  g  h"))
	return sb.String()
}

// Timeline draws every node of t on its own line, indented by depth. Each
// mark stands for one snapshot, or a run of them on long nodes; the mark
// holding the cursor is drawn as '@'.
func (r *Renderer) Timeline(t *timeline.Tree) string {
	cursor := t.Cursor()
	var lines []string
	t.Walk(func(n *timeline.Node, depth int) bool {
		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(fmt.Sprintf("#%-2d ", n.ID()))

		count := n.Len()
		num := min(count, MaxMarks)
		for i := range num {
			lo, hi := i*count/num, (i+1)*count/num
			if cursor.Node == n && cursor.Index >= lo && cursor.Index < hi {
				sb.WriteString(r.styles.cursor.Render("@"))
			} else {
				sb.WriteByte('o')
			}
		}
		if count > num {
			sb.WriteString(r.styles.label.Render(fmt.Sprintf(" (%d)", count)))
		}
		lines = append(lines, sb.String())
		return true
	})
	return strings.Join(lines, "\n")
}

// Track draws the scrubber track with its marker. A timeline that is a
// single snapshot long has no track.
func (r *Renderer) Track(data app.RenderData) string {
	if data.Length <= 1 {
		return r.styles.label.Render("(single snapshot)")
	}

	width := r.trackWidth
	pos := 0
	if data.MarkerVisible {
		g := data.Geometry.Track
		percent := (data.MarkerX - g.X - g.Margin) / g.Width
		percent = min(max(percent, 0), 1)
		pos = int(math.Round(percent * float64(width-1)))
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i := range width {
		if i == pos {
			sb.WriteString(r.styles.marker.Render("|"))
		} else {
			sb.WriteByte('-')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Status summarizes the cursor position and the animation state.
func (r *Renderer) Status(data app.RenderData) string {
	status := fmt.Sprintf("t=%d/%d", data.Timestamp, max(data.Length-1, 0))
	if data.Animating {
		status += " animating"
	}
	if data.Drag.Active {
		status += " dragging " + data.Drag.Piece.String() + " from " + board.CellName(data.Drag.From)
	}
	return status
}

// Frame lays out the board next to the timeline, with the track and status
// line below.
func (r *Renderer) Frame(data app.RenderData, t *timeline.Tree) string {
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		r.styles.box.Render(r.Board(data.Board)),
		r.styles.box.Render(r.Timeline(t)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, r.Track(data), r.Status(data))
}
