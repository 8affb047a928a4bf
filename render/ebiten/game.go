// Package ebiten is the interactive back-end: it opens a window, feeds
// pointer and keyboard input to the frame loop and draws its RenderData.
package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/board"
	"github.com/plus3/chronochess/debugui"
	"github.com/plus3/chronochess/frame"
	"github.com/plus3/chronochess/timeline"
)

var (
	lightSquare = color.RGBA{240, 217, 181, 255}
	darkSquare  = color.RGBA{181, 136, 99, 255}
	background  = color.RGBA{32, 32, 36, 255}
	nodeFill    = color.RGBA{58, 58, 66, 255}
	cursorColor = color.RGBA{209, 109, 122, 255}
	trackColor  = color.RGBA{120, 120, 130, 255}
	markerColor = color.RGBA{95, 159, 176, 255}
	whitePiece  = color.RGBA{250, 250, 245, 255}
	blackPiece  = color.RGBA{25, 25, 30, 255}
)

var keyBindings = map[ebiten.Key]app.KeyCode{
	ebiten.KeyArrowLeft:  app.KeyLeft,
	ebiten.KeyArrowRight: app.KeyRight,
	ebiten.KeyArrowUp:    app.KeyUp,
	ebiten.KeyArrowDown:  app.KeyDown,
	ebiten.KeyHome:       app.KeyHome,
	ebiten.KeyEnd:        app.KeyEnd,
	ebiten.KeyA:          app.KeyA,
}

// Game implements ebiten.Game around an app.Loop.
type Game struct {
	loop    *app.Loop
	log     *zap.SugaredLogger
	tps     int
	overlay *debugui.Backend
	input   *frame.Singleton[debugui.InputState]

	pointerX, pointerY int
}

// New creates a game driving loop at tps updates per second. overlay may be
// nil; otherwise it must be installed on loop with debugui.Install.
func New(loop *app.Loop, tps int, overlay *debugui.Backend, log *zap.SugaredLogger) *Game {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	g := &Game{
		loop:     loop,
		log:      log,
		tps:      tps,
		overlay:  overlay,
		pointerX: -1,
		pointerY: -1,
	}
	if overlay != nil {
		g.input = frame.NewSingleton[debugui.InputState](loop.Resources())
	}
	return g
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	geom := g.loop.State().Geometry()
	ebiten.SetWindowSize(int(geom.Width), int(geom.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.tps)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.log.Infow("quit requested", "frames", g.loop.Stats().Frames)
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}
	g.pollInput()
	g.loop.Step(1.0 / float64(g.tps))
	if g.overlay != nil {
		g.overlay.EndFrame()
	}
	return nil
}

func (g *Game) pollInput() {
	var captureMouse, captureKeyboard bool
	if g.input != nil {
		if state := g.input.Get(); state != nil {
			captureMouse, captureKeyboard = state.WantCaptureMouse, state.WantCaptureKeyboard
		}
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if !captureMouse {
		if x != g.pointerX || y != g.pointerY {
			g.loop.Push(app.PointerMove{X: fx, Y: fy})
		}
		for button, b := range map[ebiten.MouseButton]app.Button{
			ebiten.MouseButtonLeft:  app.ButtonLeft,
			ebiten.MouseButtonRight: app.ButtonRight,
		} {
			if inpututil.IsMouseButtonJustPressed(button) {
				g.loop.Push(app.PointerButton{Button: b, Pressed: true, X: fx, Y: fy})
			}
			if inpututil.IsMouseButtonJustReleased(button) {
				g.loop.Push(app.PointerButton{Button: b, Pressed: false, X: fx, Y: fy})
			}
		}
	}
	g.pointerX, g.pointerY = x, y

	if !captureKeyboard {
		for key, code := range keyBindings {
			if inpututil.IsKeyJustPressed(key) {
				g.loop.Push(app.Key{Code: code, Pressed: true})
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	data := g.loop.Frame()

	drawBoard(screen, data)
	drawTimeline(screen, data)
	drawTrack(screen, data)
	if data.Drag.Active {
		size := float32(data.Geometry.CellSize())
		drawPiece(screen, data.Drag.Piece, float32(data.Drag.X)-size/2, float32(data.Drag.Y)-size/2, size)
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	geom := g.loop.State().Geometry()
	return int(geom.Width), int(geom.Height)
}

func drawBoard(screen *ebiten.Image, data app.RenderData) {
	g := data.Geometry
	size := float32(g.CellSize())
	for cell := range board.Size {
		x, y := g.CellOrigin(cell)
		row, col := board.RowCol(cell)
		c := lightSquare
		if (row+col)%2 == 1 {
			c = darkSquare
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)

		if data.Drag.Active && data.Drag.From == cell {
			continue
		}
		if p := data.Board.At(cell); !p.IsEmpty() {
			drawPiece(screen, p, float32(x), float32(y), size)
		}
	}
}

// drawPiece draws p as a disc with its FEN letter. Piece artwork is left to
// skins; Piece.Sprite selects the frame when one is loaded.
func drawPiece(screen *ebiten.Image, p board.Piece, x, y, size float32) {
	fill, edge := whitePiece, blackPiece
	if p.Color == board.Black {
		fill, edge = blackPiece, whitePiece
	}
	r := size * 0.38
	vector.DrawFilledCircle(screen, x+size/2, y+size/2, r, fill, true)
	vector.StrokeCircle(screen, x+size/2, y+size/2, r, 2, edge, true)
	if size >= 16 {
		ebitenutil.DebugPrintAt(screen, p.String(), int(x+size/2)-3, int(y+size/2)-8)
	}
}

func drawTimeline(screen *ebiten.Image, data app.RenderData) {
	data.View.Walk(func(vn *timeline.ViewNode) bool {
		vector.DrawFilledRect(screen, float32(vn.X), float32(vn.Y), float32(vn.Width), float32(vn.Height), nodeFill, false)
		for _, th := range vn.Thumbnails {
			snap, ok := vn.Node.Snapshot(th.Index)
			if !ok {
				continue
			}
			drawThumbnail(screen, snap, float32(th.X), float32(th.Y), float32(th.Size))

			if data.Cursor.Node == vn.Node && data.Cursor.Index == th.Index {
				vector.StrokeRect(screen, float32(th.X), float32(th.Y), float32(th.Size), float32(th.Size), 2, cursorColor, false)
			}
		}
		return true
	})
}

func drawThumbnail(screen *ebiten.Image, b board.Board, x, y, size float32) {
	vector.DrawFilledRect(screen, x, y, size, size, lightSquare, false)
	cell := size / board.Width
	for i := range board.Size {
		p := b.At(i)
		if p.IsEmpty() {
			continue
		}
		row, col := board.RowCol(i)
		c := whitePiece
		if p.Color == board.Black {
			c = blackPiece
		}
		vector.DrawFilledRect(screen, x+float32(col)*cell, y+float32(row)*cell, cell, cell, c, false)
	}
}

func drawTrack(screen *ebiten.Image, data app.RenderData) {
	if !data.MarkerVisible {
		return
	}
	track := data.Geometry.Track
	x0 := float32(track.X + track.Margin)
	vector.StrokeLine(screen, x0, float32(track.Y), x0+float32(track.Width), float32(track.Y), 2, trackColor, true)

	half := float32(data.Geometry.TrackHeight / 2)
	vector.DrawFilledRect(screen, float32(data.MarkerX)-2, float32(track.Y)-half, 4, 2*half, markerColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d/%d", data.Timestamp, data.Length-1), int(x0), int(track.Y-float64(half))-16)
}
