// Package debugui draws a Dear ImGui overlay on top of the visualizer: a
// timeline inspector and per-system frame timings.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/chronochess/frame"
)

// ImguiItem holds a Dear ImGui render function called once per frame.
type ImguiItem struct {
	Name   string
	Render func()
}

// Windows is the resource listing the overlay's render functions.
type Windows struct {
	Items []ImguiItem
}

func (w *Windows) Add(items ...ImguiItem) {
	w.Items = append(w.Items, items...)
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input,
// in which case the visualizer ignores it.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Backend is the resource holding the ImGui renderer for ebiten.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// ImguiSystem updates InputState and defers every window's render function
// to the end of the frame.
type ImguiSystem struct {
	Windows frame.Singleton[Windows]
	Input   frame.Singleton[InputState]
}

func (s *ImguiSystem) Execute(f *frame.UpdateFrame) {
	if state := s.Input.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	windows := s.Windows.Get()
	if windows == nil {
		return
	}
	for _, item := range windows.Items {
		f.Commands.Defer(item.Render)
	}
}

// NewBackend creates the ImGui context and its ebiten renderer.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Backend{EbitenBackend: b}
}
