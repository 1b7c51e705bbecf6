package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

type UISystem struct {
	widgets       []Widget
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)
	Debug         *DebugPanel
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) *UISystem {
	return &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Debug:         &DebugPanel{},
	}
}

// Add registers a widget. Widgets added later are drawn on top and get clicks first.
func (ui *UISystem) Add(w Widget) {
	ui.widgets = append(ui.widgets, w)
	ui.updatePositions()
}

func (ui *UISystem) updatePositions() {
	w, h := ui.getScreenSize()
	for _, wd := range ui.widgets {
		wd.Place(w, h)
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updatePositions()
	for _, w := range ui.widgets {
		if w.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Click dispatches a click at (mx, my) to the topmost widget under it and
// reports whether one took it.
func (ui *UISystem) Click(mx, my int) bool {
	ui.updatePositions()
	for i := len(ui.widgets) - 1; i >= 0; i-- {
		if ui.widgets[i].IsMouseOver(mx, my) {
			ui.widgets[i].Click()
			return true
		}
	}
	return false
}

func (ui *UISystem) Draw(screen *ebiten.Image, now float64) {
	ui.updatePositions()
	for _, w := range ui.widgets {
		w.Draw(screen, now)
	}
	if ui.Debug != nil {
		ui.Debug.Draw(screen, now, ui.getFontFace, ui.drawText)
	}
}
