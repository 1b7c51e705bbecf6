package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DebugPanel shows a short error message in the bottom-right corner until it
// expires or is cleared.
type DebugPanel struct {
	Error   string
	Expires float64
}

// SetError shows msg until time until. A zero until keeps it up until Clear.
func (d *DebugPanel) SetError(msg string, until float64) {
	d.Error = msg
	d.Expires = until
}

func (d *DebugPanel) Clear() {
	d.Error = ""
	d.Expires = 0
}

// Visible reports whether there is a message to show at time now.
func (d *DebugPanel) Visible(now float64) bool {
	if d == nil || d.Error == "" {
		return false
	}
	return d.Expires == 0 || now < d.Expires
}

func (d *DebugPanel) Draw(screen *ebiten.Image, now float64, getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	if !d.Visible(now) {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	// Panel size
	pw, ph := 300, 60
	if pw > w-20 {
		pw = w - 20
	}
	x := w - pw - 10
	y := h - ph - 10
	bg := color.RGBA{40, 40, 40, 220}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), bg, false)
	if getFace != nil && drawText != nil {
		face := getFace()
		if face != nil {
			drawText(screen, face, d.Error, x+8, y+8, color.RGBA{255, 200, 50, 255})
		}
	}
}
