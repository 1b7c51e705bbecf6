package ui

import "github.com/hajimehoshi/ebiten/v2"

// Widget is anything the UISystem can hit-test, click and draw.
type Widget interface {
	IsMouseOver(mx, my int) bool
	Click()
	Draw(screen *ebiten.Image, now float64)
	Place(screenW, screenH int)
}

// Button is a rectangular click target. Anchor positions it relative to the
// screen each time the screen size changes. Widgets embed it and supply Draw.
type Button struct {
	X, Y    float32
	W, H    float32
	OnClick func()
	Anchor  func(screenW, screenH int, w, h float32) (x, y float32)
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

func (b *Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Place(screenW, screenH int) {
	if b.Anchor != nil {
		b.X, b.Y = b.Anchor(screenW, screenH, b.W, b.H)
	}
}

// TopRight anchors a widget margin units from the top-right corner.
func TopRight(margin float32) func(screenW, screenH int, w, h float32) (float32, float32) {
	return func(screenW, _ int, w, _ float32) (float32, float32) {
		return float32(screenW) - w - margin, margin
	}
}
