package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// InvertBlend composites so the ball inverts whatever is beneath it:
// out = src*(1-dst) + dst*(1-src). Transparent source pixels leave dst untouched.
var InvertBlend = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOneMinusDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Ball draws a filled circle with InvertBlend. The circle is rasterized once
// per diameter and color.
type Ball struct {
	sprite   *ebiten.Image
	diameter int
	color    color.RGBA
}

// Draw paints the ball with its top-left corner at (x, y).
func (b *Ball) Draw(screen *ebiten.Image, x, y, diameter float64, clr color.RGBA) {
	d := int(math.Ceil(diameter))
	if d <= 0 {
		return
	}
	if b.sprite == nil || b.diameter != d || b.color != clr {
		if b.sprite != nil {
			b.sprite.Deallocate()
		}
		b.sprite = ebiten.NewImage(d, d)
		r := float32(diameter) / 2
		vector.DrawFilledCircle(b.sprite, r, r, r, clr, true)
		b.diameter = d
		b.color = clr
	}

	op := &ebiten.DrawImageOptions{Blend: InvertBlend}
	op.GeoM.Translate(x, y)
	screen.DrawImage(b.sprite, op)
}
