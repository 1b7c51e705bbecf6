package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"portfolio-canvas/viewport"
)

// GridStyle controls how the hover grid is painted.
type GridStyle struct {
	Stroke      color.RGBA
	StrokeWidth float32
	// Opacity applies to the whole layer, hover fills included.
	Opacity float64
	// MaskRadius fades cells out with distance from the screen center. Zero disables the mask.
	MaskRadius float64
}

// GridLayer renders the background grid into an offscreen image so the
// layer opacity applies once to strokes and fills together.
type GridLayer struct {
	img *ebiten.Image
}

// Draw paints grid onto screen. fill returns the color of a cell, or false
// when the cell is unfilled.
func (l *GridLayer) Draw(screen *ebiten.Image, grid viewport.Grid, style GridStyle, fill func(index int) (color.RGBA, bool)) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return
	}
	if l.img == nil || l.img.Bounds().Dx() != sw || l.img.Bounds().Dy() != sh {
		if l.img != nil {
			l.img.Deallocate()
		}
		l.img = ebiten.NewImage(sw, sh)
	}
	l.img.Clear()

	cx, cy := float64(sw)/2, float64(sh)/2
	size := float32(viewport.CellSize)

	for i := 0; i < grid.Len(); i++ {
		cell, _ := grid.Cell(i)
		mask := Mask(cell.X+viewport.CellSize/2, cell.Y+viewport.CellSize/2, cx, cy, style.MaskRadius)
		if mask <= 0 {
			continue
		}

		x, y := float32(cell.X), float32(cell.Y)
		if c, ok := fill(i); ok {
			vector.DrawFilledRect(l.img, x, y, size, size, scaleAlpha(c, mask), false)
		}
		vector.StrokeRect(l.img, x, y, size, size, style.StrokeWidth, scaleAlpha(style.Stroke, mask), true)
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(style.Opacity))
	screen.DrawImage(l.img, op)
}

// Mask is the radial falloff used for the grid: 1 at the center, 0 at radius and beyond.
func Mask(x, y, cx, cy, radius float64) float64 {
	if radius <= 0 {
		return 1
	}
	d := math.Hypot(x-cx, y-cy)
	if d >= radius {
		return 0
	}
	return 1 - d/radius
}

// scaleAlpha returns c with its opacity multiplied by a, premultiplied for ebiten.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
