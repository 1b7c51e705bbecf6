package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"portfolio-canvas/anim"
	"portfolio-canvas/canvas"
	"portfolio-canvas/theme"
)

// gridOpacity breathes between GridOpacity and GridPulseOpacity once the
// pulse delay has passed.
func gridOpacity(now float64) float64 {
	return GridOpacity + (GridPulseOpacity-GridOpacity)*anim.Pulse(now, GridPulsePeriod, GridPulseDelay)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(g.palette().Background)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	now := g.now()
	p := g.palette()
	style := canvas.GridStyle{
		Stroke:      p.GridStroke,
		StrokeWidth: GridStrokeWidth,
		Opacity:     gridOpacity(now),
		MaskRadius:  GridMaskRadius,
	}
	g.gridLayer.Draw(screen, g.grid, style, func(i int) (color.RGBA, bool) {
		return g.cellFill(i, now)
	})
}

// cellFill is the hover color of cell i at time now, blended from the
// background toward the hover fill as the cell fades in.
func (g *Game) cellFill(i int, now float64) (color.RGBA, bool) {
	level := g.fade.Level(i, now)
	if level <= 0 {
		return color.RGBA{}, false
	}
	p := g.palette()
	return theme.Mix(p.Background, p.HoverFill, level), true
}

func (g *Game) drawBall(screen *ebiten.Image) {
	st := g.animator.State()
	g.ball.Draw(screen, st.X, st.Y, g.adapter.Config().Diameter, g.palette().Ball)
}
