package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"portfolio-canvas/viewport"
)

// drawHeadline draws the title and subtitle as one block centered on the
// screen. Each line slides in from its own side.
func (g *Game) drawHeadline(screen *ebiten.Image) {
	w, h := float64(g.screenWidth), float64(g.screenHeight)
	clr := g.palette().Text
	elapsed := g.now() - g.textStart

	titleFace, titleScale := g.titleFace.Face(w * TitleSizeRatio)
	subFace, subScale := g.bodyFace.Face(w * SubtitleSizeRatio)
	_, titleH := MeasureText(titleFace, titleScale, g.site.Title)
	_, subH := MeasureText(subFace, subScale, g.site.Subtitle)
	top := (h - (titleH + SubtitleGap + subH)) / 2

	off, alpha := g.title.At(elapsed)
	DrawCentered(screen, TextStyle{Face: titleFace, Scale: titleScale, Color: clr, Opacity: alpha},
		g.site.Title, w/2+off*w, top)

	off, alpha = g.subtitle.At(elapsed)
	DrawCentered(screen, TextStyle{Face: subFace, Scale: subScale, Color: clr, Opacity: alpha},
		g.site.Subtitle, w/2+off*w, top+titleH+SubtitleGap)
}

// drawStatus draws the status line wrapped near the bottom edge.
func (g *Game) drawStatus(screen *ebiten.Image) {
	w, h := float64(g.screenWidth), float64(g.screenHeight)
	size, padding := statusMetrics(g.adapter.Config())

	face, scale := g.bodyFace.Face(size)
	lines := WrapText(face, scale, g.site.Status, w-2*padding)
	if len(lines) == 0 {
		return
	}
	_, lineH := MeasureText(face, scale, g.site.Status)

	off, alpha := g.status.At(g.now() - g.textStart)
	st := TextStyle{Face: face, Scale: scale, Color: g.palette().Text, Opacity: alpha}
	y := h - StatusBottom - float64(len(lines))*lineH + off
	for i, line := range lines {
		DrawCentered(screen, st, line, w/2, y+float64(i)*lineH)
	}
}

// statusMetrics returns the status font size and side padding for cfg.
func statusMetrics(cfg viewport.Config) (size, padding float64) {
	if cfg.Compact() {
		return StatusSizeSmall, StatusPaddingXSm
	}
	return StatusSizeLarge, StatusPaddingX
}
