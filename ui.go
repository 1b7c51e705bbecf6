package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"portfolio-canvas/theme"
)

func (g *Game) ScreenSize() (int, int) {
	return g.screenWidth, g.screenHeight
}

func (g *Game) IsMouseOver(mx, my int) bool {
	return g.ui.IsMouseOver(mx, my)
}

func (g *Game) Click(mx, my int) bool {
	return g.ui.Click(mx, my)
}

// ToggleTheme flips the theme and persists it. The new theme applies even
// when saving fails; the failure is reported in the notice panel.
func (g *Game) ToggleTheme() {
	next, err := theme.Toggle(g.store, g.pref)
	g.pref = next
	g.toggle.SetOn(next.IsDark(), g.now())
	if err != nil {
		log.Error("theme not saved", "theme", next, "err", err)
		g.notify("Theme could not be saved.")
		return
	}
	log.Info("theme changed", "theme", next)
}

func (g *Game) drawControls(screen *ebiten.Image) {
	g.ui.Draw(screen, g.now())
}
