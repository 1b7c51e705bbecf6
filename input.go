package main

import "github.com/charmbracelet/log"

// PointerMoved updates the hovered grid cell. Leaving a cell starts its fade out.
func (g *Game) PointerMoved(mx, my int) {
	now := g.now()
	left, entered := g.hover.Move(g.grid.IndexAt(float64(mx), float64(my)))
	if left >= 0 {
		g.fade.Leave(left, now)
	}
	if entered >= 0 {
		g.fade.Enter(entered, now)
	}
}

func (g *Game) PointerLeft() {
	if g.hover.Active {
		g.fade.Leave(g.hover.Index, g.now())
	}
	g.hover.Leave()
}

func (g *Game) RequestScreenshot() {
	g.screenshotRequested = true
}

// ReloadSite re-reads the site script and replays the text entrance.
// On failure the current copy stays up.
func (g *Game) ReloadSite() {
	site, err := LoadSite(g.sitePath)
	if err != nil {
		log.Error("site reload failed", "path", g.sitePath, "err", err)
		g.notify("Site script error, see log.")
		return
	}
	g.site = site
	g.textStart = g.now()
	log.Info("site reloaded", "path", g.sitePath, "title", site.Title)
}
