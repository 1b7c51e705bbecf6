package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	"portfolio-canvas/anim"
	"portfolio-canvas/canvas"
	"portfolio-canvas/graph"
	"portfolio-canvas/input"
	"portfolio-canvas/motion"
	"portfolio-canvas/theme"
	"portfolio-canvas/ui"
	"portfolio-canvas/viewport"
)

// Options configures a new Game.
type Options struct {
	Site     Site
	SitePath string
	Store    theme.Store
	// FontsDir is searched for the site's fonts. Empty means use the built-in face.
	FontsDir      string
	Width, Height int
}

type Game struct {
	site     Site
	sitePath string
	store    theme.Store
	pref     theme.Preference

	// Derived from the window
	adapter      *viewport.Adapter
	grid         viewport.Grid
	hover        viewport.Hover
	screenWidth  int
	screenHeight int

	animator *motion.Animator
	clock    anim.Clock
	ticks    int

	// Presentation
	layers    []string
	fade      *canvas.HoverFade
	gridLayer canvas.GridLayer
	ball      canvas.Ball
	titleFace *Typeface
	bodyFace  *Typeface
	textStart float64
	title     anim.Entrance
	subtitle  anim.Entrance
	status    anim.Entrance

	// Sub-systems
	input  *input.InputSystem
	ui     *ui.UISystem
	toggle *ui.Switch

	renderErr           error
	screenshotRequested bool
}

func NewGame(opts Options) (*Game, error) {
	layers, err := layerOrder()
	if err != nil {
		return nil, fmt.Errorf("order layers: %w", err)
	}
	if opts.Store == nil {
		opts.Store = theme.NewMemoryStore()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWindowWidth, DefaultWindowHeight
	}

	g := &Game{
		site:     opts.Site,
		sitePath: opts.SitePath,
		store:    opts.Store,
		pref:     theme.Load(opts.Store),
		layers:   layers,
		fade:     canvas.NewHoverFade(HoverFadeDuration),
		title:    anim.SlideIn(-1, TitleDuration, 0),
		subtitle: anim.SlideIn(1, TitleDuration, SubtitleDelay),
		status:   anim.RiseIn(StatusRiseOffset, StatusDuration, StatusDelay),
	}

	// Mount counts as the first resize.
	g.adapter = viewport.NewAdapter(float64(opts.Width), float64(opts.Height))
	g.applyResize(opts.Width, opts.Height)

	g.animator = motion.NewAnimator(g.adapter.Config)
	g.animator.OnStop(func() {
		log.Debug("animation stopped", "steps", g.animator.Ticks())
	})

	if opts.FontsDir != "" {
		g.titleFace = LoadTypeface(opts.FontsDir, g.site.TitleFont)
		g.bodyFace = LoadTypeface(opts.FontsDir, g.site.BodyFont)
	}

	g.input = input.NewInputSystem(g)
	g.ui = ui.NewUISystem(g.uiFace, g.ScreenSize, DrawTextLines)
	g.toggle = ui.NewSwitch(g.pref.IsDark(), ToggleMargin, g.ToggleTheme)
	g.toggle.Style = g.switchStyle
	g.ui.Add(g.toggle)

	log.Info("page mounted", "theme", g.pref, "width", opts.Width, "height", opts.Height)
	return g, nil
}

func (g *Game) Update() error {
	if err := g.input.Update(); err != nil {
		g.Close()
		return err
	}
	g.tick()
	return nil
}

// tick advances everything time-based by one frame.
func (g *Game) tick() {
	g.animator.Tick()
	g.clock.Advance(1.0 / TicksPerSecond)
	g.ticks++
	if g.ticks%HoverPruneInterval == 0 {
		g.fade.Prune(g.now())
	}
}

func (g *Game) now() float64 { return g.clock.Elapsed() }

// Close stops the animation loop. It is safe to call more than once.
func (g *Game) Close() {
	g.animator.Stop()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.adapter.Resize(float64(outsideWidth), float64(outsideHeight)) {
		g.applyResize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) applyResize(w, h int) {
	g.screenWidth, g.screenHeight = w, h
	cfg := g.adapter.Config()
	g.grid = viewport.NewGrid(cfg.Bounds)
	g.hover.Leave()
	g.fade.Reset()
	log.Debug("viewport resized", "width", w, "height", h, "diameter", cfg.Diameter, "speed", cfg.Speed, "cells", g.grid.Len())
}

func (g *Game) palette() theme.Palette {
	return theme.PaletteFor(g.pref)
}

func (g *Game) switchStyle() ui.SwitchStyle {
	p := g.palette()
	return ui.SwitchStyle{Track: p.Track, Knob: p.Knob, Icon: p.Icon}
}

func (g *Game) uiFace() font.Face {
	face, _ := g.bodyFace.Face(UIFontSize)
	return face
}

// notify shows msg in the corner panel for a few seconds.
func (g *Game) notify(msg string) {
	g.ui.Debug.SetError(msg, g.now()+NoticeDuration)
}

// Draw layers, back to front. Edges say which layer must be painted first;
// Z orders layers the edges leave unconstrained.
var (
	pageLayers = []graph.Node{
		{ID: "background", Z: -2},
		{ID: "grid", Z: -1},
		{ID: "ball", Z: 5},
		{ID: "headline", Z: 10},
		{ID: "status", Z: 10},
		{ID: "controls", Z: 20},
	}
	pageLayerEdges = []graph.Arrow{
		{FromID: "background", ToID: "grid"},
		{FromID: "grid", ToID: "ball"},
		{FromID: "ball", ToID: "headline"},
		{FromID: "ball", ToID: "status"},
	}
)

func layerOrder() ([]string, error) {
	return graph.TopologicalSort(pageLayers, pageLayerEdges)
}

var _ ebiten.Game = (*Game)(nil)

func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderErr != nil {
		g.drawFallback(screen)
		return
	}
	if err := guardRender(func() { g.drawPage(screen) }); err != nil {
		g.renderErr = err
		var stack []byte
		if re, ok := err.(*RenderError); ok {
			stack = re.Stack
		}
		log.Error("page render failed", "err", err, "stack", string(stack))
		g.drawFallback(screen)
		return
	}

	if g.screenshotRequested {
		g.screenshotRequested = false
		if err := SaveScreenshot(screen, ScreenshotFile); err != nil {
			log.Error("screenshot failed", "err", err)
			g.notify("Screenshot failed.")
		} else {
			log.Info("screenshot saved", "file", ScreenshotFile)
		}
	}
}

func (g *Game) drawPage(screen *ebiten.Image) {
	for _, layer := range g.layers {
		switch layer {
		case "background":
			g.drawBackground(screen)
		case "grid":
			g.drawGrid(screen)
		case "ball":
			g.drawBall(screen)
		case "headline":
			g.drawHeadline(screen)
		case "status":
			g.drawStatus(screen)
		case "controls":
			g.drawControls(screen)
		}
	}
}

// drawFallback replaces the page once a render has failed.
func (g *Game) drawFallback(screen *ebiten.Image) {
	screen.Clear()
	screen.Fill(g.palette().Background)
	ebitenutil.DebugPrintAt(screen, FallbackMessage, 20, 20)
}
