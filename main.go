package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"portfolio-canvas/theme"
)

func setupLogging() {
	log.SetPrefix("portfolio")
	log.SetReportTimestamp(true)
	if lvl := GetEnv(EnvLogLevel, ""); lvl != "" {
		level, err := log.ParseLevel(lvl)
		if err != nil {
			log.Warn("unknown log level", "level", lvl)
			return
		}
		log.SetLevel(level)
	}
}

func main() {
	setupLogging()

	sitePath := GetEnv(EnvSiteFile, DefaultSiteFile)
	site, err := LoadSite(sitePath)
	if err != nil {
		log.Error("site script failed, using defaults", "path", sitePath, "err", err)
	}

	prefsPath := GetEnv(EnvPrefsFile, "")
	if prefsPath == "" {
		if prefsPath, err = theme.DefaultPath(); err != nil {
			log.Warn("no config dir, preferences not kept", "err", err)
		}
	}
	store := openStore(prefsPath)

	g, err := NewGame(Options{
		Site:     site,
		SitePath: sitePath,
		Store:    store,
		FontsDir: GetEnv(EnvFontsDir, DefaultFontsDir),
		Width:    DefaultWindowWidth,
		Height:   DefaultWindowHeight,
	})
	if err != nil {
		log.Fatal("start", "err", err)
	}
	ebiten.SetWindowSize(DefaultWindowWidth, DefaultWindowHeight)
	title := DefaultWindowTitle
	if site.Title != "" {
		title = site.Title
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TicksPerSecond)

	if err := run(g, ebiten.RunGame); err != nil {
		log.Fatal("run", "err", err)
	}
}

// openStore returns a file store at path, or an in-memory store when path is empty.
func openStore(path string) theme.Store {
	if path == "" {
		return theme.NewMemoryStore()
	}
	fs := theme.NewFileStore(path)
	log.Debug("preferences", "path", fs.Path())
	return fs
}

// run drives g with runGame and stops its animation however the loop ends.
func run(g *Game, runGame func(ebiten.Game) error) error {
	defer g.Close()
	return runGame(g)
}
