package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"portfolio-canvas/theme"
)

func TestRunStopsAnimationOnError(t *testing.T) {
	g, err := NewGame(Options{Site: DefaultSite()})
	if err != nil {
		t.Fatal(err)
	}

	boom := errors.New("graphics driver lost")
	err = run(g, func(ebiten.Game) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("run returned %v", err)
	}
	if g.animator.Tick() {
		t.Error("animator still ticking after run failed")
	}
}

func TestOpenStore(t *testing.T) {
	if _, ok := openStore("").(*theme.MemoryStore); !ok {
		t.Error("empty path should give a memory store")
	}

	path := filepath.Join(t.TempDir(), "prefs.yaml")
	fs, ok := openStore(path).(*theme.FileStore)
	if !ok || fs.Path() != path {
		t.Errorf("openStore(%q) = %#v", path, fs)
	}
}
