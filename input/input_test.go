package input

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeHost struct {
	w, h   int
	ui     func(mx, my int) bool
	events []string
}

func (h *fakeHost) ScreenSize() (int, int) { return h.w, h.h }

func (h *fakeHost) IsMouseOver(mx, my int) bool { return h.ui != nil && h.ui(mx, my) }

func (h *fakeHost) Click(mx, my int) bool {
	h.events = append(h.events, fmt.Sprintf("click %d,%d", mx, my))
	return true
}

func (h *fakeHost) PointerMoved(mx, my int) {
	h.events = append(h.events, fmt.Sprintf("move %d,%d", mx, my))
}

func (h *fakeHost) PointerLeft()       { h.events = append(h.events, "leave") }
func (h *fakeHost) ToggleTheme()       { h.events = append(h.events, "toggle") }
func (h *fakeHost) RequestScreenshot() { h.events = append(h.events, "screenshot") }
func (h *fakeHost) ReloadSite()        { h.events = append(h.events, "reload") }

func newHost() *fakeHost {
	return &fakeHost{w: 800, h: 600}
}

func TestPointerMovesAndLeaves(t *testing.T) {
	h := newHost()
	is := NewInputSystem(h)

	frames := []Frame{
		{MouseX: 10, MouseY: 10, Focused: true},
		{MouseX: 10, MouseY: 10, Focused: true},
		{MouseX: 90, MouseY: 10, Focused: true},
		{MouseX: 900, MouseY: 10, Focused: true},
		{MouseX: 900, MouseY: 10, Focused: true},
		{MouseX: 20, MouseY: 20, Focused: true},
		{MouseX: 20, MouseY: 20, Focused: false},
	}
	for _, f := range frames {
		if err := is.Handle(f); err != nil {
			t.Fatalf("handle: %v", err)
		}
	}

	want := []string{"move 10,10", "move 90,10", "leave", "move 20,20", "leave"}
	if !reflect.DeepEqual(h.events, want) {
		t.Errorf("got %v, want %v", h.events, want)
	}
}

func TestPointerOverWidgetLeavesGrid(t *testing.T) {
	h := newHost()
	h.ui = func(mx, my int) bool { return mx > 700 && my < 60 }
	is := NewInputSystem(h)

	is.Handle(Frame{MouseX: 650, MouseY: 30, Focused: true})
	is.Handle(Frame{MouseX: 720, MouseY: 30, Focused: true, Clicked: true})
	if !is.OverUI {
		t.Error("expected pointer over UI")
	}
	is.Handle(Frame{MouseX: 650, MouseY: 30, Focused: true})

	want := []string{"move 650,30", "leave", "click 720,30", "move 650,30"}
	if !reflect.DeepEqual(h.events, want) {
		t.Errorf("got %v, want %v", h.events, want)
	}
}

func TestClickOutsideWindowIgnored(t *testing.T) {
	h := newHost()
	is := NewInputSystem(h)
	is.Handle(Frame{MouseX: -5, MouseY: 10, Focused: true, Clicked: true})
	if len(h.events) != 0 {
		t.Errorf("unexpected events %v", h.events)
	}
}

func TestControlKeys(t *testing.T) {
	h := newHost()
	is := NewInputSystem(h)

	is.Handle(Frame{MouseX: -1, MouseY: -1, ToggleKey: true, ScreenshotKey: true, ReloadKey: true})
	want := []string{"screenshot", "reload", "toggle"}
	if !reflect.DeepEqual(h.events, want) {
		t.Errorf("got %v, want %v", h.events, want)
	}
}

func TestQuitKey(t *testing.T) {
	h := newHost()
	is := NewInputSystem(h)
	err := is.Handle(Frame{QuitKey: true, ToggleKey: true})
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("expected termination, got %v", err)
	}
	if len(h.events) != 0 {
		t.Errorf("quit frame should not dispatch other input: %v", h.events)
	}
}
