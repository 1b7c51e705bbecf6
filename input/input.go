package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Host defines the callbacks the input system needs from the main game.
type Host interface {
	ScreenSize() (int, int)
	IsMouseOver(mx, my int) bool
	Click(mx, my int) bool
	PointerMoved(mx, my int)
	PointerLeft()
	ToggleTheme()
	RequestScreenshot()
	ReloadSite()
}

// Frame is one tick's worth of raw input.
type Frame struct {
	MouseX, MouseY int
	Focused        bool
	Clicked        bool

	ToggleKey     bool
	ScreenshotKey bool
	ReloadKey     bool
	QuitKey       bool
}

type InputSystem struct {
	host Host

	// Exposed state for other packages (main) to read
	OverUI bool

	// Internal state
	inWindow   bool
	onGrid     bool
	lastMouseX int
	lastMouseY int
}

func NewInputSystem(h Host) *InputSystem {
	return &InputSystem{host: h}
}

// Update polls ebiten and handles the frame. It returns ebiten.Termination
// when the user asked to quit.
func (is *InputSystem) Update() error {
	mx, my := ebiten.CursorPosition()
	return is.Handle(Frame{
		MouseX:        mx,
		MouseY:        my,
		Focused:       ebiten.IsFocused(),
		Clicked:       inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ToggleKey:     inpututil.IsKeyJustPressed(ebiten.KeyT),
		ScreenshotKey: inpututil.IsKeyJustPressed(ebiten.KeyF12),
		ReloadKey:     inpututil.IsKeyJustPressed(ebiten.KeyF5),
		QuitKey:       inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	})
}

// Handle applies one frame of input to the host.
func (is *InputSystem) Handle(f Frame) error {
	if f.QuitKey {
		return ebiten.Termination
	}

	is.handleControlKeys(f)
	is.handlePointer(f)

	if f.Clicked && is.inWindow {
		is.host.Click(f.MouseX, f.MouseY)
	}
	return nil
}

func (is *InputSystem) handleControlKeys(f Frame) {
	// --- Screenshot ---
	if f.ScreenshotKey {
		is.host.RequestScreenshot()
	}

	// --- Reload site script ---
	if f.ReloadKey {
		is.host.ReloadSite()
	}

	// --- Theme ---
	if f.ToggleKey {
		is.host.ToggleTheme()
	}
}

// handlePointer turns cursor positions into move/leave notifications. The
// grid only sees the pointer when it is inside the window and not over a
// widget drawn above it.
func (is *InputSystem) handlePointer(f Frame) {
	w, h := is.host.ScreenSize()
	is.inWindow = f.Focused && f.MouseX >= 0 && f.MouseY >= 0 && f.MouseX < w && f.MouseY < h
	is.OverUI = is.inWindow && is.host.IsMouseOver(f.MouseX, f.MouseY)

	onGrid := is.inWindow && !is.OverUI
	if !onGrid {
		if is.onGrid {
			is.host.PointerLeft()
		}
		is.onGrid = false
		return
	}

	if !is.onGrid || f.MouseX != is.lastMouseX || f.MouseY != is.lastMouseY {
		is.host.PointerMoved(f.MouseX, f.MouseY)
	}
	is.onGrid = true
	is.lastMouseX, is.lastMouseY = f.MouseX, f.MouseY
}
