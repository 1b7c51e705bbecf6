package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"portfolio-canvas/anim"
)

const (
	SwitchWidth   = 64
	SwitchHeight  = 36
	knobSize      = 28
	knobInset     = 4
	knobTravel    = 28
	knobSlideTime = 0.4
)

// SwitchStyle holds the colors a Switch is drawn with.
type SwitchStyle struct {
	Track color.RGBA
	Knob  color.RGBA
	Icon  color.RGBA
}

// Switch is the sun/moon theme toggle: a pill-shaped track with a knob that
// slides right when On.
type Switch struct {
	Button
	Style func() SwitchStyle

	on   bool
	knob *anim.Transition
}

// NewSwitch returns a switch resting in state on. onClick runs on every click;
// the owner reports the resulting state back with SetOn.
func NewSwitch(on bool, margin float32, onClick func()) *Switch {
	start := 0.0
	if on {
		start = knobTravel
	}
	return &Switch{
		Button: Button{
			W:       SwitchWidth,
			H:       SwitchHeight,
			OnClick: onClick,
			Anchor:  TopRight(margin),
		},
		on:   on,
		knob: anim.NewTransition(start, knobSlideTime, anim.EaseInOut),
	}
}

// On reports the switch state.
func (s *Switch) On() bool { return s.on }

// SetOn moves the switch to state on, sliding the knob from time now.
func (s *Switch) SetOn(on bool, now float64) {
	s.on = on
	target := 0.0
	if on {
		target = knobTravel
	}
	s.knob.Set(target, now)
}

// KnobOffset is the knob's horizontal travel at time now, from 0 to 28.
func (s *Switch) KnobOffset(now float64) float64 {
	return s.knob.Value(now)
}

func (s *Switch) Draw(screen *ebiten.Image, now float64) {
	style := SwitchStyle{
		Track: color.RGBA{31, 41, 55, 255},
		Knob:  color.RGBA{255, 255, 255, 255},
		Icon:  color.RGBA{245, 158, 11, 255},
	}
	if s.Style != nil {
		style = s.Style()
	}

	r := s.H / 2
	vector.DrawFilledCircle(screen, s.X+r, s.Y+r, r, style.Track, true)
	vector.DrawFilledCircle(screen, s.X+s.W-r, s.Y+r, r, style.Track, true)
	vector.DrawFilledRect(screen, s.X+r, s.Y, s.W-2*r, s.H, style.Track, false)

	kr := float32(knobSize) / 2
	kx := s.X + knobInset + float32(s.KnobOffset(now)) + kr
	ky := s.Y + knobInset + kr
	// shadow
	vector.DrawFilledCircle(screen, kx, ky+1, kr, color.RGBA{0, 0, 0, 60}, true)
	vector.DrawFilledCircle(screen, kx, ky, kr, style.Knob, true)

	iconR := float32(9)
	if screen.Bounds().Dx() < 640 {
		iconR = 7
	}
	if s.on {
		drawMoon(screen, kx, ky, iconR, style.Icon, style.Knob)
	} else {
		drawSun(screen, kx, ky, iconR, style.Icon)
	}
}

func drawSun(screen *ebiten.Image, cx, cy, r float32, clr color.RGBA) {
	core := r * 0.5
	vector.DrawFilledCircle(screen, cx, cy, core, clr, true)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		cos, sin := float32(math.Cos(a)), float32(math.Sin(a))
		vector.StrokeLine(screen,
			cx+cos*(core+2), cy+sin*(core+2),
			cx+cos*r, cy+sin*r,
			1.5, clr, true)
	}
}

func drawMoon(screen *ebiten.Image, cx, cy, r float32, clr, bg color.RGBA) {
	vector.DrawFilledCircle(screen, cx, cy, r*0.8, clr, true)
	vector.DrawFilledCircle(screen, cx+r*0.4, cy-r*0.3, r*0.7, bg, true)
}
