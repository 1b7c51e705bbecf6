// Package motion advances the bouncing ball one frame at a time.
package motion

import (
	"math"

	"portfolio-canvas/viewport"
)

// State is the ball's top-left position and its direction on each axis.
// DX and DY are always +1 or -1.
type State struct {
	X, Y   float64
	DX, DY int
}

// Initial is the state at mount: top-left corner, moving down and right.
func Initial() State {
	return State{X: 0, Y: 0, DX: 1, DY: 1}
}

// Step moves s by speed along its direction and reflects off the edges of b.
//
// Direction flips are decided on the tentative position, before clamping.
// The position is then clamped into [0, max] on each axis; when the ball is
// larger than the bounds the lower bound wins and the coordinate stays at 0.
func Step(s State, b viewport.Bounds, diameter, speed float64) State {
	maxX := b.Width - diameter
	maxY := b.Height - diameter

	dx, dy := unit(s.DX), unit(s.DY)
	x := finite(s.X + float64(dx)*speed)
	y := finite(s.Y + float64(dy)*speed)

	if x <= 0 || x >= maxX {
		dx = -dx
	}
	if y <= 0 || y >= maxY {
		dy = -dy
	}

	return State{
		X:  clamp(x, maxX),
		Y:  clamp(y, maxY),
		DX: dx,
		DY: dy,
	}
}

// StepConfig is Step with the bounds, diameter and speed taken from cfg.
func StepConfig(s State, cfg viewport.Config) State {
	return Step(s, cfg.Bounds, cfg.Diameter, cfg.Speed)
}

func clamp(v, hi float64) float64 {
	return math.Max(math.Min(v, hi), 0)
}

func unit(d int) int {
	if d < 0 {
		return -1
	}
	return 1
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
