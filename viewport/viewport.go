// Package viewport derives ball sizing, speed and bounds from the window size
// and lays out the hover grid that tiles the background.
package viewport

import "math"

const (
	// Breakpoint is the width below which the compact profile is used.
	Breakpoint = 640.0

	CompactDiameter = 320.0
	CompactSpeed    = 1.4
	WideDiameter    = 600.0
	WideSpeed       = 3.0
)

// Bounds is the visible area in window units.
type Bounds struct {
	Width, Height float64
}

// Config is everything a single animation step needs to know about the window.
type Config struct {
	Diameter float64
	Speed    float64
	Bounds   Bounds
}

// MaxX is the largest x the ball's top-left corner may reach.
func (c Config) MaxX() float64 { return c.Bounds.Width - c.Diameter }

// MaxY is the largest y the ball's top-left corner may reach.
func (c Config) MaxY() float64 { return c.Bounds.Height - c.Diameter }

// Compact reports whether the narrow profile is active.
func (c Config) Compact() bool { return c.Bounds.Width < Breakpoint }

// OnResize computes the derived configuration for a window of the given size.
// Negative extents are treated as zero.
func OnResize(width, height float64) Config {
	if width < 0 || math.IsNaN(width) {
		width = 0
	}
	if height < 0 || math.IsNaN(height) {
		height = 0
	}

	cfg := Config{
		Diameter: WideDiameter,
		Speed:    WideSpeed,
		Bounds:   Bounds{Width: width, Height: height},
	}
	if width < Breakpoint {
		cfg.Diameter = CompactDiameter
		cfg.Speed = CompactSpeed
	}
	return cfg
}

// Adapter keeps the derived configuration current as resize events arrive.
type Adapter struct {
	cfg     Config
	resizes int
}

// NewAdapter returns an adapter already resized to the initial window size.
func NewAdapter(width, height float64) *Adapter {
	a := &Adapter{}
	a.Resize(width, height)
	return a
}

// Resize recomputes the configuration. It runs on every event, even when the
// size is unchanged, and reports whether the size actually changed.
func (a *Adapter) Resize(width, height float64) bool {
	prev := a.cfg.Bounds
	a.cfg = OnResize(width, height)
	a.resizes++
	return a.resizes == 1 || prev != a.cfg.Bounds
}

// Config returns a snapshot of the current configuration.
func (a *Adapter) Config() Config {
	return a.cfg
}
