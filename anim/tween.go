package anim

import "math"

// Tween interpolates a single value between From and To.
type Tween struct {
	From, To float64
	Duration float64
	Delay    float64
	Ease     Easing
}

// Progress returns the eased progress at elapsed seconds since the tween was
// started. Before Delay it is 0; after Delay+Duration it is 1.
func (tw Tween) Progress(elapsed float64) float64 {
	local := elapsed - tw.Delay
	if local <= 0 {
		return 0
	}
	if tw.Duration <= 0 || local >= tw.Duration {
		return 1
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	return ease(local / tw.Duration)
}

// Value returns the interpolated value at elapsed seconds.
func (tw Tween) Value(elapsed float64) float64 {
	return tw.From + (tw.To-tw.From)*tw.Progress(elapsed)
}

// Entrance pairs a horizontal or vertical offset with an opacity fade.
type Entrance struct {
	Offset  Tween
	Opacity Tween
}

// At returns the offset and opacity at elapsed seconds. Opacity is clamped
// to [0, 1] even when the easing overshoots.
func (e Entrance) At(elapsed float64) (offset, opacity float64) {
	offset = e.Offset.Value(elapsed)
	opacity = e.Opacity.Value(elapsed)
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return offset, opacity
}

// SlideIn starts from an offset of from (a fraction of the viewport width)
// and springs to rest.
func SlideIn(from, duration, delay float64) Entrance {
	return Entrance{
		Offset:  Tween{From: from, To: 0, Duration: duration, Delay: delay, Ease: DefaultSpring},
		Opacity: Tween{From: 0, To: 1, Duration: duration, Delay: delay, Ease: DefaultSpring},
	}
}

// RiseIn fades in while rising from dy units below its rest position.
func RiseIn(dy, duration, delay float64) Entrance {
	return Entrance{
		Offset:  Tween{From: dy, To: 0, Duration: duration, Delay: delay, Ease: EaseOut},
		Opacity: Tween{From: 0, To: 1, Duration: duration, Delay: delay, Ease: EaseOut},
	}
}

// Clock counts seconds by fixed ticks.
type Clock struct {
	elapsed float64
}

// Advance moves the clock forward by dt seconds.
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Elapsed returns the seconds since the clock started.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// Transition eases a value toward a target that can change at any time. A
// retarget starts from wherever the value currently is.
type Transition struct {
	from, to float64
	start    float64
	duration float64
	ease     Easing
}

// NewTransition returns a transition resting at value.
func NewTransition(value, duration float64, ease Easing) *Transition {
	return &Transition{from: value, to: value, duration: duration, ease: ease}
}

// Set retargets the transition at time now. Setting the current target is a
// no-op.
func (tr *Transition) Set(target, now float64) {
	if target == tr.to {
		return
	}
	tr.from = tr.Value(now)
	tr.to = target
	tr.start = now
}

// Target returns the value the transition is heading to.
func (tr *Transition) Target() float64 { return tr.to }

// Value returns the transition's value at time now.
func (tr *Transition) Value(now float64) float64 {
	return Tween{From: tr.from, To: tr.to, Duration: tr.duration, Delay: tr.start, Ease: tr.ease}.Value(now)
}

// Pulse returns a smooth 0..1..0 wave with the given period, holding at 0
// until delay has passed.
func Pulse(elapsed, period, delay float64) float64 {
	local := elapsed - delay
	if local <= 0 || period <= 0 {
		return 0
	}
	return (1 - math.Cos(2*math.Pi*local/period)) / 2
}
