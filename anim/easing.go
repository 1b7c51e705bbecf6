// Package anim provides the easing curves and tweens used for the page's
// entrance animations.
package anim

import "math"

// Easing maps normalized time in [0, 1] to progress. Progress may overshoot 1.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut is a cubic ease-in-out.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// EaseOut is a cubic ease-out.
func EaseOut(t float64) float64 {
	f := 1 - t
	return 1 - f*f*f
}

// Spring returns the step response of a damped mass-spring system, evaluated
// over span seconds of simulated time as t goes from 0 to 1.
func Spring(stiffness, damping, mass, span float64) Easing {
	if mass <= 0 {
		mass = 1
	}
	w0 := math.Sqrt(stiffness / mass)
	zeta := damping / (2 * math.Sqrt(stiffness*mass))

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		x := t * span
		switch {
		case zeta < 1:
			wd := w0 * math.Sqrt(1-zeta*zeta)
			env := math.Exp(-zeta * w0 * x)
			return 1 - env*(math.Cos(wd*x)+(zeta*w0/wd)*math.Sin(wd*x))
		case zeta == 1:
			return 1 - math.Exp(-w0*x)*(1+w0*x)
		default:
			s := math.Sqrt(zeta*zeta - 1)
			r1 := -w0 * (zeta - s)
			r2 := -w0 * (zeta + s)
			return 1 - (r2*math.Exp(r1*x)-r1*math.Exp(r2*x))/(r2-r1)
		}
	}
}

// DefaultSpring is the spring used for the headline text: stiffness 50 with
// damping 10 and unit mass, settling over about two seconds.
var DefaultSpring = Spring(50, 10, 1, 2)
