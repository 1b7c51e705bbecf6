package anim

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]Easing{
		"linear":    Linear,
		"easeInOut": EaseInOut,
		"easeOut":   EaseOut,
		"spring":    DefaultSpring,
	}
	for name, ease := range easings {
		if got := ease(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v", name, got)
		}
		if got := ease(1); math.Abs(got-1) > 1e-3 {
			t.Errorf("%s(1) = %v", name, got)
		}
	}
}

func TestSpringOvershoots(t *testing.T) {
	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, DefaultSpring(float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("underdamped spring should overshoot, peak %v", peak)
	}
}

func TestSpringDampingRegimes(t *testing.T) {
	critical := Spring(50, 2*math.Sqrt(50), 1, 4)
	over := Spring(50, 40, 1, 10)
	for _, ease := range []Easing{critical, over} {
		prev := 0.0
		for i := 1; i <= 50; i++ {
			v := ease(float64(i) / 50)
			if v < prev-1e-9 || v > 1+1e-9 {
				t.Fatalf("non-oscillating spring should rise monotonically to 1, got %v after %v", v, prev)
			}
			prev = v
		}
	}
}

func TestTweenDelay(t *testing.T) {
	tw := Tween{From: -100, To: 0, Duration: 1, Delay: 0.5, Ease: Linear}

	if got := tw.Value(0.25); got != -100 {
		t.Errorf("before delay: %v", got)
	}
	if got := tw.Value(1.0); got != -50 {
		t.Errorf("halfway: %v", got)
	}
	if got := tw.Value(3); got != 0 {
		t.Errorf("after end: %v", got)
	}
}

func TestEntranceClampsOpacity(t *testing.T) {
	e := SlideIn(-1, 1, 0)
	for i := 0; i <= 60; i++ {
		_, op := e.At(float64(i) / 60)
		if op < 0 || op > 1 {
			t.Fatalf("opacity out of range at frame %d: %v", i, op)
		}
	}
	off, op := e.At(5)
	if off != 0 || op != 1 {
		t.Errorf("settled entrance: offset=%v opacity=%v", off, op)
	}
}

func TestRiseIn(t *testing.T) {
	e := RiseIn(20, 1, 2)
	off, op := e.At(1)
	if off != 20 || op != 0 {
		t.Errorf("before delay: offset=%v opacity=%v", off, op)
	}
	off, op = e.At(3)
	if off != 0 || op != 1 {
		t.Errorf("after end: offset=%v opacity=%v", off, op)
	}
}

func TestTransitionRetarget(t *testing.T) {
	tr := NewTransition(0, 0.4, Linear)
	tr.Set(28, 1)

	if got := tr.Value(1.2); math.Abs(got-14) > 1e-9 {
		t.Errorf("halfway: %v", got)
	}

	tr.Set(0, 1.2)
	if got := tr.Value(1.2); math.Abs(got-14) > 1e-9 {
		t.Errorf("retarget should start from current value, got %v", got)
	}
	if got := tr.Value(2); got != 0 {
		t.Errorf("after retarget settles: %v", got)
	}

	tr.Set(0, 5)
	if got := tr.Value(5); got != 0 {
		t.Errorf("setting same target moved value: %v", got)
	}
}

func TestPulse(t *testing.T) {
	if Pulse(1, 7, 2) != 0 {
		t.Error("pulse should hold during delay")
	}
	if got := Pulse(5.5, 7, 2); math.Abs(got-1) > 1e-9 {
		t.Errorf("pulse peak: %v", got)
	}
	if got := Pulse(9, 7, 2); math.Abs(got) > 1e-9 {
		t.Errorf("pulse trough: %v", got)
	}
}

func TestClock(t *testing.T) {
	var c Clock
	for i := 0; i < 60; i++ {
		c.Advance(1.0 / 60)
	}
	c.Advance(-1)
	if math.Abs(c.Elapsed()-1) > 1e-9 {
		t.Errorf("expected 1s, got %v", c.Elapsed())
	}
}
