package canvas

import (
	"image/color"
	"math"
	"testing"
)

func TestMask(t *testing.T) {
	if Mask(500, 500, 500, 500, 1000) != 1 {
		t.Error("center should be fully visible")
	}
	if got := Mask(1000, 500, 500, 500, 1000); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("halfway: %v", got)
	}
	if Mask(2000, 500, 500, 500, 1000) != 0 {
		t.Error("outside radius should be hidden")
	}
	if Mask(2000, 500, 500, 500, 0) != 1 {
		t.Error("zero radius disables the mask")
	}
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if scaleAlpha(c, 1) != c {
		t.Error("full alpha should be unchanged")
	}
	if scaleAlpha(c, 0) != (color.RGBA{}) {
		t.Error("zero alpha should be transparent")
	}
	half := scaleAlpha(c, 0.5)
	if half.A != 127 || half.R != 100 {
		t.Errorf("half alpha should be premultiplied, got %v", half)
	}
}

func TestHoverFade(t *testing.T) {
	f := NewHoverFade(0.3)
	if f.Level(7, 0) != 0 {
		t.Fatal("unknown cell should be empty")
	}

	f.Enter(7, 1)
	if got := f.Level(7, 1.15); got <= 0 || got >= 1 {
		t.Errorf("mid fade-in: %v", got)
	}
	if got := f.Level(7, 2); got != 1 {
		t.Errorf("after fade-in: %v", got)
	}

	f.Leave(7, 2)
	f.Prune(2.1)
	if f.Len() != 1 {
		t.Error("cell still fading should not be pruned")
	}
	f.Prune(3)
	if f.Len() != 0 || f.Level(7, 3) != 0 {
		t.Error("faded cell should be pruned")
	}

	f.Leave(9, 3)
	if f.Len() != 0 {
		t.Error("leaving an unknown cell should not create a fade")
	}

	f.Enter(1, 4)
	f.Reset()
	if f.Len() != 0 {
		t.Error("Reset should drop all fades")
	}
}
