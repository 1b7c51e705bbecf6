package theme

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of colors the page is drawn with.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Ball       color.RGBA
	GridStroke color.RGBA
	HoverFill  color.RGBA
	Track      color.RGBA
	Knob       color.RGBA
	Icon       color.RGBA
}

var (
	lightPalette = Palette{
		Background: hex("#E1DFD8"),
		Text:       hex("#242424"),
		Ball:       hex("#2400AA"),
		GridStroke: hex("#2400AA"),
		HoverFill:  hex("#2400AA"),
		Track:      hex("#1F2937"),
		Knob:       hex("#FFFFFF"),
		Icon:       hex("#F59E0B"),
	}
	darkPalette = Palette{
		Background: hex("#242424"),
		Text:       hex("#E1DFD8"),
		Ball:       hex("#2400AA"),
		GridStroke: hex("#E1DFD8"),
		HoverFill:  hex("#C3C3C3"),
		Track:      hex("#D1D5DB"),
		Knob:       hex("#000000"),
		Icon:       hex("#E1DFD8"),
	}
)

// PaletteFor returns the palette for p.
func PaletteFor(p Preference) Palette {
	if p == Dark {
		return darkPalette
	}
	return lightPalette
}

// Mix blends two opaque colors, moving from a toward b by t in [0, 1].
func Mix(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

func hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("theme: bad palette color %s: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
