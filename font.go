package main

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Typeface is a parsed font that hands out faces by pixel size. Without a
// font file it falls back to basicfont, scaled up when drawn.
type Typeface struct {
	name  string
	font  *opentype.Font
	faces map[int]font.Face
}

// LoadTypeface loads dir/file, then dir/FallbackFontFile. If neither parses,
// the typeface draws with basicfont.Face7x13.
func LoadTypeface(dir, file string) *Typeface {
	tf := &Typeface{name: file, faces: map[int]font.Face{}}
	for _, name := range []string{file, FallbackFontFile} {
		if name == "" {
			continue
		}
		f, err := parseFont(filepath.Join(dir, name))
		if err != nil {
			log.Warn("font unavailable", "font", name, "err", err)
			continue
		}
		tf.name, tf.font = name, f
		return tf
	}
	log.Warn("using basic font", "font", file)
	return tf
}

func parseFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}

// Face returns a face for size pixels and the scale it must be drawn at.
func (tf *Typeface) Face(size float64) (font.Face, float64) {
	if tf == nil || tf.font == nil {
		return basicfont.Face7x13, size / 13
	}
	px := int(math.Round(size))
	if px < 1 {
		px = 1
	}
	if face, ok := tf.faces[px]; ok {
		return face, 1
	}
	face, err := opentype.NewFace(tf.font, &opentype.FaceOptions{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Warn("font face error, using basic font", "font", tf.name, "size", px, "err", err)
		return basicfont.Face7x13, size / 13
	}
	tf.faces[px] = face
	return face, 1
}

// MeasureText returns the drawn width and line height of s.
func MeasureText(face font.Face, scale float64, s string) (w, h float64) {
	m := face.Metrics()
	lineHeight := float64((m.Ascent + m.Descent).Ceil())
	return float64(font.MeasureString(face, s).Ceil()) * scale, lineHeight * scale
}

// TextStyle describes one block of page text.
type TextStyle struct {
	Face    font.Face
	Scale   float64
	Color   color.Color
	Opacity float64
}

// DrawCentered draws s with its horizontal center at cx and its top at y.
func DrawCentered(screen *ebiten.Image, st TextStyle, s string, cx, y float64) {
	w, _ := MeasureText(st.Face, st.Scale, s)
	drawText(screen, st, s, cx-w/2, y)
}

func drawText(screen *ebiten.Image, st TextStyle, s string, x, y float64) {
	if st.Opacity <= 0 {
		return
	}
	ascent := float64(st.Face.Metrics().Ascent.Ceil())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, ascent)
	op.GeoM.Scale(st.Scale, st.Scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(st.Color)
	op.ColorScale.ScaleAlpha(float32(math.Min(st.Opacity, 1)))
	op.Filter = ebiten.FilterLinear
	text.DrawWithOptions(screen, s, st.Face, op)
}

// WrapText breaks s into lines no wider than maxWidth. A single word wider
// than maxWidth gets a line of its own.
func WrapText(face font.Face, scale float64, s string, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := words[0]
	for _, word := range words[1:] {
		candidate := cur + " " + word
		if w, _ := MeasureText(face, scale, candidate); w <= maxWidth {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = word
	}
	return append(lines, cur)
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	st := TextStyle{Face: face, Scale: 1, Color: clr, Opacity: 1}
	_, lineHeight := MeasureText(face, 1, s)
	if lineHeight <= 0 {
		lineHeight = 16
	}
	for i, line := range strings.Split(s, "\n") {
		drawText(screen, st, line, float64(x), float64(y)+float64(i)*lineHeight)
	}
}
