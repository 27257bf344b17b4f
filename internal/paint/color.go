// Package paint models the 2D-canvas style colours and gradients the
// background is built from, independent of any GPU image type.
package paint

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha colour with every channel in [0, 1].
type Color struct {
	R, G, B, A float64
}

var Transparent = Color{}

// RGBA builds a colour from 8-bit channels and a [0, 1] alpha.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: clamp01(a)}
}

// HSLA takes hue in degrees, saturation and lightness in percent, and alpha in [0, 1].
func HSLA(h, s, l, a float64) Color {
	c := colorful.Hsl(math.Mod(h, 360), s/100, l/100).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(a)}
}

func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
