package paint

import (
	"image"
	"math"
	"sort"
)

type Stop struct {
	Offset float64
	Color  Color
}

// Stops is a colour ramp sorted by offset.
type Stops []Stop

// At samples the ramp. Positions outside the first and last stop take the
// colour of that stop.
func (s Stops) At(t float64) Color {
	if len(s) == 0 {
		return Transparent
	}
	if t <= s[0].Offset {
		return s[0].Color
	}
	last := s[len(s)-1]
	if t >= last.Offset {
		return last.Color
	}
	i := sort.Search(len(s), func(i int) bool { return s[i].Offset > t })
	a, b := s[i-1], s[i]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color
	}
	return a.Color.Lerp(b.Color, (t-a.Offset)/span)
}

type Gradient interface {
	At(x, y float64) Color
}

// Linear runs from (X0, Y0) at offset 0 to (X1, Y1) at offset 1.
type Linear struct {
	X0, Y0, X1, Y1 float64
	Stops          Stops
}

func (g Linear) At(x, y float64) Color {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return g.Stops.At(0)
	}
	return g.Stops.At(((x-g.X0)*dx + (y-g.Y0)*dy) / l2)
}

// Radial is a concentric gradient between radii R0 and R1 around (X, Y).
type Radial struct {
	X, Y   float64
	R0, R1 float64
	Stops  Stops
}

func (g Radial) At(x, y float64) Color {
	if g.R1 <= g.R0 {
		return g.Stops.At(1)
	}
	d := math.Hypot(x-g.X, y-g.Y)
	return g.Stops.At((d - g.R0) / (g.R1 - g.R0))
}

// Rasterize samples g at pixel centers into a w×h image.
func Rasterize(g Gradient, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, g.At(float64(x)+0.5, float64(y)+0.5).NRGBA())
		}
	}
	return img
}

// Disc renders a size×size sprite of a radial gradient clipped to a circle.
// The clip circle touches the sprite edges and sits at offset reach of the
// gradient, so a blob whose gradient radius is 6r but is filled only out to
// 3.6r uses reach 0.6.
func Disc(stops Stops, size int, reach float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			if d > 1 {
				continue
			}
			img.SetNRGBA(x, y, stops.At(d*reach).NRGBA())
		}
	}
	return img
}
