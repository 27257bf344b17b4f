// Package surface keeps the drawing surface sized to the viewport.
//
// Drawing code works in logical pixels; the backing image is logical size
// times the device pixel ratio, and a uniform scale maps one onto the other.
package surface

import "math"

type Surface struct {
	Width  float64
	Height float64
	Ratio  float64
}

func New(w, h, ratio float64) *Surface {
	s := &Surface{}
	s.Resize(w, h, ratio)
	return s
}

// Resize applies a new viewport size and reports whether anything changed.
// Repeating the same input is a no-op.
func (s *Surface) Resize(w, h, ratio float64) bool {
	ratio = math.Max(1, ratio)
	if s.Width == w && s.Height == h && s.Ratio == ratio {
		return false
	}
	s.Width, s.Height, s.Ratio = w, h, ratio
	return true
}

func (s *Surface) BackingWidth() int {
	return int(math.Round(s.Width * s.Ratio))
}

func (s *Surface) BackingHeight() int {
	return int(math.Round(s.Height * s.Ratio))
}

// Scale is the uniform transform from logical to backing pixels.
func (s *Surface) Scale() float64 {
	return s.Ratio
}

// ToLogical maps a backing pixel position to logical coordinates.
func (s *Surface) ToLogical(px, py float64) (float64, float64) {
	return px / s.Ratio, py / s.Ratio
}
