package paint

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func sameColor(a, b Color) bool {
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

func TestHSLA(t *testing.T) {
	tests := []struct {
		name       string
		h, s, l, a float64
		want       Color
	}{
		{"red", 0, 100, 50, 1, Color{1, 0, 0, 1}},
		{"green", 120, 100, 50, 0.5, Color{0, 1, 0, 0.5}},
		{"blue", 240, 100, 50, 0.25, Color{0, 0, 1, 0.25}},
		{"wraps past 360", 480, 100, 50, 1, Color{0, 1, 0, 1}},
		{"white", 200, 0, 100, 1, Color{1, 1, 1, 1}},
		{"alpha clamped", 0, 100, 50, 2, Color{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLA(tt.h, tt.s, tt.l, tt.a); !sameColor(got, tt.want) {
				t.Errorf("HSLA(%v, %v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, tt.a, got, tt.want)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	got := RGBA(255, 0, 51, 0.5).NRGBA()
	if got.R != 255 || got.G != 0 || got.B != 51 || got.A != 128 {
		t.Errorf("RGBA(255,0,51,0.5).NRGBA() = %+v", got)
	}
	if a := RGBA(0, 0, 0, 1.7).A; a != 1 {
		t.Errorf("alpha 1.7 clamped to %v, want 1", a)
	}
	if a := HSLA(0, 0, 0, -0.2).A; a != 0 {
		t.Errorf("alpha -0.2 clamped to %v, want 0", a)
	}
}

func TestStopsAt(t *testing.T) {
	black := Color{0, 0, 0, 1}
	white := Color{1, 1, 1, 1}
	none := Transparent
	stops := Stops{{0, black}, {0.5, white}, {1, none}}

	tests := []struct {
		t    float64
		want Color
	}{
		{-1, black},
		{0, black},
		{0.25, Color{0.5, 0.5, 0.5, 1}},
		{0.5, white},
		{0.75, Color{0.5, 0.5, 0.5, 0.5}},
		{1, none},
		{3, none},
	}
	for _, tt := range tests {
		if got := stops.At(tt.t); !sameColor(got, tt.want) {
			t.Errorf("At(%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}

	if got := (Stops{}).At(0.3); got != Transparent {
		t.Errorf("empty stops At = %+v, want transparent", got)
	}
}

func TestLinearDiagonal(t *testing.T) {
	g := Linear{X0: 0, Y0: 0, X1: 100, Y1: 50, Stops: Stops{
		{0, Color{0, 0, 0, 1}},
		{1, Color{1, 1, 1, 1}},
	}}
	if got := g.At(0, 0); !sameColor(got, Color{0, 0, 0, 1}) {
		t.Errorf("At(origin) = %+v", got)
	}
	if got := g.At(100, 50); !sameColor(got, Color{1, 1, 1, 1}) {
		t.Errorf("At(end) = %+v", got)
	}
	if got := g.At(50, 25); !sameColor(got, Color{0.5, 0.5, 0.5, 1}) {
		t.Errorf("At(middle) = %+v", got)
	}
	// points on a line perpendicular to the axis share a colour
	if a, b := g.At(50, 25), g.At(40, 45); !sameColor(a, b) {
		t.Errorf("perpendicular samples differ: %+v vs %+v", a, b)
	}
}

func TestRadial(t *testing.T) {
	inner := Color{0, 0, 1, 0.06}
	g := Radial{X: 10, Y: 10, R0: 40, R1: 140, Stops: Stops{{0, inner}, {1, Transparent}}}

	if got := g.At(10, 10); !sameColor(got, inner) {
		t.Errorf("inside inner radius = %+v, want first stop", got)
	}
	if got := g.At(10+90, 10); !sameColor(got, Color{0, 0, 0.5, 0.03}) {
		t.Errorf("halfway = %+v", got)
	}
	if got := g.At(500, 500); got != Transparent {
		t.Errorf("outside outer radius = %+v, want transparent", got)
	}
}

func TestRasterize(t *testing.T) {
	g := Linear{X0: 0, Y0: 0, X1: 4, Y1: 0, Stops: Stops{
		{0, Color{0, 0, 0, 1}},
		{1, Color{1, 0, 0, 1}},
	}}
	img := Rasterize(g, 4, 2)
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	prev := -1
	for x := 0; x < 4; x++ {
		c := img.NRGBAAt(x, 1)
		if int(c.R) <= prev {
			t.Errorf("red channel not increasing at x=%d: %d <= %d", x, c.R, prev)
		}
		prev = int(c.R)
	}
}

func TestDisc(t *testing.T) {
	core := Color{1, 1, 1, 1}
	img := Disc(Stops{{0, core}, {1, Transparent}}, 32, 0.6)

	if c := img.NRGBAAt(0, 0); c.A != 0 {
		t.Errorf("corner alpha = %d, want clipped to 0", c.A)
	}
	center := img.NRGBAAt(16, 16)
	if center.A < 240 {
		t.Errorf("center alpha = %d, want close to 255", center.A)
	}
	// at the clip edge the ramp is 60% through, so 40% alpha remains
	edge := img.NRGBAAt(31, 16)
	if edge.A < 95 || edge.A > 115 {
		t.Errorf("edge alpha = %d, want about 102", edge.A)
	}
}
