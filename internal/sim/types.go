package sim

// Rand is the random source used to lay out the field. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

type Vec struct {
	X, Y float64
}

// Particle orbits the shared center. Angle and Phase grow every step and are
// only ever read through sin/cos, so they are never normalized.
type Particle struct {
	Angle   float64
	Radius  float64
	Speed   float64
	Size    float64
	Hue     float64
	Alpha   float64
	Phase   float64
	Twinkle float64
}

// Orb is a free floating sparkle that wraps around the viewport edges.
type Orb struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Life   float64
	Hue    float64
}

// Pointer is the last known cursor position. VX/VY hold the last move delta.
type Pointer struct {
	X, Y   float64
	VX, VY float64
}

// Context is the mutable state shared by the simulation, the drift timer and
// the pointer handlers.
type Context struct {
	Width, Height float64
	Pointer       Pointer
	Center        Vec
	Tick          int
}

// NewContext centers both the orbit origin and the pointer in the viewport.
func NewContext(w, h float64) *Context {
	c := Vec{X: w / 2, Y: h / 2}
	return &Context{
		Width:   w,
		Height:  h,
		Center:  c,
		Pointer: Pointer{X: c.X, Y: c.Y},
	}
}

func between(rng Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}
