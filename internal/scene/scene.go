// Package scene wires the surface, the particle field and the page together
// behind host-agnostic event methods. A host (the ebiten game, or a test)
// calls Resize, PointerMove, key and click handlers, and Tick once per frame.
package scene

import (
	"log"
	"time"

	"github.com/iburimskiy/aura/internal/config"
	"github.com/iburimskiy/aura/internal/page"
	"github.com/iburimskiy/aura/internal/sim"
	"github.com/iburimskiy/aura/internal/surface"
)

type Options struct {
	Width, Height float64
	Ratio         float64
	Rand          sim.Rand
	Field         sim.Options
	// Document defaults to page.Standard when nil.
	Document *page.Document
}

type Scene struct {
	Surface  *surface.Surface
	Field    *sim.Field
	Ctx      *sim.Context
	Document *page.Document

	drift Interval

	// last raw cursor sample, see Cursor
	cursorX, cursorY float64
	cursorSeen       bool
}

func New(opts Options) *Scene {
	s := &Scene{
		Surface:  surface.New(opts.Width, opts.Height, opts.Ratio),
		Field:    sim.NewField(opts.Rand, opts.Width, opts.Height, opts.Field),
		Ctx:      sim.NewContext(opts.Width, opts.Height),
		Document: opts.Document,
	}
	if s.Document == nil {
		s.Document = page.Standard(page.DefaultLocation(), "AURA")
	}
	s.Document.Layout(opts.Width, opts.Height)
	s.drift = Interval{
		Period: config.DriftInterval,
		Fn:     func() { sim.DriftCenter(s.Ctx) },
	}
	log.Printf("[aura] field of %d particles and %d orbs at %vx%v", len(s.Field.Particles), len(s.Field.Orbs), opts.Width, opts.Height)
	return s
}

// Resize applies a viewport change. Particle and orb counts stay fixed; only
// the surface, the drift origin and the wrap bounds follow the new size.
func (s *Scene) Resize(w, h, ratio float64) bool {
	if !s.Surface.Resize(w, h, ratio) {
		return false
	}
	s.Ctx.Width, s.Ctx.Height = w, h
	s.Document.Layout(w, h)
	log.Printf("[aura] resize %vx%v @%vx", w, h, s.Surface.Ratio)
	return true
}

// PointerMove records the pointer for the simulator and feeds the parallax.
func (s *Scene) PointerMove(x, y float64) {
	p := &s.Ctx.Pointer
	p.VX, p.VY = x-p.X, y-p.Y
	p.X, p.Y = x, y
	s.Document.PointerMove(s.Surface.Width, s.Surface.Height, x, y)
}

// Cursor feeds a polled cursor position. The first sample only primes the
// tracker, so the pointer stays at the center until the cursor really moves.
func (s *Scene) Cursor(x, y float64) {
	if !s.cursorSeen {
		s.cursorX, s.cursorY, s.cursorSeen = x, y, true
		return
	}
	if x == s.cursorX && y == s.cursorY {
		return
	}
	s.cursorX, s.cursorY = x, y
	s.PointerMove(x, y)
}

func (s *Scene) Press(x, y float64) {
	s.Document.Press(x, y)
}

func (s *Scene) Release(x, y float64) bool {
	return s.Document.Release(x, y)
}

func (s *Scene) Click(x, y float64) bool {
	return s.Document.Click(x, y)
}

func (s *Scene) KeyTab() {
	s.Document.KeyTab()
}

func (s *Scene) KeyEnter() bool {
	return s.Document.KeyEnter()
}

// Tick runs the drift timer for dt of host time and then steps the field once.
func (s *Scene) Tick(dt time.Duration) {
	s.drift.Advance(dt)
	s.Field.Step(s.Ctx)
}
