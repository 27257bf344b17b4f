package sim

import (
	"math"

	"github.com/iburimskiy/aura/internal/config"
)

// ParticleCount derives the particle population from the viewport area.
func ParticleCount(w, h float64) int {
	n := (w * h) / config.DensityDivisor
	n = math.Max(config.MinParticles, math.Min(config.MaxParticles, n))
	return int(math.Round(n))
}

func OrbCount(particles int) int {
	return int(math.Round(float64(particles) * config.OrbRatio))
}

type Options struct {
	// RespawnOrbs relocates an orb once its life counter reaches zero.
	RespawnOrbs bool
}

// Field owns the particles and orbs. Both populations are fixed at creation.
type Field struct {
	Particles []Particle
	Orbs      []Orb

	rng  Rand
	opts Options
}

func NewField(rng Rand, w, h float64, opts Options) *Field {
	n := ParticleCount(w, h)
	f := &Field{
		Particles: make([]Particle, n),
		Orbs:      make([]Orb, OrbCount(n)),
		rng:       rng,
		opts:      opts,
	}

	halfDiag := math.Hypot(w, h) / 2
	for i := range f.Particles {
		angle := rng.Float64() * math.Pi * 2
		reach := halfDiag * between(rng, config.OrbitScaleMin, config.OrbitScaleMax)
		f.Particles[i] = Particle{
			Angle:   angle,
			Radius:  between(rng, config.MinOrbitRadius, reach),
			Speed:   between(rng, config.ParticleSpeedMin, config.ParticleSpeedMax),
			Size:    between(rng, config.ParticleSizeMin, config.ParticleSizeMax),
			Hue:     between(rng, config.ParticleHueMin, config.ParticleHueMax),
			Alpha:   between(rng, config.ParticleAlphaMin, config.ParticleAlphaMax),
			Phase:   between(rng, 0, math.Pi*2),
			Twinkle: between(rng, config.TwinkleMin, config.TwinkleMax),
		}
	}
	for i := range f.Orbs {
		f.Orbs[i] = f.newOrb(w, h)
	}
	return f
}

func (f *Field) newOrb(w, h float64) Orb {
	return Orb{
		X:    between(f.rng, 0, w),
		Y:    between(f.rng, 0, h),
		VX:   between(f.rng, -config.OrbVelocity, config.OrbVelocity),
		VY:   between(f.rng, -config.OrbVelocity, config.OrbVelocity),
		R:    between(f.rng, config.OrbRadiusMin, config.OrbRadiusMax),
		Life: between(f.rng, config.OrbLifeMin, config.OrbLifeMax),
		Hue:  between(f.rng, config.OrbHueMin, config.OrbHueMax),
	}
}

// Step advances the tick counter and moves every particle and orb once.
func (f *Field) Step(ctx *Context) {
	ctx.Tick++
	t := float64(ctx.Tick)

	dx := (ctx.Pointer.X - ctx.Center.X) * config.PointerBias
	dy := (ctx.Pointer.Y - ctx.Center.Y) * config.PointerBias

	for i := range f.Particles {
		p := &f.Particles[i]
		wobble := math.Sin(p.Phase+t*config.WobbleRate*p.Twinkle) * config.WobbleAmplitude
		p.Angle += p.Speed + wobble + dx + dy
		p.Phase += config.PhaseStep
	}

	for i := range f.Orbs {
		o := &f.Orbs[i]
		idx := float64(i)
		o.X += o.VX + math.Sin(t*config.OrbDriftRateX+idx)*config.OrbDrift
		o.Y += o.VY + math.Cos(t*config.OrbDriftRateY+idx)*config.OrbDrift
		wrap(o, ctx.Width, ctx.Height)

		o.Life--
		if f.opts.RespawnOrbs && o.Life <= 0 {
			*o = f.newOrb(ctx.Width, ctx.Height)
		}
	}
}

func wrap(o *Orb, w, h float64) {
	m := config.WrapMargin
	if o.X < -m {
		o.X = w + m
	}
	if o.X > w+m {
		o.X = -m
	}
	if o.Y < -m {
		o.Y = h + m
	}
	if o.Y > h+m {
		o.Y = -m
	}
}

// OrbitRadius is the base radius plus a slow 2% breathing.
func (p *Particle) OrbitRadius(tick int) float64 {
	t := float64(tick)
	return p.Radius + math.Sin(t*config.RadiusWaveRate+p.Phase)*(p.Radius*config.RadiusWave)
}

// Position is the particle's screen position around center.
func (p *Particle) Position(center Vec, tick int) Vec {
	r := p.OrbitRadius(tick)
	return Vec{
		X: center.X + math.Cos(p.Angle)*r,
		Y: center.Y + math.Sin(p.Angle)*r,
	}
}

// Pulse is the drawn size of the particle core for the given tick.
func (p *Particle) Pulse(tick int) float64 {
	t := float64(tick)
	return p.Size * (1 + math.Abs(math.Sin(t*config.PulseRate+p.Phase))*config.PulseGain)
}

// DriftCenter moves the orbit origin around the viewport middle.
func DriftCenter(ctx *Context) {
	t := float64(ctx.Tick)
	ctx.Center.X = ctx.Width*0.5 + math.Sin(t*config.DriftRateX)*config.DriftAmpX
	ctx.Center.Y = ctx.Height*0.5 + math.Cos(t*config.DriftRateY)*config.DriftAmpY
}
