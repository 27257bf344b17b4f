package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/aura/internal/paint"
	"github.com/iburimskiy/aura/internal/sim"
	"github.com/iburimskiy/aura/internal/surface"
)

const (
	// blob gradient radius is 6x the pulse, filled out to 3.6x
	particleFill  = 3.6
	particleReach = 3.6 / 6
	// orb gradient radius is 12r, filled out to 6r
	orbFill  = 6.0
	orbReach = 6.0 / 12

	streakBack  = 6.0
	streakFront = 8.0
)

// Field paints particles and orbs with additive blending.
type Field struct {
	particles *spriteCache
	orbs      *spriteCache

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewField() *Field {
	return &Field{
		particles: newSpriteCache(particleStops, particleReach),
		orbs:      newSpriteCache(orbStops, orbReach),
	}
}

// DrawParticles paints each particle as a glowing blob with a short streak
// along its direction of travel.
func (f *Field) DrawParticles(screen *ebiten.Image, s *surface.Surface, field *sim.Field, ctx *sim.Context) {
	k := s.Scale()
	f.vertices = f.vertices[:0]
	f.indices = f.indices[:0]

	for i := range field.Particles {
		p := &field.Particles[i]
		pos := p.Position(ctx.Center, ctx.Tick)
		rad := p.Pulse(ctx.Tick)
		drawSprite(screen, f.particles.get(p.Hue), pos.X, pos.Y, rad*particleFill, p.Alpha, k, ebiten.BlendLighter)

		cos, sin := math.Cos(p.Angle), math.Sin(p.Angle)
		var path vector.Path
		path.MoveTo(float32((pos.X-cos*streakBack)*k), float32((pos.Y-sin*streakBack)*k))
		path.LineTo(float32((pos.X+cos*streakFront)*k), float32((pos.Y+sin*streakFront)*k))
		f.appendStroke(&path, math.Max(0.2, p.Size*0.6)*k, paint.HSLA(p.Hue, 80, 60, p.Alpha*0.12))
	}

	if len(f.indices) == 0 {
		return
	}
	screen.DrawTriangles(f.vertices, f.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		Blend:          ebiten.BlendLighter,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func (f *Field) appendStroke(path *vector.Path, width float64, c paint.Color) {
	start := len(f.vertices)
	f.vertices, f.indices = path.AppendVerticesAndIndicesForStroke(f.vertices, f.indices, &vector.StrokeOptions{
		Width: float32(width),
	})
	r, g, b, a := premultiplied(c)
	for i := start; i < len(f.vertices); i++ {
		v := &f.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
}

// DrawOrbs paints the floating sparkles.
func (f *Field) DrawOrbs(screen *ebiten.Image, s *surface.Surface, field *sim.Field) {
	for i := range field.Orbs {
		o := &field.Orbs[i]
		drawSprite(screen, f.orbs.get(o.Hue), o.X, o.Y, o.R*orbFill, 1, s.Scale(), ebiten.BlendLighter)
	}
}
