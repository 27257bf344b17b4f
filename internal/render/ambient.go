package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/aura/internal/config"
	"github.com/iburimskiy/aura/internal/paint"
	"github.com/iburimskiy/aura/internal/sim"
	"github.com/iburimskiy/aura/internal/surface"
)

const (
	backdropDownscale = 4
	glowSize          = 256
)

var (
	backdropStops = paint.Stops{
		{Offset: 0, Color: paint.RGBA(2, 3, 5, 0.85)},
		{Offset: 0.5, Color: paint.RGBA(6, 8, 12, 0.72)},
		{Offset: 1, Color: paint.RGBA(2, 3, 6, 0.88)},
	}
	glowStops = paint.Stops{
		{Offset: 0, Color: paint.RGBA(92, 180, 255, 0.06)},
		{Offset: 0.25, Color: paint.RGBA(177, 125, 255, 0.03)},
		{Offset: 1, Color: paint.RGBA(10, 12, 16, 0)},
	}
	scanlineColor = paint.RGBA(120, 160, 255, 0.015)
)

// Ambient paints the layers under and over the particle field.
type Ambient struct {
	backdrop  *ebiten.Image
	backdropW int
	backdropH int
	glow      *ebiten.Image
	glowOuter float64
}

func NewAmbient() *Ambient {
	return &Ambient{}
}

// DrawBackground clears the screen and paints the diagonal backdrop and the
// glow around the drifting center. boost brightens the glow, 0 leaves it as is.
func (a *Ambient) DrawBackground(screen *ebiten.Image, s *surface.Surface, ctx *sim.Context, boost float64) {
	screen.Clear()
	a.drawBackdrop(screen, s)
	a.drawGlow(screen, s, ctx.Center, boost)
}

func (a *Ambient) drawBackdrop(screen *ebiten.Image, s *surface.Surface) {
	w := int(math.Ceil(s.Width / backdropDownscale))
	h := int(math.Ceil(s.Height / backdropDownscale))
	if w <= 0 || h <= 0 {
		return
	}
	if a.backdrop == nil || a.backdropW != w || a.backdropH != h {
		if a.backdrop != nil {
			a.backdrop.Deallocate()
		}
		g := paint.Linear{X1: float64(w), Y1: float64(h), Stops: backdropStops}
		a.backdrop = ebiten.NewImageFromImage(paint.Rasterize(g, w, h))
		a.backdropW, a.backdropH = w, h
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.Width/float64(w), s.Height/float64(h))
	op.GeoM.Scale(s.Scale(), s.Scale())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(a.backdrop, op)
}

func (a *Ambient) drawGlow(screen *ebiten.Image, s *surface.Surface, center sim.Vec, boost float64) {
	outer := math.Max(s.Width, s.Height) * config.GlowOuterScale
	if outer <= config.GlowInnerRadius {
		return
	}
	if a.glow == nil || a.glowOuter != outer {
		if a.glow != nil {
			a.glow.Deallocate()
		}
		half := float64(glowSize) / 2
		g := paint.Radial{
			X:     half,
			Y:     half,
			R0:    config.GlowInnerRadius / outer * half,
			R1:    half,
			Stops: glowStops,
		}
		a.glow = ebiten.NewImageFromImage(paint.Rasterize(g, glowSize, glowSize))
		a.glowOuter = outer
	}

	drawSprite(screen, a.glow, center.X, center.Y, outer, 1+boost, s.Scale(), ebiten.BlendSourceOver)
}

// DrawScanlines strokes the faint horizontal lines over everything else with
// normal blending.
func (a *Ambient) DrawScanlines(screen *ebiten.Image, s *surface.Surface, tick int) {
	t := float64(tick)
	k := float32(s.Scale())
	clr := scanlineColor.NRGBA()
	for y := 0.0; y < s.Height; y += config.ScanlineStep {
		offset := math.Sin(t*0.002+y*0.01) * config.ScanlineAmp
		tilt := math.Cos(t*0.001+y*0.005) * config.ScanlineTilt
		vector.StrokeLine(screen,
			0, float32(y+offset)*k,
			float32(s.Width)*k, float32(y+offset+tilt)*k,
			k, clr, true)
	}
}
