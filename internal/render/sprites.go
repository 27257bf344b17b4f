// Package render paints the ambient layers, the particle field and the page
// overlay onto an ebiten screen. Everything is laid out in logical pixels and
// scaled by the surface ratio at draw time.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/aura/internal/paint"
)

const spriteSize = 64

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// particleStops is the blob ramp at full alpha; the particle alpha is applied
// as a colour scale when drawing.
func particleStops(hue float64) paint.Stops {
	return paint.Stops{
		{Offset: 0, Color: paint.HSLA(hue, 95, 70, 1)},
		{Offset: 0.12, Color: paint.HSLA(hue, 85, 60, 0.45)},
		{Offset: 0.35, Color: paint.HSLA(hue+20, 75, 50, 0.08)},
		{Offset: 1, Color: paint.Transparent},
	}
}

func orbStops(hue float64) paint.Stops {
	return paint.Stops{
		{Offset: 0, Color: paint.HSLA(hue, 90, 70, 0.85)},
		{Offset: 0.25, Color: paint.HSLA(hue, 80, 60, 0.18)},
		{Offset: 1, Color: paint.Transparent},
	}
}

// spriteCache keeps one gradient disc per whole hue degree.
type spriteCache struct {
	stops  func(hue float64) paint.Stops
	reach  float64
	images map[int]*ebiten.Image
}

func newSpriteCache(stops func(float64) paint.Stops, reach float64) *spriteCache {
	return &spriteCache{stops: stops, reach: reach, images: map[int]*ebiten.Image{}}
}

func (c *spriteCache) get(hue float64) *ebiten.Image {
	key := int(math.Round(hue))
	img, ok := c.images[key]
	if !ok {
		img = ebiten.NewImageFromImage(paint.Disc(c.stops(float64(key)), spriteSize, c.reach))
		c.images[key] = img
	}
	return img
}

// drawSprite centers img on (x, y) with the given radius, all in logical
// pixels, and scales the result by ratio.
func drawSprite(dst, img *ebiten.Image, x, y, radius, alpha, ratio float64, blend ebiten.Blend) {
	size := float64(img.Bounds().Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Scale(radius*2/size, radius*2/size)
	op.GeoM.Translate(x, y)
	op.GeoM.Scale(ratio, ratio)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	op.Blend = blend
	dst.DrawImage(img, op)
}

// premultiplied returns the vertex colour for c.
func premultiplied(c paint.Color) (r, g, b, a float32) {
	return float32(c.R * c.A), float32(c.G * c.A), float32(c.B * c.A), float32(c.A)
}

// strokePath draws a single-colour outline of path, in backing pixels.
func strokePath(dst *ebiten.Image, path *vector.Path, width float64, c paint.Color) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	r, g, b, a := premultiplied(c)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}
