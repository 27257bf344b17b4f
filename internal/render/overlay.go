package render

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/aura/internal/page"
	"github.com/iburimskiy/aura/internal/paint"
	"github.com/iburimskiy/aura/internal/surface"
)

const (
	titleSize  = 64.0
	buttonSize = 18.0
	// shadow blur is approximated by this many offset copies
	blurTaps = 6
)

var (
	sigilColor  = paint.RGBA(170, 200, 255, 0.35)
	titleColor  = paint.RGBA(230, 236, 255, 0.92)
	buttonFill  = paint.RGBA(255, 255, 255, 0.05)
	buttonEdge  = paint.RGBA(140, 170, 255, 0.45)
	buttonLabel = paint.RGBA(220, 228, 255, 0.9)
	focusRing   = paint.RGBA(92, 180, 255, 0.9)
)

// Overlay paints the page elements above the background.
type Overlay struct {
	bold    *text.GoTextFaceSource
	regular *text.GoTextFaceSource
}

func NewOverlay() (*Overlay, error) {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load title font")
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load button font")
	}
	return &Overlay{bold: bold, regular: regular}, nil
}

func (o *Overlay) Draw(screen *ebiten.Image, s *surface.Surface, d *page.Document) {
	if d.Sigil != nil {
		drawSigil(screen, s, d.Sigil)
	}
	if d.Title != nil {
		o.drawTitle(screen, s, d.Title)
	}
	for i, b := range d.Buttons {
		o.drawButton(screen, s, b, d.FocusVisible() && d.Focus == i)
	}
}

func drawSigil(screen *ebiten.Image, s *surface.Surface, sg *page.Sigil) {
	k := s.Scale()
	cx := s.Width * sg.Left / 100 * k
	cy := s.Height * sg.Top / 100 * k
	r := math.Min(s.Width, s.Height) * 0.14 * k
	clr := sigilColor.NRGBA()
	w := float32(1.5 * k)

	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), w, clr, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r*0.72), w*0.7, clr, true)

	// a triangle and its inverse, rotated with the pointer
	rot := sg.Rotation * math.Pi / 180
	for _, base := range []float64{-math.Pi / 2, math.Pi / 2} {
		var path vector.Path
		for i := 0; i < 3; i++ {
			a := base + rot + float64(i)*2*math.Pi/3
			x, y := cx+math.Cos(a)*r*0.72, cy+math.Sin(a)*r*0.72
			if i == 0 {
				path.MoveTo(float32(x), float32(y))
			} else {
				path.LineTo(float32(x), float32(y))
			}
		}
		path.Close()
		strokePath(screen, &path, float64(w)*0.7, sigilColor)
	}
}

func (o *Overlay) drawTitle(screen *ebiten.Image, s *surface.Surface, t *page.Title) {
	k := s.Scale()
	face := &text.GoTextFace{Source: o.bold, Size: titleSize * k}
	x, y := s.Width/2*k, s.Height*0.64*k

	for _, sh := range t.Shadows {
		for i := 0; i < blurTaps; i++ {
			a := float64(i) * 2 * math.Pi / blurTaps
			spread := sh.Blur / 3
			dx := (sh.OffsetX + math.Cos(a)*spread) * k
			dy := (sh.OffsetY + math.Sin(a)*spread) * k
			drawText(screen, t.Text, face, x+dx, y+dy, sh.Color, 1.0/blurTaps)
		}
	}
	drawText(screen, t.Text, face, x, y, titleColor, 1)
}

func (o *Overlay) drawButton(screen *ebiten.Image, s *surface.Surface, b *page.Button, focused bool) {
	k := s.Scale()
	r := b.Bounds
	x, y, w, h := float32(r.X*k), float32(r.Y*k), float32(r.W*k), float32(r.H*k)

	vector.DrawFilledRect(screen, x, y, w, h, buttonFill.NRGBA(), true)
	vector.StrokeRect(screen, x, y, w, h, float32(k), buttonEdge.NRGBA(), true)
	if focused {
		pad := float32(3 * k)
		vector.StrokeRect(screen, x-pad, y-pad, w+2*pad, h+2*pad, float32(2*k), focusRing.NRGBA(), true)
	}

	face := &text.GoTextFace{Source: o.regular, Size: buttonSize * k}
	drawText(screen, b.Label, face, (r.X+r.W/2)*k, (r.Y+r.H/2)*k, buttonLabel, 1)
}

func drawText(screen *ebiten.Image, str string, face text.Face, x, y float64, c paint.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}
