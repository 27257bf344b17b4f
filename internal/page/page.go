// Package page holds the decorative elements layered over the particle
// field and the pointer parallax that drives them.
package page

import (
	"log"

	"github.com/iburimskiy/aura/internal/config"
	"github.com/iburimskiy/aura/internal/paint"
)

const (
	ExploreButton = "btnExplore"
	AboutButton   = "btnAbout"

	SmoothScroll = "smooth"
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Sigil is the rotating emblem. Left and Top are percentages of the viewport.
type Sigil struct {
	Rotation  float64
	Left, Top float64
}

type Shadow struct {
	OffsetX, OffsetY float64
	Blur             float64
	Color            paint.Color
}

type Title struct {
	Text    string
	Shadows []Shadow
}

type Button struct {
	ID       string
	Label    string
	Fragment string
	Bounds   Rect
}

// Document is the set of page elements. Sigil and Title are optional; a nil
// element is skipped by every handler.
type Document struct {
	Sigil    *Sigil
	Title    *Title
	Buttons  []*Button
	Location Location

	// ScrollBehavior switches to smooth on the first Tab press and stays.
	ScrollBehavior string
	// Focus is the index of the keyboard focused button, -1 for none.
	Focus int

	pressed   *Button
	listeners []func(hash string)
}

func NewDocument(loc Location) *Document {
	return &Document{Location: loc, Focus: -1}
}

// Standard builds the sigil, title and the explore/about buttons.
func Standard(loc Location, title string) *Document {
	d := NewDocument(loc)
	d.Sigil = &Sigil{Left: 50, Top: 50}
	d.Title = &Title{Text: title, Shadows: titleShadows(0, 0)}
	d.Buttons = []*Button{
		{ID: ExploreButton, Label: "Explore", Fragment: "explore"},
		{ID: AboutButton, Label: "About", Fragment: "about"},
	}
	return d
}

func (d *Document) Button(id string) *Button {
	for _, b := range d.Buttons {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Layout places the buttons side by side in the lower third of the viewport.
func (d *Document) Layout(w, h float64) {
	const bw, bh, gap = 140.0, 40.0, 24.0
	total := float64(len(d.Buttons))*bw + float64(len(d.Buttons)-1)*gap
	x := (w - total) / 2
	y := h*0.78 - bh/2
	for _, b := range d.Buttons {
		b.Bounds = Rect{X: x, Y: y, W: bw, H: bh}
		x += bw + gap
	}
}

// Parallax returns the pointer offset from the viewport center, normalized
// so the viewport edges map to ±1.
func Parallax(w, h, x, y float64) (float64, float64) {
	cx, cy := w/2, h/2
	if cx == 0 || cy == 0 {
		return 0, 0
	}
	return (x - cx) / cx, (y - cy) / cy
}

// PointerMove tilts the sigil and moves the title shadow against the pointer.
func (d *Document) PointerMove(w, h, x, y float64) {
	dx, dy := Parallax(w, h, x, y)
	if d.Sigil != nil {
		d.Sigil.Rotation = dx * config.SigilRotation
		d.Sigil.Left = 50 + dx*config.SigilShift
		d.Sigil.Top = 50 + dy*config.SigilShift
	}
	if d.Title != nil {
		d.Title.Shadows = titleShadows(dx, dy)
	}
}

func titleShadows(dx, dy float64) []Shadow {
	return []Shadow{
		{OffsetX: -dx * config.ShadowShift, OffsetY: dy * config.ShadowShift, Blur: config.ShadowBlur, Color: paint.RGBA(30, 40, 60, 0.6)},
		{OffsetX: 0, OffsetY: 8, Blur: 30, Color: paint.RGBA(0, 0, 0, 0.7)},
	}
}

// OnNavigate registers fn to run after every fragment change.
func (d *Document) OnNavigate(fn func(hash string)) {
	d.listeners = append(d.listeners, fn)
}

func (d *Document) Navigate(fragment string) {
	if d.Location == nil {
		return
	}
	d.Location.SetHash(fragment)
	hash := d.Location.Hash()
	log.Printf("[aura] navigate %s", hash)
	for _, fn := range d.listeners {
		fn(hash)
	}
}

func (d *Document) buttonAt(x, y float64) (int, *Button) {
	for i, b := range d.Buttons {
		if b.Bounds.Contains(x, y) {
			return i, b
		}
	}
	return -1, nil
}

// Press remembers the button under (x, y). A click needs the release to land
// on the same button.
func (d *Document) Press(x, y float64) {
	_, d.pressed = d.buttonAt(x, y)
}

// Release activates the pressed button if (x, y) is still over it.
func (d *Document) Release(x, y float64) bool {
	pressed := d.pressed
	d.pressed = nil
	i, b := d.buttonAt(x, y)
	if b == nil || b != pressed {
		return false
	}
	if d.FocusVisible() {
		d.Focus = i
	}
	d.Navigate(b.Fragment)
	return true
}

// Click is a press and release at the same point.
func (d *Document) Click(x, y float64) bool {
	d.Press(x, y)
	return d.Release(x, y)
}

// KeyTab turns on smooth scrolling the first time and moves keyboard focus
// to the next button.
func (d *Document) KeyTab() {
	if d.ScrollBehavior != SmoothScroll {
		d.ScrollBehavior = SmoothScroll
		applyScrollBehavior(SmoothScroll)
	}
	if len(d.Buttons) > 0 {
		d.Focus = (d.Focus + 1) % len(d.Buttons)
	}
}

// KeyEnter activates the focused button.
func (d *Document) KeyEnter() bool {
	if d.Focus < 0 || d.Focus >= len(d.Buttons) {
		return false
	}
	d.Navigate(d.Buttons[d.Focus].Fragment)
	return true
}

// FocusVisible reports whether keyboard navigation has been used.
func (d *Document) FocusVisible() bool {
	return d.ScrollBehavior == SmoothScroll
}
