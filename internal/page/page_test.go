package page

import (
	"math"
	"testing"
)

func newTestDocument() *Document {
	d := Standard(&MemoryLocation{}, "AURA")
	d.Layout(800, 600)
	return d
}

func center(r Rect) (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func TestClickButtonsSetFragment(t *testing.T) {
	tests := []struct {
		button string
		want   string
	}{
		{ExploreButton, "#explore"},
		{AboutButton, "#about"},
	}
	for _, tt := range tests {
		t.Run(tt.button, func(t *testing.T) {
			d := newTestDocument()
			x, y := center(d.Button(tt.button).Bounds)
			if !d.Click(x, y) {
				t.Fatalf("Click on %s was not handled", tt.button)
			}
			if got := d.Location.Hash(); got != tt.want {
				t.Errorf("Hash() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClickOutsideButtons(t *testing.T) {
	d := newTestDocument()
	if d.Click(1, 1) {
		t.Error("Click in the corner should not hit a button")
	}
	if got := d.Location.Hash(); got != "" {
		t.Errorf("Hash() = %q, want empty", got)
	}
}

func TestReleaseNeedsMatchingPress(t *testing.T) {
	tests := []struct {
		name         string
		press        string // empty presses outside every button
		release      string
		wantHandled  bool
		wantFragment string
	}{
		{"same button", AboutButton, AboutButton, true, "#about"},
		{"dragged to other button", ExploreButton, AboutButton, false, ""},
		{"pressed outside", "", ExploreButton, false, ""},
		{"released outside", ExploreButton, "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDocument()
			at := func(id string) (float64, float64) {
				if id == "" {
					return 1, 1
				}
				return center(d.Button(id).Bounds)
			}

			d.Press(at(tt.press))
			if got := d.Release(at(tt.release)); got != tt.wantHandled {
				t.Errorf("Release() = %v, want %v", got, tt.wantHandled)
			}
			if got := d.Location.Hash(); got != tt.wantFragment {
				t.Errorf("Hash() = %q, want %q", got, tt.wantFragment)
			}
		})
	}
}

func TestReleaseWithoutPress(t *testing.T) {
	d := newTestDocument()
	if d.Release(center(d.Button(ExploreButton).Bounds)) {
		t.Error("Release without a Press should not navigate")
	}

	// a consumed press does not carry over to the next release
	x, y := center(d.Button(AboutButton).Bounds)
	d.Press(x, y)
	d.Release(x, y)
	if d.Release(x, y) {
		t.Error("second Release after one Press should not navigate")
	}
}

func TestButtonsDoNotOverlap(t *testing.T) {
	d := newTestDocument()
	a, b := d.Button(ExploreButton).Bounds, d.Button(AboutButton).Bounds
	if a.X+a.W > b.X {
		t.Errorf("explore %+v overlaps about %+v", a, b)
	}
	if a.X < 0 || b.X+b.W > 800 {
		t.Errorf("buttons leave the viewport: %+v %+v", a, b)
	}
}

func TestNavigateListeners(t *testing.T) {
	d := newTestDocument()
	var got []string
	d.OnNavigate(func(hash string) { got = append(got, hash) })

	x, y := center(d.Button(AboutButton).Bounds)
	d.Click(x, y)
	x, y = center(d.Button(ExploreButton).Bounds)
	d.Click(x, y)

	if len(got) != 2 || got[0] != "#about" || got[1] != "#explore" {
		t.Errorf("listener saw %v, want [#about #explore]", got)
	}
}

func TestNavigateWithoutLocation(t *testing.T) {
	d := NewDocument(nil)
	d.Navigate("explore")
}

func TestMemoryLocation(t *testing.T) {
	var l MemoryLocation
	l.SetHash("#about")
	if l.Hash() != "#about" {
		t.Errorf("Hash() = %q, want #about", l.Hash())
	}
	l.SetHash("")
	if l.Hash() != "" {
		t.Errorf("Hash() = %q, want empty", l.Hash())
	}
}

func TestTabEnablesSmoothScrollOnce(t *testing.T) {
	d := newTestDocument()
	if d.FocusVisible() {
		t.Fatal("focus should not be visible before Tab")
	}

	d.KeyTab()
	if d.ScrollBehavior != SmoothScroll {
		t.Fatalf("ScrollBehavior = %q, want %q", d.ScrollBehavior, SmoothScroll)
	}
	if d.Focus != 0 {
		t.Errorf("Focus = %d after first Tab, want 0", d.Focus)
	}

	d.KeyTab()
	d.KeyTab()
	if d.ScrollBehavior != SmoothScroll {
		t.Errorf("ScrollBehavior changed to %q", d.ScrollBehavior)
	}
	if d.Focus != 0 {
		t.Errorf("Focus = %d after three Tabs, want to wrap to 0", d.Focus)
	}
}

func TestEnterActivatesFocusedButton(t *testing.T) {
	d := newTestDocument()
	if d.KeyEnter() {
		t.Fatal("Enter without focus should do nothing")
	}
	d.KeyTab()
	d.KeyTab()
	if !d.KeyEnter() {
		t.Fatal("Enter on a focused button was not handled")
	}
	if got := d.Location.Hash(); got != "#about" {
		t.Errorf("Hash() = %q, want #about", got)
	}
}

func TestParallax(t *testing.T) {
	tests := []struct {
		name           string
		x, y           float64
		wantDX, wantDY float64
	}{
		{"center", 400, 300, 0, 0},
		{"top left", 0, 0, -1, -1},
		{"bottom right", 800, 600, 1, 1},
		{"right middle", 600, 300, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := Parallax(800, 600, tt.x, tt.y)
			if dx != tt.wantDX || dy != tt.wantDY {
				t.Errorf("Parallax(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, dx, dy, tt.wantDX, tt.wantDY)
			}
		})
	}

	if dx, dy := Parallax(0, 0, 5, 5); dx != 0 || dy != 0 {
		t.Errorf("Parallax on an empty viewport = (%v, %v), want zero", dx, dy)
	}
}

func TestPointerMoveSigilAndTitle(t *testing.T) {
	d := newTestDocument()
	d.PointerMove(800, 600, 800, 150)

	if got := d.Sigil.Rotation; got != 6 {
		t.Errorf("Rotation = %v, want 6", got)
	}
	if d.Sigil.Left != 52 || d.Sigil.Top != 49 {
		t.Errorf("sigil at (%v%%, %v%%), want (52%%, 49%%)", d.Sigil.Left, d.Sigil.Top)
	}

	s := d.Title.Shadows
	if len(s) != 2 {
		t.Fatalf("len(Shadows) = %d, want 2", len(s))
	}
	if s[0].OffsetX != -6 || s[0].OffsetY != -3 || s[0].Blur != 12 {
		t.Errorf("pointer shadow = %+v, want offset (-6, -3) blur 12", s[0])
	}
	if math.Abs(s[0].Color.A-0.6) > 1e-9 {
		t.Errorf("pointer shadow alpha = %v, want 0.6", s[0].Color.A)
	}
	if s[1].OffsetX != 0 || s[1].OffsetY != 8 || s[1].Blur != 30 {
		t.Errorf("drop shadow = %+v, want offset (0, 8) blur 30", s[1])
	}
}

func TestPointerMoveToleratesMissingElements(t *testing.T) {
	d := NewDocument(&MemoryLocation{})
	d.PointerMove(800, 600, 10, 10)

	d.Sigil = &Sigil{}
	d.PointerMove(800, 600, 400, 300)
	if d.Sigil.Left != 50 || d.Sigil.Top != 50 || d.Sigil.Rotation != 0 {
		t.Errorf("centered pointer gave sigil %+v", *d.Sigil)
	}
}
