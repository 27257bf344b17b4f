// Package game runs the scene inside ebiten: input is translated into scene
// events, every update ticks the simulation and every draw paints the layers.
package game

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/aura/internal/audio"
	"github.com/iburimskiy/aura/internal/config"
	"github.com/iburimskiy/aura/internal/render"
	"github.com/iburimskiy/aura/internal/scene"
)

type Game struct {
	scene    *scene.Scene
	settings config.Settings
	hum      *audio.Player

	ambient *render.Ambient
	field   *render.Field
	overlay *render.Overlay

	started time.Time
	debug   bool
	paused  bool
}

// New wraps sc for ebiten. hum may be nil when audio is off.
func New(sc *scene.Scene, settings config.Settings, hum *audio.Player) (*Game, error) {
	overlay, err := render.NewOverlay()
	if err != nil {
		return nil, err
	}
	return &Game{
		scene:    sc,
		settings: settings,
		hum:      hum,
		ambient:  render.NewAmbient(),
		field:    render.NewField(),
		overlay:  overlay,
		started:  time.Now(),
		debug:    settings.Debug,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}

	mouseX, mouseY := ebiten.CursorPosition()
	x, y := g.scene.Surface.ToLogical(float64(mouseX), float64(mouseY))
	g.scene.Cursor(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.scene.Press(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.scene.Release(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.scene.KeyTab()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.scene.KeyEnter()
	}

	g.scene.Tick(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	sc := g.scene
	boost := math.Min(1, g.hum.Level()*4) * config.GlowBoost

	g.ambient.DrawBackground(screen, sc.Surface, sc.Ctx, boost)
	g.field.DrawParticles(screen, sc.Surface, sc.Field, sc.Ctx)
	g.field.DrawOrbs(screen, sc.Surface, sc.Field)
	g.ambient.DrawScanlines(screen, sc.Surface, sc.Ctx.Tick)
	g.overlay.Draw(screen, sc.Surface, sc.Document)

	if g.debug {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	sc := g.scene
	hash := sc.Document.Location.Hash()
	if hash == "" {
		hash = "-"
	}
	status := fmt.Sprintf("TPS %.0f  FPS %.0f  particles %d  orbs %d  tick %d  %s  %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		len(sc.Field.Particles), len(sc.Field.Orbs), sc.Ctx.Tick,
		hash, formatDuration(time.Since(g.started)))
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout keeps the backing image at logical size times the device scale so
// the effect stays crisp on high density displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight), g.ratio())
	return g.scene.Surface.BackingWidth(), g.scene.Surface.BackingHeight()
}

func (g *Game) ratio() float64 {
	if g.settings.DevicePixelRatio > 0 {
		return g.settings.DevicePixelRatio
	}
	return ebiten.Monitor().DeviceScaleFactor()
}

// togglePause mutes or resumes the hum; the visuals keep running.
func (g *Game) togglePause() {
	if g.hum == nil {
		return
	}
	g.paused = !g.paused
	g.hum.SetPaused(g.paused)
}

func (g *Game) Close() {
	g.hum.Close()
}
