package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/aura/internal/audio"
	"github.com/iburimskiy/aura/internal/config"
	"github.com/iburimskiy/aura/internal/game"
	"github.com/iburimskiy/aura/internal/page"
	"github.com/iburimskiy/aura/internal/scene"
	"github.com/iburimskiy/aura/internal/sim"
)

const aboutText = "aura: a field of particles orbiting a drifting center.\n\nEsc or Q quits, Space mutes the hum, F3 toggles the debug overlay."

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	seed := flag.Uint64("seed", 0, "particle layout seed (0 picks one from the clock)")
	withAudio := flag.Bool("audio", false, "play the ambient hum")
	flag.Parse()

	if err := run(*configPath, *seed, *withAudio); err != nil && !errors.Is(err, ebiten.Termination) {
		showError(err)
		log.Fatal(err)
	}
}

func run(configPath string, seed uint64, withAudio bool) error {
	settings := config.Default()
	if configPath != "" {
		s, err := config.Load(configPath)
		if err != nil {
			return err
		}
		settings = s
	}
	if seed != 0 {
		settings.Seed = seed
	}
	if withAudio {
		settings.Audio.Enabled = true
	}
	if settings.Seed == 0 {
		settings.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[aura] seed %d", settings.Seed)

	doc := newDocument(settings.Page)
	doc.OnNavigate(func(hash string) {
		if hash == "#about" {
			go showAbout(aboutText)
		}
	})

	w, h := float64(settings.Window.Width), float64(settings.Window.Height)
	sc := scene.New(scene.Options{
		Width:    w,
		Height:   h,
		Ratio:    settings.DevicePixelRatio,
		Rand:     rand.New(rand.NewPCG(settings.Seed, settings.Seed>>1|1)),
		Field:    sim.Options{RespawnOrbs: settings.Orbs.Respawn},
		Document: doc,
	})

	var hum *audio.Player
	if settings.Audio.Enabled {
		p, err := audio.Start(settings.Audio)
		if err != nil {
			// the visuals work without sound
			log.Printf("[aura] audio disabled: %v", err)
		} else {
			hum = p
		}
	}

	g, err := game.New(sc, settings, hum)
	if err != nil {
		return errors.Wrap(err, "failed to create game")
	}
	defer g.Close()

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if settings.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(settings.TPS)

	return ebiten.RunGame(g)
}

// newDocument builds the page elements the settings ask for.
func newDocument(s config.PageSettings) *page.Document {
	doc := page.Standard(page.DefaultLocation(), s.Title)
	if !s.Sigil {
		doc.Sigil = nil
	}
	if !s.Heading {
		doc.Title = nil
	}
	if !s.Buttons {
		doc.Buttons = nil
	}
	return doc
}
