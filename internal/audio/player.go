package audio

import (
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/iburimskiy/aura/internal/config"
)

// Player owns the speaker while the hum plays.
type Player struct {
	tap  *Tap
	ctrl *beep.Ctrl
}

// Chain builds hum -> volume -> tap without touching the speaker.
func Chain(s config.AudioSettings, rate beep.SampleRate) *Tap {
	hum := &Hum{Rate: rate, Freq: s.BaseFrequency}
	vol := &effects.Volume{Streamer: hum, Base: 2, Volume: s.Volume}
	return NewTap(vol, config.TapRingSize)
}

// Start opens the speaker and begins playing.
func Start(s config.AudioSettings) (*Player, error) {
	rate := beep.SampleRate(config.HumSampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, errors.Wrap(err, "failed to init speaker")
	}

	tap := Chain(s, rate)
	ctrl := &beep.Ctrl{Streamer: tap}
	speaker.Play(ctrl)
	log.Printf("[aura] hum at %.1fHz, volume %.2f", s.BaseFrequency, s.Volume)
	return &Player{tap: tap, ctrl: ctrl}, nil
}

// Level is the current loudness in [0, 1].
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	return p.tap.Level()
}

func (p *Player) SetPaused(paused bool) {
	if p == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Clear()
}
