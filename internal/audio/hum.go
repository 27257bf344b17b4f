// Package audio plays an optional low drone under the visuals and reports its
// loudness back to the renderer.
package audio

import (
	"math"

	"github.com/faiface/beep"
)

// Hum is a pair of slightly detuned sines under a slow tremolo. It never ends.
type Hum struct {
	Rate beep.SampleRate
	Freq float64

	pos int
}

func (h *Hum) Stream(samples [][2]float64) (int, bool) {
	rate := float64(h.Rate)
	for i := range samples {
		t := float64(h.pos) / rate
		tremolo := 0.6 + 0.4*math.Sin(2*math.Pi*0.07*t)
		left := math.Sin(2*math.Pi*h.Freq*t) + 0.5*math.Sin(2*math.Pi*h.Freq*1.5*t)
		right := math.Sin(2*math.Pi*h.Freq*1.003*t) + 0.5*math.Sin(2*math.Pi*h.Freq*1.5*1.003*t)
		samples[i][0] = left / 1.5 * tremolo
		samples[i][1] = right / 1.5 * tremolo
		h.pos++
	}
	return len(samples), true
}

func (h *Hum) Err() error { return nil }
