package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last samples into a ring buffer
// so the renderer can follow the loudness of what is playing.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    bool
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
				t.filled = true
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Level is the RMS of the recorded samples, mixed down to mono.
func (t *Tap) Level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.nextIndex
	if t.filled {
		n = len(t.buffer)
	}
	if n == 0 {
		return 0
	}
	var sum float64
	for _, s := range t.buffer[:n] {
		mono := (s[0] + s[1]) * 0.5
		sum += mono * mono
	}
	return math.Sqrt(sum / float64(n))
}
