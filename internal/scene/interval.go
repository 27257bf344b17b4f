package scene

import "time"

// Interval fires a callback every Period of accumulated host time, the way a
// browser setInterval interleaves with animation frames.
type Interval struct {
	Period time.Duration
	Fn     func()

	elapsed time.Duration
}

// Advance adds dt and runs Fn once per whole period covered. It returns the
// number of times Fn ran.
func (iv *Interval) Advance(dt time.Duration) int {
	if iv.Period <= 0 || dt <= 0 {
		return 0
	}
	iv.elapsed += dt
	n := 0
	for iv.elapsed >= iv.Period {
		iv.elapsed -= iv.Period
		if iv.Fn != nil {
			iv.Fn()
		}
		n++
	}
	return n
}
