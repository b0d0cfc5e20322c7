package sim

import "time"

// Timer is a repeating periodic gate: it accumulates elapsed time and fires
// once per interval. Fired reports true for the remainder of the frame in
// which the accumulator crossed the interval; the next Tick recomputes it, so
// any number of readers within one frame see the same answer and the gate
// cannot double-fire.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
	fired    bool
}

func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Timer{interval: interval}
}

// Tick advances the timer by dt and updates the fired flag for this frame.
// Overshoot past the interval carries into the next cycle, so cadence stays
// stable regardless of frame rate.
func (t *Timer) Tick(dt time.Duration) {
	t.elapsed += dt
	t.fired = t.elapsed >= t.interval
	if t.fired {
		t.elapsed -= t.interval
		// A frame longer than several intervals still fires once; drop the
		// backlog instead of bursting.
		if t.elapsed >= t.interval {
			t.elapsed = t.elapsed % t.interval
		}
	}
}

// Fired reports whether the gate fired during the current frame.
func (t *Timer) Fired() bool {
	return t.fired
}

// Interval returns the configured period.
func (t *Timer) Interval() time.Duration {
	return t.interval
}
