package core

import "time"

// FrameClock turns monotonically increasing timestamps into frame deltas.
// The first timestamp only primes the clock since there is no previous frame.
type FrameClock struct {
	prev    time.Time
	started bool
}

// Advance records now and returns the seconds elapsed since the previous call.
// The boolean is false on the priming call.
func (c *FrameClock) Advance(now time.Time) (float64, bool) {
	if !c.started {
		c.prev = now
		c.started = true
		return 0, false
	}
	dt := now.Sub(c.prev).Seconds()
	c.prev = now
	return dt, true
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
	c.prev = time.Time{}
}
