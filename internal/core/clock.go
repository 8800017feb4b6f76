package core

import "time"

// FrameClock turns wall-clock time between ticks into a normalized delta.
// A delta of 1.0 equals one reference interval, so motion tuned for the
// reference rate plays at the same speed at any driver tick rate.
type FrameClock struct {
	reference time.Duration
	maxDelta  float64
	last      time.Time
}

// NewFrameClock creates a clock normalized against referenceHz ticks per
// second. Deltas above maxDelta are clamped; maxDelta <= 0 disables clamping.
func NewFrameClock(referenceHz, maxDelta float64) *FrameClock {
	if referenceHz <= 0 {
		referenceHz = 30
	}
	return &FrameClock{
		reference: time.Duration(float64(time.Second) / referenceHz),
		maxDelta:  maxDelta,
	}
}

// Reference returns the interval that maps to a delta of 1.0.
func (c *FrameClock) Reference() time.Duration {
	return c.reference
}

// Reset makes now the start of the next measured interval.
// Used on start and when resuming from pause.
func (c *FrameClock) Reset(now time.Time) {
	c.last = now
}

// Delta returns the normalized time since the previous call and advances
// the clock. The first call after construction returns 0.
func (c *FrameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed <= 0 {
		return 0
	}

	dt := float64(elapsed) / float64(c.reference)
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt
}
