package state

import (
	"time"

	"github.com/atomicstack/totem/internal/logging/events"
)

// rotationWindow is the standard TOTP rotation interval.
const rotationWindow = 30

// Clock detects rotation-window boundaries. A rebuild fires exactly when a
// fresh sample lands below the previous one (the window wrapped) or when a
// caller forces it.
type Clock struct {
	Now      func() time.Time
	progress int
}

// NewClock builds a clock primed with the current window position.
func NewClock() *Clock {
	c := &Clock{Now: time.Now}
	c.progress = c.Sample()
	return c
}

// Sample returns the position within the current rotation window as a
// percentage in [0, 100).
func (c *Clock) Sample() int {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return int(now().Unix()%rotationWindow) * 100 / rotationWindow
}

// Progress returns the most recent sample.
func (c *Clock) Progress() int {
	return c.progress
}

// Tick takes a fresh sample and reports whether derived codes must be
// rebuilt. The sample always replaces the stored progress, so a wrap is
// detected at most once per window.
func (c *Clock) Tick(force bool) bool {
	sample := c.Sample()
	wrapped := sample < c.progress
	c.progress = sample
	if wrapped {
		events.Clock.Wrap(sample)
	}
	if force {
		events.Clock.Forced()
	}
	return wrapped || force
}
