package state

import (
	"testing"
	"time"
)

// clockAt builds a clock over a scripted sequence of seconds-within-window.
func clockAt(seconds []int64) (*Clock, func()) {
	idx := 0
	c := &Clock{Now: func() time.Time {
		s := seconds[idx]
		return time.Unix(s, 0)
	}}
	c.progress = c.Sample()
	advance := func() {
		if idx < len(seconds)-1 {
			idx++
		}
	}
	return c, advance
}

func TestClockWrapsExactlyOnce(t *testing.T) {
	// Window positions climb, then fall past the rotation boundary. Only the
	// falling edge may trigger a rebuild.
	seconds := []int64{12, 21, 29, 3} // 40%, 70%, 96%, 10%
	c, advance := clockAt(seconds)

	wraps := 0
	for range seconds[1:] {
		advance()
		if c.Tick(false) {
			wraps++
		}
	}
	if wraps != 1 {
		t.Fatalf("expected exactly one wrap across the boundary, got %d", wraps)
	}
	if c.Progress() != 10 {
		t.Fatalf("expected final progress 10, got %d", c.Progress())
	}
}

func TestClockNoWrapWhileClimbing(t *testing.T) {
	seconds := []int64{3, 9, 15, 27}
	c, advance := clockAt(seconds)
	for range seconds[1:] {
		advance()
		if c.Tick(false) {
			t.Fatalf("expected no wrap while progress climbs")
		}
	}
}

func TestClockForcedTick(t *testing.T) {
	c, _ := clockAt([]int64{12})
	if !c.Tick(true) {
		t.Fatalf("expected forced tick to request a rebuild")
	}
	if c.Tick(false) {
		t.Fatalf("expected no wrap on an unchanged sample")
	}
}

func TestClockSampleRange(t *testing.T) {
	for s := int64(0); s < 60; s++ {
		c := &Clock{Now: func() time.Time { return time.Unix(s, 0) }}
		got := c.Sample()
		if got < 0 || got >= 100 {
			t.Fatalf("sample out of range for second %d: %d", s, got)
		}
	}
}
