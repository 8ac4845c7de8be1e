// Package clock supplies the animation timestamp passed to layers.
//
// Layers take an integer timestamp measured in frames. The engine reads wall
// time through the Clock interface and converts it with Frames, so tests can
// pin the timestamp with a FakeClock.
package clock

import "time"

// Clock provides an abstraction for time operations to enable deterministic testing.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock implements Clock with a fixed time for testing.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a new FakeClock with the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the fixed time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// Set updates the fixed time.
func (c *FakeClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the fixed time forward by the given duration.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Frames returns the number of whole frames at fps between start and now.
// Times before start count as frame 0.
func Frames(start, now time.Time, fps int) int {
	if fps <= 0 || !now.After(start) {
		return 0
	}
	return int(now.Sub(start) * time.Duration(fps) / time.Second)
}
