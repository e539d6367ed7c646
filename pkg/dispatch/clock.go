package dispatch

import "time"

// Clock abstracts time for the loop so tests can advance it manually.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// systemClock is the real wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// FakeClock provides controllable time for deterministic tests.
// Sleep advances the clock instead of blocking, so a WaitUntil pumping
// a fake-clock loop completes immediately once its timers are due.
type FakeClock struct {
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Sleep moves the clock forward by d.
func (c *FakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
