package core

import "time"

// TimeSource reports a monotonic timestamp in milliseconds, the same unit
// the browser hands to requestAnimationFrame callbacks.
type TimeSource interface {
	Now() float64
}

// Clock is a monotonic wall clock. Timestamps are milliseconds since Start.
type Clock struct {
	origin  time.Time
	started bool
	elapsed float64
}

func NewClock() *Clock {
	return &Clock{}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.started {
		c.elapsed = float64(time.Since(c.origin)) / float64(time.Millisecond)
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.origin = time.Now()
	c.started = true
	c.elapsed = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.started = false
}

// Elapsed returns the milliseconds recorded by the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Now updates the clock and returns the elapsed milliseconds. A clock that
// was never started is started on first use.
func (c *Clock) Now() float64 {
	if !c.started && c.origin.IsZero() {
		c.Start()
	}
	c.Update()
	return c.elapsed
}

// ManualClock only moves when told to. Used for deterministic replays and tests.
type ManualClock struct {
	now float64
}

func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() float64 {
	return c.now
}

func (c *ManualClock) Set(ms float64) {
	c.now = ms
}

func (c *ManualClock) Advance(ms float64) float64 {
	c.now += ms
	return c.now
}
