package testutil

import (
	"sync"
	"time"
)

// Epoch is the default start time for test clocks.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// StepClock is a fake wall clock that advances by a fixed tick on every read.
//
// The first call to Now() returns the start time, the k-th call returns
// start + (k-1)*tick. Because engine.Deadline reads the clock once at creation
// and once per iteration, a StepClock turns the wall-clock budget into an
// exact iteration budget: with tick T and budget B the batch gets
// floor(B/T) deadline checks before it aborts.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu    sync.Mutex
	now   time.Time
	tick  time.Duration
	reads int
}

// NewStepClock creates a step clock starting at start.
func NewStepClock(start time.Time, tick time.Duration) *StepClock {
	return &StepClock{now: start, tick: tick}
}

// Now returns the current time and advances the clock by one tick.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.tick)
	c.reads++
	return t
}

// Advance moves the clock forward without counting a read.
func (c *StepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Reads returns how many times Now() has been called.
func (c *StepClock) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}
