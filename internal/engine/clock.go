package engine

import "time"

// DefaultBudget is the wall-clock budget for an entire batch.
const DefaultBudget = 5 * time.Second

// Deadline is the batch-wide clock every FindFactor call checks against.
//
// The start timestamp is taken once, when the Deadline is created. Elapsed
// time is always measured from that point; there is no Reset.
//
// Thread-safety: Deadline is immutable after construction. It is safe for
// concurrent reads as long as the now function is.
type Deadline struct {
	start  time.Time
	budget time.Duration
	now    func() time.Time
}

// NewDeadline starts a deadline on the wall clock.
func NewDeadline(budget time.Duration) *Deadline {
	return NewDeadlineWithClock(budget, time.Now)
}

// NewDeadlineWithClock starts a deadline on the given clock.
// Tests pass a fake clock here so that the budget can be exhausted without
// sleeping.
func NewDeadlineWithClock(budget time.Duration, now func() time.Time) *Deadline {
	if now == nil {
		now = time.Now
	}
	return &Deadline{start: now(), budget: budget, now: now}
}

// Start returns the timestamp the deadline was created at.
func (d *Deadline) Start() time.Time {
	return d.start
}

// Budget returns the total time allowed for the batch.
func (d *Deadline) Budget() time.Duration {
	return d.budget
}

// Elapsed returns the time since Start.
func (d *Deadline) Elapsed() time.Duration {
	return d.now().Sub(d.start)
}

// Check returns a *DeadlineExceededError once elapsed time exceeds the budget.
// n is the number being factored when the check ran, for diagnostics.
func (d *Deadline) Check(n uint64) error {
	elapsed := d.Elapsed()
	if elapsed > d.budget {
		return &DeadlineExceededError{N: n, Elapsed: elapsed, Budget: d.budget}
	}
	return nil
}
