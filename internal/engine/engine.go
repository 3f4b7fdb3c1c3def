package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/rhofactor/internal/ir"
)

// Engine is the batch runner. It factors numbers strictly in input order
// against one shared Deadline.
//
// THREAD-SAFETY:
//   - Run(): call from a single goroutine. Concurrent Run calls are safe only
//     when each builds its own Deadline (the default).
//
// INVARIANTS:
//   - One Deadline per Run, created before the first number (unless supplied
//     with WithDeadline). It is never reset between numbers.
//   - Every emitted pair satisfies Q*P == N.
//   - After a deadline error nothing more is emitted.
type Engine struct {
	budget   time.Duration
	now      func() time.Time
	deadline *Deadline
	logger   *slog.Logger
}

// EngineOption allows configuration of engine parameters.
type EngineOption func(*Engine)

// WithBudget sets the batch budget.
//
// Default: 5 seconds (DefaultBudget)
// Use a small budget with WithClock for testing deadline enforcement.
func WithBudget(budget time.Duration) EngineOption {
	return func(e *Engine) {
		e.budget = budget
	}
}

// WithClock sets the clock used to start each run's Deadline.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithDeadline makes every Run share d instead of starting a fresh one.
// WithBudget and WithClock are ignored when a deadline is supplied.
func WithDeadline(d *Deadline) EngineOption {
	return func(e *Engine) {
		e.deadline = d
	}
}

// WithLogger sets the logger for per-number diagnostics.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine. Logs are discarded unless WithLogger is given.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		budget: DefaultBudget,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Budget returns the budget new runs start with.
func (e *Engine) Budget() time.Duration {
	if e.deadline != nil {
		return e.deadline.Budget()
	}
	return e.budget
}

// Run factors each number in order and passes the pair to emit as soon as
// it is found.
//
// Returns a *DeadlineExceededError if the batch budget runs out, ctx.Err()
// if ctx is cancelled between numbers, or the first error returned by emit.
// Numbers after the failing one are never processed.
func (e *Engine) Run(ctx context.Context, numbers []uint64, emit func(ir.FactorPair) error) error {
	d := e.deadline
	if d == nil {
		d = NewDeadlineWithClock(e.budget, e.now)
	}

	e.logger.Debug("batch starting", "numbers", len(numbers), "budget", d.Budget())

	for i, n := range numbers {
		if err := ctx.Err(); err != nil {
			return err
		}

		p, steps, err := findFactor(n, d)
		if err != nil {
			e.logger.Debug("batch aborted", "index", i, "n", n, "steps", steps, "error", err)
			return err
		}

		pair := ir.FactorPair{N: n, Q: n / p, P: p}
		e.logger.Debug("factored", "index", i, "n", n, "factor", p, "cofactor", pair.Q, "steps", steps)

		if err := emit(pair); err != nil {
			return fmt.Errorf("emit %d: %w", n, err)
		}
	}

	e.logger.Debug("batch completed", "numbers", len(numbers))
	return nil
}
