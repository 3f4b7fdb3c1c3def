package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/rhofactor/internal/engine"
	"github.com/roach88/rhofactor/internal/input"
	"github.com/roach88/rhofactor/internal/ir"
	"github.com/roach88/rhofactor/internal/store"
	"github.com/roach88/rhofactor/internal/testutil"
)

// Harness is the scenario execution engine.
// It runs scenarios with a deterministic clock and run ID.
type Harness struct {
	store  *store.Store
	engine *engine.Engine
	clock  *testutil.StepClock
	runID  string
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
//
// Execution flow:
// 1. Create fresh in-memory database and a run row
// 2. Filter the input lines into numbers
// 3. Run the engine, writing each pair to the ledger
// 4. Read the pairs back and evaluate the expectations
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	budget := scenario.Budget
	if budget == 0 {
		budget = engine.DefaultBudget
	}
	clock := testutil.NewStepClock(testutil.Epoch, scenario.Tick)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs in tests

	h := &Harness{
		store: st,
		engine: engine.New(
			engine.WithBudget(budget),
			engine.WithClock(clock.Now),
			engine.WithLogger(logger),
		),
		clock:  clock,
		runID:  testutil.NewFixedRunIDGenerator("scenario-" + scenario.Name).Generate(),
		logger: logger,
	}

	ctx := context.Background()
	if err := st.BeginRun(ctx, ir.Run{ID: h.runID, Source: scenario.Name, StartedAt: testutil.Epoch}); err != nil {
		return nil, err
	}

	result := NewResult()
	runErr := h.execute(ctx, scenario.Input)
	switch {
	case runErr == nil:
	case engine.IsDeadlineExceeded(runErr):
		result.Error = ErrorDeadlineExceeded
	case input.IsFormatError(runErr):
		result.Error = ErrorInvalidNumber
	default:
		return nil, runErr
	}

	pairs, err := st.ReadPairs(ctx, h.runID)
	if err != nil {
		return nil, err
	}
	result.Pairs = pairs

	for _, msg := range EvaluateExpectations(result, scenario.Expect) {
		result.AddError(msg)
	}

	return result, nil
}

// execute filters the input and runs the batch into the ledger.
func (h *Harness) execute(ctx context.Context, lines []string) error {
	numbers, err := input.ReadNumbers(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		return err
	}

	seq := 0
	err = h.engine.Run(ctx, numbers, func(pair ir.FactorPair) error {
		if err := h.store.WritePair(ctx, h.runID, seq, pair); err != nil {
			return err
		}
		seq++
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		h.logger.Debug("scenario aborted", "error", err, "clock_reads", h.clock.Reads())
	}
	return err
}
