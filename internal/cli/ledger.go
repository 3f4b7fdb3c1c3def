package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/roach88/rhofactor/internal/engine"
	"github.com/roach88/rhofactor/internal/ir"
	"github.com/roach88/rhofactor/internal/store"
)

// runLedger records one batch run in the SQLite ledger behind --record.
type runLedger struct {
	store  *store.Store
	run    ir.Run
	count  int
	logger *slog.Logger
}

// openLedger opens the database and inserts a running row for this batch.
func openLedger(ctx context.Context, dbPath, source string, ids engine.RunIDGenerator, logger *slog.Logger) (*runLedger, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	run := ir.Run{
		ID:            ids.Generate(),
		Source:        source,
		StartedAt:     time.Now(),
		Status:        ir.RunRunning,
		EngineVersion: ir.EngineVersion,
	}
	if err := st.BeginRun(ctx, run); err != nil {
		st.Close()
		return nil, err
	}

	logger.Debug("ledger run started", "db", dbPath, "run_id", run.ID)
	return &runLedger{store: st, run: run, logger: logger}, nil
}

// record appends the next emitted pair.
func (l *runLedger) record(ctx context.Context, pair ir.FactorPair) error {
	if err := l.store.WritePair(ctx, l.run.ID, l.count, pair); err != nil {
		return err
	}
	l.count++
	return nil
}

// finish stores the final status derived from the batch error and closes
// the database.
func (l *runLedger) finish(ctx context.Context, runErr error) error {
	status := ir.RunCompleted
	switch {
	case engine.IsDeadlineExceeded(runErr):
		status = ir.RunDeadlineExceeded
	case runErr != nil:
		status = ir.RunFailed
	}

	err := l.store.FinishRun(ctx, l.run.ID, status, time.Now(), l.count)
	if closeErr := l.store.Close(); closeErr != nil {
		l.logger.Error("error closing ledger", "error", closeErr)
	}
	if err != nil {
		return fmt.Errorf("finish ledger run %s: %w", l.run.ID, err)
	}

	l.logger.Debug("ledger run finished", "run_id", l.run.ID, "status", status, "pairs", l.count)
	return nil
}
