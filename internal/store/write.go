package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/roach88/rhofactor/internal/ir"
)

// timeLayout is how timestamps are stored. Always UTC.
const timeLayout = time.RFC3339Nano

// BeginRun inserts a run record with status running.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are silently ignored.
func (s *Store) BeginRun(ctx context.Context, run ir.Run) error {
	version := run.EngineVersion
	if version == "" {
		version = ir.EngineVersion
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, started_at, status, engine_version)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Source,
		run.StartedAt.UTC().Format(timeLayout),
		string(ir.RunRunning),
		version,
	)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	return nil
}

// WritePair records the seq-th pair emitted by a run (0-based).
// Writing the same (run, seq) twice is a no-op.
//
// Note: The run referenced by runID must exist (foreign key constraint).
func (s *Store) WritePair(ctx context.Context, runID string, seq int, pair ir.FactorPair) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pairs (run_id, seq, n, q, p)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		runID,
		seq,
		strconv.FormatUint(pair.N, 10),
		strconv.FormatUint(pair.Q, 10),
		strconv.FormatUint(pair.P, 10),
	)
	if err != nil {
		return fmt.Errorf("write pair: %w", err)
	}
	return nil
}

// FinishRun sets the final status, finish time and pair count of a run.
// Returns ErrRunNotFound if no such run exists.
func (s *Store) FinishRun(ctx context.Context, runID string, status ir.RunStatus, finishedAt time.Time, count int) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET status = ?, finished_at = ?, pair_count = ?
		WHERE id = ?
	`,
		string(status),
		finishedAt.UTC().Format(timeLayout),
		count,
		runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finish run %s: %w", runID, ErrRunNotFound)
	}
	return nil
}
