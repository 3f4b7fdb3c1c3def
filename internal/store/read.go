package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/roach88/rhofactor/internal/ir"
)

// ErrRunNotFound is returned when a run ID is not in the ledger.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns the run with the given ID.
func (s *Store) ReadRun(ctx context.Context, runID string) (ir.Run, error) {
	var (
		run        ir.Run
		startedAt  string
		finishedAt sql.NullString
		status     string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, started_at, finished_at, status, pair_count, engine_version
		FROM runs
		WHERE id = ?
	`, runID).Scan(&run.ID, &run.Source, &startedAt, &finishedAt, &status, &run.Count, &run.EngineVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Run{}, fmt.Errorf("read run %s: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return ir.Run{}, fmt.Errorf("read run: %w", err)
	}

	run.Status = ir.RunStatus(status)
	if run.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
		return ir.Run{}, fmt.Errorf("read run: parse started_at: %w", err)
	}
	if finishedAt.Valid {
		if run.FinishedAt, err = time.Parse(timeLayout, finishedAt.String); err != nil {
			return ir.Run{}, fmt.Errorf("read run: parse finished_at: %w", err)
		}
	}

	return run, nil
}

// ReadPairs returns the pairs a run emitted, ordered by seq.
//
// Returns an empty slice (not nil) if the run emitted nothing.
func (s *Store) ReadPairs(ctx context.Context, runID string) ([]ir.FactorPair, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT n, q, p
		FROM pairs
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query pairs: %w", err)
	}
	defer rows.Close()

	pairs := []ir.FactorPair{}
	for rows.Next() {
		var n, q, p string
		if err := rows.Scan(&n, &q, &p); err != nil {
			return nil, fmt.Errorf("scan pair: %w", err)
		}
		pair, err := parsePair(n, q, p)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pairs: %w", err)
	}

	return pairs, nil
}

func parsePair(n, q, p string) (ir.FactorPair, error) {
	var pair ir.FactorPair
	var err error
	if pair.N, err = strconv.ParseUint(n, 10, 64); err != nil {
		return pair, fmt.Errorf("parse pair n: %w", err)
	}
	if pair.Q, err = strconv.ParseUint(q, 10, 64); err != nil {
		return pair, fmt.Errorf("parse pair q: %w", err)
	}
	if pair.P, err = strconv.ParseUint(p, 10, 64); err != nil {
		return pair, fmt.Errorf("parse pair p: %w", err)
	}
	return pair, nil
}
