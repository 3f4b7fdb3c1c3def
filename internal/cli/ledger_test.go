package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rhofactor/internal/engine"
	"github.com/roach88/rhofactor/internal/ir"
	"github.com/roach88/rhofactor/internal/testutil"
)

// brokenLedger opens a ledger and closes its database so finish fails.
func brokenLedger(t *testing.T) *runLedger {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	ledger, err := openLedger(context.Background(), dbPath, "numbers.txt",
		testutil.NewFixedRunIDGenerator("run-broken"), logger)
	require.NoError(t, err)
	require.NoError(t, ledger.record(context.Background(), ir.FactorPair{N: 15, Q: 5, P: 3}))
	require.NoError(t, ledger.store.Close())
	return ledger
}

func TestFinishLedger_FailureAfterDeadlineIsLogged(t *testing.T) {
	ledger := brokenLedger(t)

	var logs, stdout, stderr bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	formatter := &OutputFormatter{Format: "text", Writer: &stdout, ErrWriter: &stderr}
	runErr := &engine.DeadlineExceededError{N: 8051, Elapsed: 6 * time.Second, Budget: 5 * time.Second}

	err := finishLedger(context.Background(), ledger, runErr, formatter, logger)
	require.NoError(t, err, "the batch error decides the exit")

	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), `msg="finish ledger run"`)
	assert.Contains(t, logs.String(), "run-broken")
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String(), "deadline exits print nothing")
}

func TestFinishLedger_FailureAfterSuccessIsReported(t *testing.T) {
	ledger := brokenLedger(t)

	var logs, stdout, stderr bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	formatter := &OutputFormatter{Format: "text", Writer: &stdout, ErrWriter: &stderr}

	err := finishLedger(context.Background(), ledger, nil, formatter, logger)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, IsSilent(err))
	assert.Contains(t, stderr.String(), "Error [E008]")
	assert.NotContains(t, logs.String(), "level=ERROR")
}

func TestFinishLedger_Success(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	ledger, err := openLedger(context.Background(), dbPath, "numbers.txt",
		testutil.NewFixedRunIDGenerator("run-ok"), logger)
	require.NoError(t, err)

	var stderr bytes.Buffer
	formatter := &OutputFormatter{Format: "text", Writer: io.Discard, ErrWriter: &stderr}

	require.NoError(t, finishLedger(context.Background(), ledger, nil, formatter, logger))
	assert.Empty(t, stderr.String())
}
