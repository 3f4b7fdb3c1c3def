package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/rhofactor/internal/engine"
	"github.com/roach88/rhofactor/internal/ir"
)

func runFactor(opts *RootOptions, path string, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	numbers, err := LoadNumbers(path)
	if err != nil {
		return reportLoadError(formatter, err)
	}
	logger.Debug("input loaded", "path", path, "numbers", len(numbers))

	var ledger *runLedger
	if opts.Record != "" {
		ids := opts.RunIDs
		if ids == nil {
			ids = engine.UUIDv7Generator{}
		}
		ledger, err = openLedger(ctx, opts.Record, path, ids, logger)
		if err != nil {
			_ = formatter.Error(ErrCodeLedger, err.Error())
			return &ExitError{Code: ExitFailure, Message: "failed to open ledger", Err: err, Silent: true}
		}
		formatter.RunID = ledger.run.ID
	}

	engineOpts := append([]engine.EngineOption{engine.WithLogger(logger)}, opts.EngineOptions...)
	eng := engine.New(engineOpts...)

	runErr := eng.Run(ctx, numbers, func(pair ir.FactorPair) error {
		if err := formatter.Pair(pair); err != nil {
			return err
		}
		if ledger != nil {
			return ledger.record(ctx, pair)
		}
		return nil
	})

	if ledger != nil {
		if err := finishLedger(ctx, ledger, runErr, formatter, logger); err != nil {
			return err
		}
	}

	switch {
	case runErr == nil:
		return nil
	case engine.IsDeadlineExceeded(runErr):
		// No message: whatever was printed before the deadline stands as is.
		logger.Debug("deadline exceeded", "error", runErr)
		return &ExitError{Code: ExitFailure, Message: "deadline exceeded", Err: runErr, Silent: true}
	default:
		return WrapExitError(ExitFailure, "factorization failed", runErr)
	}
}

// finishLedger closes the ledger run. A ledger failure is reported only when
// the batch itself succeeded; otherwise the batch error decides the exit and
// the ledger failure is logged.
func finishLedger(ctx context.Context, ledger *runLedger, runErr error, formatter *OutputFormatter, logger *slog.Logger) error {
	err := ledger.finish(ctx, runErr)
	if err == nil {
		return nil
	}
	if runErr != nil {
		logger.Error("finish ledger run", "error", err)
		return nil
	}
	_ = formatter.Error(ErrCodeLedger, err.Error())
	return &ExitError{Code: ExitFailure, Message: "failed to finish ledger run", Err: err, Silent: true}
}

// reportLoadError prints a load failure and converts it to a silent exit error.
func reportLoadError(formatter *OutputFormatter, err error) error {
	code, message := ErrCodeGeneric, err.Error()
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		code, message = loadErr.Code, loadErr.Message
	}
	_ = formatter.Error(code, message)
	return &ExitError{Code: ExitFailure, Message: "failed to load input", Err: err, Silent: true}
}

// newLogger returns a text logger on w; debug records only when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
