package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/rhofactor/internal/ir"
)

// Exit codes for the CLI. Every failure shares ExitFailure: a missing input,
// an invalid number, a usage error and an exceeded deadline are not
// distinguished by status.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (always ExitFailure today)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Silent means the error has already been reported, or must not be.
	// The entry point prints nothing for silent errors.
	Silent bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsSilent reports whether err is an ExitError that must not be printed.
func IsSilent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Silent
}

// OutputFormatter handles JSON vs text output.
//
// Result lines go to Writer. Errors in text format go to ErrWriter so that
// stdout carries nothing but results.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Destination for text errors (defaults to Writer)
	RunID     string    // Ledger run ID, echoed on JSON lines when set
}

// CLIResponse is the JSON envelope for every output line.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
	RunID  string      `json:"run_id,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // "E001", "E005", etc.
	Message string `json:"message"` // human-readable message
}

// Pair writes one factor pair: "N=Q*P" in text, one JSON object per line in json.
func (f *OutputFormatter) Pair(pair ir.FactorPair) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   pair,
			RunID:  f.RunID,
		})
	}

	_, err := fmt.Fprintln(f.Writer, pair.String())
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
			},
			RunID: f.RunID,
		})
	}

	_, err := fmt.Fprintf(f.GetErrWriter(), "Error [%s]: %s\n", code, message)
	return err
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
