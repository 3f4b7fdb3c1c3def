package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/roach88/rhofactor/internal/input"
)

// Error code constants - unified across the CLI.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeNotFound      = "E005" // Input file not found
	ErrCodeInvalidNumber = "E007" // Digit-only line that is not a uint64
	ErrCodeLedger        = "E008" // Ledger could not be opened or written
)

// LoadError represents an error that occurred while loading the input file.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadNumbers opens the input file and returns its accepted numbers in order.
// See package input for the acceptance rule.
func LoadNumbers(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("input file not found: %s", path), Err: err}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("cannot open input file: %v", err), Err: err}
	}
	defer f.Close()

	numbers, err := input.ReadNumbers(f)
	if input.IsFormatError(err) {
		return nil, &LoadError{Code: ErrCodeInvalidNumber, Message: err.Error(), Err: err}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: err.Error(), Err: err}
	}

	return numbers, nil
}
