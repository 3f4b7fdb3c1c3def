package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rhofactor/internal/engine"
)

// Usage is printed when the command is not given exactly one input file.
const Usage = "usage: rhofactor <input-file>"

// RootOptions holds the flags of the rhofactor command.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Record  string // SQLite ledger path; empty disables recording

	// EngineOptions are applied after the defaults (for testing, e.g. a fake
	// clock or a shorter budget). Never exposed as flags.
	EngineOptions []engine.EngineOption

	// RunIDs overrides the ledger run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs engine.RunIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the rhofactor command.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the rhofactor command around opts.
// Flags parsed by cobra are written into opts.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rhofactor <input-file>",
		Short: "Split integers into two factors with Pollard's rho",
		Long: `Split each integer in an input file into two factors using Pollard's rho
with Floyd cycle detection.

The input file holds one number per line. Lines that are not plain decimal
integers greater than 1 are skipped. Each number is printed as N=Q*P, where P
is the factor found and Q = N/P.

The whole batch must finish within 5 seconds; otherwise the command stops
and exits with status 1. Prime inputs are not detected and may print N=1*N
or run into the deadline.

Example:
  rhofactor numbers.txt
  rhofactor --format json --record runs.db numbers.txt`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return NewExitError(ExitFailure, Usage)
			}
			return nil
		},
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // The entry point prints errors
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitFailure,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactor(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.Flags().StringVar(&opts.Record, "record", "", "record the run in a SQLite ledger at this path")

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
