package harness

import (
	"strings"

	"github.com/roach88/rhofactor/internal/ir"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every assertion held.
	Pass bool `json:"pass"`

	// Pairs are the emitted pairs as read back from the ledger.
	Pairs []ir.FactorPair `json:"pairs"`

	// Error is the terminal error kind, ErrorNone on success.
	Error string `json:"error,omitempty"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Pairs:  []ir.FactorPair{},
		Errors: []string{},
	}
}

// AddError adds an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Output renders the pairs as the CLI prints them.
func (r *Result) Output() []string {
	lines := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		lines[i] = p.String()
	}
	return lines
}

// Snapshot is the golden file content: output lines, then the error kind
// if the batch did not complete.
func (r *Result) Snapshot() []byte {
	var b strings.Builder
	for _, line := range r.Output() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if r.Error != ErrorNone {
		b.WriteString("-- error: ")
		b.WriteString(r.Error)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
