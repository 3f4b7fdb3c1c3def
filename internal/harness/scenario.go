package harness

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Error kinds a scenario can expect.
const (
	ErrorNone             = ""
	ErrorDeadlineExceeded = "deadline_exceeded"
	ErrorInvalidNumber    = "invalid_number"
)

// Scenario defines one batch run and its expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario. Also the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Input holds the raw input lines, before filtering.
	Input []string `yaml:"input"`

	// Budget is the batch budget. Zero means engine.DefaultBudget.
	Budget time.Duration `yaml:"budget,omitempty"`

	// Tick is how far the fake clock moves on every read. Zero freezes it,
	// so the deadline never fires.
	Tick time.Duration `yaml:"tick,omitempty"`

	// Expect is the expected outcome.
	Expect ExpectClause `yaml:"expect"`
}

// ExpectClause specifies expected batch behavior.
type ExpectClause struct {
	// Output lists the expected N=Q*P lines, in order.
	Output []string `yaml:"output"`

	// Error is the expected terminal error kind, ErrorNone for success.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Budget < 0 {
		return fmt.Errorf("budget must be non-negative")
	}

	if s.Tick < 0 {
		return fmt.Errorf("tick must be non-negative")
	}

	switch s.Expect.Error {
	case ErrorNone, ErrorDeadlineExceeded, ErrorInvalidNumber:
	default:
		return fmt.Errorf("expect.error: unknown error kind %q", s.Expect.Error)
	}

	return nil
}
