package harness

import (
	"fmt"
	"strings"
)

// AssertionError describes a failed expectation.
type AssertionError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// EvaluateExpectations checks a result against an expect clause and returns
// one message per failure.
func EvaluateExpectations(result *Result, expect ExpectClause) []string {
	var failures []string
	for _, check := range []func(*Result, ExpectClause) error{
		assertOutput,
		assertError,
		assertRoundTrip,
	} {
		if err := check(result, expect); err != nil {
			failures = append(failures, err.Error())
		}
	}
	return failures
}

// assertOutput requires the exact output lines, in order.
func assertOutput(result *Result, expect ExpectClause) error {
	actual := result.Output()
	if len(actual) == len(expect.Output) {
		match := true
		for i := range actual {
			if actual[i] != expect.Output[i] {
				match = false
				break
			}
		}
		if match {
			return nil
		}
	}
	return &AssertionError{
		Field:    "output",
		Expected: formatLines(expect.Output),
		Actual:   formatLines(actual),
	}
}

func assertError(result *Result, expect ExpectClause) error {
	if result.Error == expect.Error {
		return nil
	}
	return &AssertionError{
		Field:    "error",
		Expected: formatKind(expect.Error),
		Actual:   formatKind(result.Error),
	}
}

// assertRoundTrip requires Q*P == N for every pair.
func assertRoundTrip(result *Result, _ ExpectClause) error {
	for i, p := range result.Pairs {
		if !p.Valid() {
			return &AssertionError{
				Field:    fmt.Sprintf("pairs[%d]", i),
				Expected: fmt.Sprintf("Q*P == %d", p.N),
				Actual:   p.String(),
			}
		}
	}
	return nil
}

func formatLines(lines []string) string {
	return "[" + strings.Join(lines, ", ") + "]"
}

func formatKind(kind string) string {
	if kind == ErrorNone {
		return "no error"
	}
	return kind
}
