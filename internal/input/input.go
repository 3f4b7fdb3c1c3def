// Package input turns a line-oriented text source into factorization requests.
//
// A line is a request when, after trimming surrounding whitespace, it is
// non-empty, consists only of decimal digits, and its value is greater
// than 1. Every other line is dropped without error.
//
// Digits from any script count: "١٥" is 15. A digit-only line whose value
// does not fit in a uint64 is reported as a *FormatError.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// FormatError reports a digit-only line that is not a usable integer.
type FormatError struct {
	Line int    // 1-based line number
	Text string // trimmed line content
	Err  error  // underlying parse error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: invalid number %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the parse error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormatError returns true if the error is a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// ReadNumbers reads r to the end and returns the accepted numbers in their
// original order.
func ReadNumbers(r io.Reader) ([]uint64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var numbers []uint64
	line := 0
	for scanner.Scan() {
		line++
		n, ok, err := ParseLine(scanner.Text())
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Line = line
			}
			return nil, err
		}
		if ok {
			numbers = append(numbers, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return numbers, nil
}

// ParseLine applies the acceptance rule to a single line.
// ok is false for lines that are silently dropped.
func ParseLine(line string) (n uint64, ok bool, err error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return 0, false, nil
	}

	for _, r := range text {
		d, isDigit := digitValue(r)
		if !isDigit {
			return 0, false, nil
		}
		if err == nil {
			n, err = appendDigit(n, d)
		}
	}
	if err != nil {
		return 0, false, &FormatError{Text: text, Err: err}
	}
	if n <= 1 {
		return 0, false, nil
	}
	return n, true, nil
}

// appendDigit returns n*10 + d, or strconv.ErrRange if that overflows.
func appendDigit(n, d uint64) (uint64, error) {
	if n > (math.MaxUint64-d)/10 {
		return 0, strconv.ErrRange
	}
	return n*10 + d, nil
}

// digitValue returns the value of a Unicode decimal digit.
// Every script encodes its digits as a contiguous run from zero to nine, so
// the offset into a unicode.Nd range gives the value.
func digitValue(r rune) (uint64, bool) {
	if r >= '0' && r <= '9' {
		return uint64(r - '0'), true
	}
	if r < 0x80 {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return uint64(r-rune(rg.Lo)) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return uint64(r-rune(rg.Lo)) % 10, true
		}
	}
	return 0, false
}
