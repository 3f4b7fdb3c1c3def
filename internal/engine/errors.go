package engine

import (
	"errors"
	"fmt"
	"time"
)

// DeadlineExceededError is returned when the batch budget runs out while a
// number is being factored.
//
// It is terminal for the whole batch. Engine.Run never retries and never
// continues with the remaining numbers.
type DeadlineExceededError struct {
	N       uint64        // Number being factored when the deadline fired
	Elapsed time.Duration // Time since the batch started
	Budget  time.Duration // Budget that was exceeded
}

// Error implements the error interface.
func (e *DeadlineExceededError) Error() string {
	return fmt.Sprintf("deadline exceeded while factoring %d: %s elapsed > %s budget",
		e.N, e.Elapsed, e.Budget)
}

// IsDeadlineExceeded returns true if the error is a DeadlineExceededError.
// Uses errors.As to handle wrapped errors.
func IsDeadlineExceeded(err error) bool {
	var de *DeadlineExceededError
	return errors.As(err, &de)
}

// InvalidInputError is returned for numbers the cycle detector cannot work on.
// The input filter never lets these through; the check keeps FindFactor from
// looping forever when called directly.
type InvalidInputError struct {
	N uint64
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("cannot factor %d: n must be greater than 1", e.N)
}
