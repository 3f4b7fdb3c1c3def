package ir

import (
	"fmt"
	"time"
)

// FactorPair is one emitted result: N = Q * P.
//
// P is the factor found by the cycle detector and Q is the cofactor N / P.
// Output order is cofactor first, so 15 renders as "15=5*3".
// Neither factor is guaranteed to be prime.
type FactorPair struct {
	N uint64 `json:"n"`
	Q uint64 `json:"q"`
	P uint64 `json:"p"`
}

// String renders the pair in the N=Q*P text format.
func (p FactorPair) String() string {
	return fmt.Sprintf("%d=%d*%d", p.N, p.Q, p.P)
}

// Valid reports whether Q*P == N without overflow.
func (p FactorPair) Valid() bool {
	if p.P == 0 {
		return false
	}
	return p.N%p.P == 0 && p.N/p.P == p.Q
}

// RunStatus is the lifecycle state of a batch run.
type RunStatus string

const (
	RunRunning          RunStatus = "running"
	RunCompleted        RunStatus = "completed"
	RunDeadlineExceeded RunStatus = "deadline_exceeded"
	RunFailed           RunStatus = "failed"
)

// Run describes one batch invocation as recorded in the ledger.
type Run struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at,omitempty"`
	Status        RunStatus `json:"status"`
	Count         int       `json:"count"`
	EngineVersion string    `json:"engine_version"`
}
