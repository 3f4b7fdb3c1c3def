// Package store provides the SQLite run ledger for rhofactor.
//
// The ledger is append-only:
//   - runs: one row per batch invocation, with its final status
//   - pairs: the factor pairs a run emitted, in emission order (seq)
//
// Pairs are written as they are emitted, so a run that hit the deadline
// still records everything it printed before aborting.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait on lock contention
//   - foreign_keys=ON: pairs must reference an existing run
//
// All reads order by seq so results are stable across calls.
package store
