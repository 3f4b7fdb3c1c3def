// Package ir provides the shared data types for rhofactor.
//
// This package contains type definitions only. All other internal packages
// import ir; ir imports nothing internal.
//
// Numbers are uint64 throughout. Values that do not fit are rejected at the
// input boundary, never truncated.
package ir
