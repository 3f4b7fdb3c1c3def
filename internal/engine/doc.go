// Package engine implements the rhofactor factorization engine.
//
// The engine has two parts:
//
//   - FindFactor: Pollard's rho with Floyd cycle detection over
//     f(v) = v*v + 1 mod n, starting from x = y = 2. It returns one divisor
//     of n. Even numbers short-circuit to 2.
//   - Engine.Run: drives FindFactor across a batch of numbers in input order and
//     emits one ir.FactorPair per number, cofactor first.
//
// DEADLINE:
//
// A single Deadline is created when a batch starts and is shared, read-only,
// by every FindFactor call in that batch. It is never reset between numbers,
// so the budget (DefaultBudget, 5s) bounds the whole batch, not each number.
// When the budget is exhausted FindFactor returns a *DeadlineExceededError and
// Run stops without emitting anything further. Terminating the process
// is the caller's job.
//
// PRIMES:
//
// Prime inputs are not special-cased. The sequence modulo a prime p collapses
// to gcd == p, so FindFactor either returns n itself (emitted as N=1*N) or,
// for large primes, runs into the deadline.
//
// The engine is single-threaded and deterministic: the same n always yields
// the same factor.
package engine
