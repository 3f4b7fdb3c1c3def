// Package harness runs batch scenarios against the factorization engine.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	input:            # raw input lines, filtered exactly like the CLI input
//	  - "15"
//	  - "not a number"
//	budget: 5s        # optional, defaults to engine.DefaultBudget
//	tick: 1ms         # optional, clock advance per deadline check (0 = frozen)
//	expect:
//	  output:
//	    - "15=5*3"
//	  error: ""       # "", deadline_exceeded or invalid_number
//
// # Deterministic Testing
//
// Scenarios never touch the wall clock. The engine runs on a
// testutil.StepClock that advances by tick on every read, so a budget B and
// a tick T allow exactly floor(B/T) deadline checks for the whole batch.
// Emitted pairs are written to an in-memory ledger and read back before the
// assertions run.
//
// Golden files in testdata/golden hold the rendered output of each scenario:
//
//	go test ./internal/harness -update
package harness
