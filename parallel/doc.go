// Package parallel evaluates embarrassingly parallel batches of independent
// trials (one candidate obstacle, one beam entry point) and reduces them to a
// single sum, count or maximum.
//
// The batch is split into contiguous chunks, one goroutine per chunk via
// golang.org/x/sync/errgroup, and the per-chunk partials are combined once
// every worker has finished. Trials must not share mutable state: each owns
// whatever scratch layer it mutates, while shared grids stay read-only.
//
// Options
//
//   - WithWorkers(n): number of goroutines (default GOMAXPROCS).
//   - WithLogger(l):  Debug-level partitioning details.
//
// Cancellation is checked before each chunk starts; a cancelled batch returns
// the context error and no partial answer.
package parallel
