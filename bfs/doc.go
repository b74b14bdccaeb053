// Package bfs walks implicit state spaces breadth-first.
//
// What
//
//   - Explore states in non-decreasing step count from one or more starts.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → steps from the nearest start
//   - Parent: map from state → its predecessor
//   - States are any comparable value; the successor function generates them
//     on demand, so no graph is ever materialized.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Beam propagation: a state of (position, direction) plus a visited set
//     makes self-re-entering beams terminate.
//   - Flood fills and reachability checks in O(V + E).
//
// Determinism
//
//	Successors are enqueued in the order next returns them, so the visit
//	sequence is reproducible for deterministic successor functions.
//
// Usage
//
//	res, err := bfs.Walk([]beam{{pos, point.East}}, step,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(100),
//	)
//
// Errors
//
//   - ErrNilNext          if the successor function is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           if the context is cancelled mid-walk.
//   - ErrNotReached       from Result.PathTo for unseen states.
package bfs
