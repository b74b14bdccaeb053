// Package search provides a generic weighted shortest-path engine over an
// implicit state space: Dijkstra, A* and Yen's k-shortest paths.
//
// Overview:
//
//   - A Problem describes the space through three closures instead of a
//     materialized graph: Expand (legal moves and their incremental costs),
//     Goal (accepting states) and an optional Heuristic (admissible and
//     consistent lower bound on the remaining cost). Without a heuristic the
//     engine is plain Dijkstra.
//   - The state type S is any comparable value and doubles as the
//     discriminator for best-cost bookkeeping. Keep it minimal: position
//     plus whatever auxiliary data changes the future (facing direction,
//     straight-run length), never the full move history. Two states on the
//     same coordinate with different auxiliary data are tracked
//     independently.
//   - The open set is a min-heap ordered by cost+heuristic; equal priorities
//     pop in insertion order, so results are deterministic.
//
// When to use:
//
//   - Grid routing with rules on turns, straight runs or reversals.
//   - Reachability tests where "no path" is itself the answer (ErrNoPath).
//   - Enumerating every minimal-cost path (AllShortest) to collect the
//     cells lying on some optimal route.
//
// Performance and complexity:
//
//   - ShortestPath: O((V + E) log V) over the reachable states.
//   - KShortest:    O(K · L · (V + E) log V), L = path length (Yen).
//   - AllShortest:  as KShortest with K = number of optimal paths; spur
//     searches are bounded by the best cost, which prunes them hard.
//
// Error handling (sentinel errors):
//
//   - ErrNoPath:       expected outcome when the frontier empties; not fatal.
//   - ErrNilExpand / ErrNilGoal: the Problem is incomplete.
//   - ErrNegativeCost: an expansion produced a negative step cost.
//   - ErrBadK:         KShortest with k < 1.
//   - ErrBadMaxCost / ErrBadMaxPaths: invalid option values; the option
//     constructor panics.
//
// API reference:
//
//	func ShortestPath[S comparable](p Problem[S], opts ...Option) (Result[S], error)
//	func KShortest[S comparable](p Problem[S], k int, opts ...Option) ([]Path[S], error)
//	func AllShortest[S comparable](p Problem[S], opts ...Option) ([]Path[S], error)
//
// Thread safety:
//
//   - Each call owns its bookkeeping. Expand, Goal and Heuristic are called
//     from the calling goroutine only; concurrent calls are safe as long as
//     the closures only read shared data.
package search
