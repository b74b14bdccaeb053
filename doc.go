// Package aocgrid is a toolkit for daily grid puzzles: a 2D grid model, a
// generic weighted state-space search with directional state, and the
// helpers that turn brute-force simulations into fast answers.
//
// Packages
//
//	point/       Coordinate value type, compass directions, rotation, Manhattan distance
//	gridgraph/   Grid model: parse, lookups, markers, overlays, connected regions
//	search/      Dijkstra / A* over implicit states, k-shortest (Yen) and all optimal paths
//	bfs/         breadth-first reachability with a visited set keyed on the full state
//	cycle/       cycle detection and extrapolation of deterministic simulations
//	parallel/    embarrassingly parallel trials reduced to a sum, count or maximum
//	puzzles/     reindeer, lavabeam, ramrun, tilt, crucible, patrol, springs
//	cmd/aocgrid  console driver printing "Part 1" / "Part 2" answers
//
// States are any comparable Go value. Put position plus only the auxiliary
// data that changes future moves (heading, straight-run length) into it: two
// states that compare equal are treated as the same search node.
//
// Libraries stay silent by default; pass a logrus logger with WithLogger to
// see search statistics and worker partitioning at Debug level.
package aocgrid
