// Package cycle fast-forwards long deterministic simulations.
//
// Many puzzles ask for the state after an absurd number of steps (a billion
// spin cycles of a tilting platform). The sequence of states of a
// deterministic step function over a finite state space must eventually
// repeat; Extrapolate finds the first repeat, measures its period and jumps
// straight to the requested index.
//
// Keys
//
//	The caller chooses how a state is keyed. Comparable states can key on
//	themselves; a string rendering of a grid is a cheap, exact key; DeepKey
//	hashes arbitrary nested values with tailscale.com/util/deephash.
//
// Complexity
//
//   - Time:   O((μ+λ) · step) instead of O(n · step)
//   - Memory: O(μ+λ) keys
//
// Simulate is the naive reference used to cross-check Extrapolate.
package cycle
