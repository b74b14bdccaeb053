// Package cycle defines the result type and errors for cycle extrapolation.
package cycle

import (
	"errors"

	"tailscale.com/util/deephash"
)

// ErrNegativeIterations is returned when a negative step count is requested.
var ErrNegativeIterations = errors.New("cycle: negative iteration count")

// ErrNilStep is returned when no step function is supplied.
var ErrNilStep = errors.New("cycle: step function is nil")

// Info describes the cycle found while simulating.
//
//	Start  – index μ of the first state that later repeats.
//	Length – period λ; state[i] == state[i+λ] for every i ≥ μ.
//	Found  – false when n was reached before any repeat.
type Info struct {
	Start  int
	Length int
	Found  bool
}

// DeepKey hashes every reachable field of v, including slices and maps,
// into a comparable snapshot key. Use it when a state has no cheap
// comparable representation of its own.
func DeepKey[T any](v T) deephash.Sum {
	return deephash.Hash(&v)
}
