package cycle

import "fmt"

// Extrapolate returns the state reached after n applications of step to
// initial, without simulating all n steps when the sequence repeats.
//
// Each state is reduced to a key. The first time a key recurs at index i
// after first appearing at μ, the period is λ = i−μ and only (n−i) mod λ
// further steps are simulated. step must be deterministic and must return a
// fresh value rather than mutate its argument in place if key retains it.
func Extrapolate[T any, K comparable](initial T, step func(T) T, key func(T) K, n int) (T, Info, error) {
	if n < 0 {
		return initial, Info{}, fmt.Errorf("%w: %d", ErrNegativeIterations, n)
	}
	if step == nil || key == nil {
		return initial, Info{}, ErrNilStep
	}

	seen := map[K]int{key(initial): 0}
	cur := initial
	for i := 1; i <= n; i++ {
		cur = step(cur)
		k := key(cur)
		first, ok := seen[k]
		if !ok {
			seen[k] = i
			continue
		}
		info := Info{Start: first, Length: i - first, Found: true}
		for rem := (n - i) % info.Length; rem > 0; rem-- {
			cur = step(cur)
		}
		return cur, info, nil
	}

	return cur, Info{}, nil
}

// Simulate applies step to initial n times.
func Simulate[T any](initial T, step func(T) T, n int) (T, error) {
	if n < 0 {
		return initial, fmt.Errorf("%w: %d", ErrNegativeIterations, n)
	}
	if step == nil {
		return initial, ErrNilStep
	}
	cur := initial
	for i := 0; i < n; i++ {
		cur = step(cur)
	}
	return cur, nil
}
