package parallel

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// Number is any value the reducers can add or compare.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum runs trial on every item and adds the results.
func Sum[T any, N Number](ctx context.Context, items []T, trial func(T) N, opts ...Option) (N, error) {
	parts, err := run(ctx, items, opts, func(chunk []T) N {
		var acc N
		for _, it := range chunk {
			acc += trial(it)
		}
		return acc
	})
	if err != nil {
		return 0, err
	}
	var total N
	for _, p := range parts {
		total += p
	}
	return total, nil
}

// Count runs pred on every item and reports how many returned true.
func Count[T any](ctx context.Context, items []T, pred func(T) bool, opts ...Option) (int, error) {
	return Sum(ctx, items, func(it T) int {
		if pred(it) {
			return 1
		}
		return 0
	}, opts...)
}

// Max runs trial on every item and returns the largest result.
// An empty batch yields ErrNoTrials.
func Max[T any, N Number](ctx context.Context, items []T, trial func(T) N, opts ...Option) (N, error) {
	if len(items) == 0 {
		return 0, ErrNoTrials
	}
	parts, err := run(ctx, items, opts, func(chunk []T) N {
		best := trial(chunk[0])
		for _, it := range chunk[1:] {
			best = max(best, trial(it))
		}
		return best
	})
	if err != nil {
		return 0, err
	}
	best := parts[0]
	for _, p := range parts[1:] {
		best = max(best, p)
	}
	return best, nil
}

// run splits items into contiguous chunks, reduces each chunk on its own
// goroutine and returns the per-chunk partials in chunk order. Chunks whose
// context is cancelled before they start are skipped and the context error
// is returned.
func run[T any, N any](ctx context.Context, items []T, opts []Option, reduce func([]T) N) ([]N, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	workers := min(o.Workers, len(items))
	if workers == 0 {
		return nil, ctx.Err()
	}
	size := (len(items) + workers - 1) / workers
	chunks := (len(items) + size - 1) / size
	o.Logger.WithFields(logrus.Fields{
		"trials":  len(items),
		"workers": chunks,
		"chunk":   size,
	}).Debug("parallel: partitioned batch")

	parts := make([]N, chunks)
	g, gctx := errgroup.WithContext(ctx)
	for c := 0; c < chunks; c++ {
		c := c
		lo, hi := c*size, min((c+1)*size, len(items))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[c] = reduce(items[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}
