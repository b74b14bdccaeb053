package bfs

import (
	"context"
)

// queueItem pairs a state with its depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable walk state.
type walker[S comparable] struct {
	next  func(S) []S
	opts  Options
	ctx   context.Context
	queue []queueItem[S]
	head  int
	res   *Result[S]
}

// Walk explores every state reachable from starts through next, visiting
// each distinct state exactly once in FIFO order. Duplicate starts are
// visited once. Returns ErrNilNext, ErrOptionViolation for bad options or
// the context error on cancellation, alongside the partial result.
func Walk[S comparable](starts []S, next func(S) []S, opts ...Option) (*Result[S], error) {
	if next == nil {
		return nil, ErrNilNext
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next:  next,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[S], 0, len(starts)),
		res: &Result[S]{
			Order:  make([]S, 0, len(starts)),
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	for _, s := range starts {
		if !w.res.Reached(s) {
			w.enqueue(s, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue records s at depth d and appends it to the queue.
func (w *walker[S]) enqueue(s S, d int) {
	w.res.Depth[s] = d
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty or cancelled.
func (w *walker[S]) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.state)

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.next(item.state) {
			if w.res.Reached(nbr) {
				continue
			}
			w.res.Parent[nbr] = item.state
			w.enqueue(nbr, nextDepth)
		}
	}
	return nil
}
