// Package search implements Dijkstra and A* over implicit state spaces.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries whose cost exceeds the best known cost.
//   - The goal predicate is evaluated on pop, so the first accepted state is
//     optimal.
//   - Negative step costs are detected during relaxation and fail fast.
//   - A state may be expanded again if a strictly cheaper route to it is
//     found later, which keeps results correct for merely admissible
//     heuristics at the price of extra work.
package search

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// ShortestPath searches p for the cheapest route from p.Start to any goal
// state.
//
// Returns:
//
//   - Result with the total cost, the goal state reached and, if
//     WithReturnPath was given, the reconstructed Path.
//   - ErrNoPath if the frontier empties (or every route exceeds MaxCost).
//   - ErrNilExpand / ErrNilGoal for an incomplete Problem.
//   - ErrNegativeCost (wrapped with the offending move) if Expand yields a
//     negative step.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over reachable states
//   - Space: O(V + E)
func ShortestPath[S comparable](p Problem[S], opts ...Option) (Result[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := p.validate(); err != nil {
		return Result[S]{}, err
	}

	r := newRunner(p, cfg, nil)
	res, err := r.run()
	cfg.Logger.WithFields(logrus.Fields{
		"expanded": r.expanded,
		"pushed":   r.seq,
		"cost":     res.Cost,
		"found":    err == nil,
	}).Debug("search: finished")

	return res, err
}

// exclusion removes states and moves from the space for one spur search.
type exclusion[S comparable] struct {
	states map[S]struct{}
	edges  map[edgeKey[S]]struct{}
}

type edgeKey[S comparable] struct {
	from, to S
}

func newExclusion[S comparable]() *exclusion[S] {
	return &exclusion[S]{
		states: make(map[S]struct{}),
		edges:  make(map[edgeKey[S]]struct{}),
	}
}

func (x *exclusion[S]) blocks(from, to S) bool {
	if x == nil {
		return false
	}
	if _, ok := x.states[to]; ok {
		return true
	}
	_, ok := x.edges[edgeKey[S]{from, to}]
	return ok
}

// runner holds the mutable state for a single search execution.
type runner[S comparable] struct {
	p        Problem[S]    // problem definition; closures are read-only here
	options  Options       // configuration (MaxCost, ReturnPath, …)
	excl     *exclusion[S] // removed states/moves, nil outside Yen spur searches
	best     map[S]int64   // best known accumulated cost per state
	prev     map[S]S       // predecessor on the best known route
	pq       frontier[S]   // lazy min-heap of frontier entries
	seq      uint64        // insertion counter, the tie-break
	expanded int
}

func newRunner[S comparable](p Problem[S], cfg Options, excl *exclusion[S]) *runner[S] {
	return &runner[S]{
		p:       p,
		options: cfg,
		excl:    excl,
		best:    make(map[S]int64),
		prev:    make(map[S]S),
		pq:      make(frontier[S], 0, 64),
	}
}

// run is the core loop. It pops the lowest-priority entry, accepts it if it
// satisfies the goal, and otherwise relaxes its moves.
func (r *runner[S]) run() (Result[S], error) {
	// 1) Seed the frontier with the start state at cost 0.
	r.best[r.p.Start] = 0
	r.push(r.p.Start, 0)

	for r.pq.Len() > 0 {
		// 2) Pop and drop stale entries.
		item := heap.Pop(&r.pq).(*frontierItem[S])
		if item.cost > r.best[item.state] {
			continue
		}

		// 3) Goal test on pop.
		if r.p.Goal(item.state) {
			return r.result(item.state, item.cost), nil
		}

		// 4) Expand.
		r.expanded++
		if err := r.relax(item.state, item.cost); err != nil {
			return Result[S]{}, err
		}
	}

	return Result[S]{}, ErrNoPath
}

// relax pushes every successor of u whose candidate cost beats the best
// known cost for that successor.
func (r *runner[S]) relax(u S, cost int64) error {
	for _, e := range r.p.Expand(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, u, e.To, e.Cost)
		}
		if r.excl.blocks(u, e.To) {
			continue
		}
		nc := cost + e.Cost
		if nc > r.options.MaxCost {
			continue
		}
		if old, seen := r.best[e.To]; seen && nc >= old {
			continue
		}
		r.best[e.To] = nc
		r.prev[e.To] = u
		r.push(e.To, nc)
	}
	return nil
}

func (r *runner[S]) push(s S, cost int64) {
	prio := cost
	if r.p.Heuristic != nil {
		prio += r.p.Heuristic(s)
	}
	heap.Push(&r.pq, &frontierItem[S]{state: s, cost: cost, priority: prio, seq: r.seq})
	r.seq++
}

func (r *runner[S]) result(goal S, cost int64) Result[S] {
	res := Result[S]{Cost: cost, Goal: goal, Expanded: r.expanded}
	if r.options.ReturnPath {
		res.Path = r.path(goal)
	}
	return res
}

// path walks predecessors from goal back to the start.
func (r *runner[S]) path(goal S) *Path[S] {
	states := []S{goal}
	for s := goal; s != r.p.Start; {
		s = r.prev[s]
		states = append(states, s)
	}
	slices.Reverse(states)

	costs := make([]int64, len(states))
	for i, s := range states {
		costs[i] = r.best[s]
	}
	return &Path[S]{States: states, Costs: costs, Cost: costs[len(costs)-1]}
}

// frontierItem is one open-set entry.
type frontierItem[S comparable] struct {
	state    S
	cost     int64  // accumulated cost from the start
	priority int64  // cost + heuristic
	seq      uint64 // insertion order
}

// frontier is a min-heap of *frontierItem ordered by priority, then by
// insertion order.
type frontier[S comparable] []*frontierItem[S]

// Len returns the number of items in the heap.
func (pq frontier[S]) Len() int { return len(pq) }

// Less orders by priority; equal priorities pop first-in first-out.
func (pq frontier[S]) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *frontier[S]) Push(x any) { *pq = append(*pq, x.(*frontierItem[S])) }

// Pop removes and returns the last element; heap.Pop has already moved
// the minimum there.
func (pq *frontier[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
