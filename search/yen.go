package search

import (
	"container/heap"
	"errors"
	"slices"

	"github.com/sirupsen/logrus"
	"tailscale.com/util/deephash"
)

// KShortest returns up to k loopless paths from p.Start to a goal state in
// non-decreasing cost order (Yen's algorithm). Fewer than k paths are
// returned when the space has no more. Returns ErrNoPath if not even one
// path exists and ErrBadK for k < 1.
func KShortest[S comparable](p Problem[S], k int, opts ...Option) ([]Path[S], error) {
	if k < 1 {
		return nil, ErrBadK
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	return yen(p, cfg, k, false)
}

// AllShortest returns every loopless minimal-cost path from p.Start to a
// goal state. Enumeration stops as soon as the next candidate costs more
// than the first path, or after MaxPaths paths when that cap is set.
// The order among equal-cost paths is deterministic but unspecified.
func AllShortest[S comparable](p Problem[S], opts ...Option) ([]Path[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	return yen(p, cfg, cfg.MaxPaths, true)
}

// yen runs Yen's k-shortest-paths loop. k ≤ 0 means no count limit.
// With optimalOnly, spur searches are capped at the best cost and the loop
// ends at the first candidate that is more expensive.
func yen[S comparable](p Problem[S], cfg Options, k int, optimalOnly bool) ([]Path[S], error) {
	first, err := solve(p, cfg, nil)
	if err != nil {
		return nil, err
	}

	found := []Path[S]{first}
	seen := map[deephash.Sum]struct{}{signature(first.States): {}}
	var cands candidates[S]
	var spurs int

	for k <= 0 || len(found) < k {
		last := found[len(found)-1]

		// 1) Branch off every non-final state of the last accepted path.
		for i := 0; i < len(last.States)-1; i++ {
			root := last.States[:i+1]

			// 2) Remove the next move of every accepted path sharing this root,
			//    and the root itself except the spur state, to keep paths loopless.
			excl := newExclusion[S]()
			for _, f := range found {
				if len(f.States) > i+1 && slices.Equal(f.States[:i+1], root) {
					excl.edges[edgeKey[S]{f.States[i], f.States[i+1]}] = struct{}{}
				}
			}
			for _, s := range root[:i] {
				excl.states[s] = struct{}{}
			}

			spurCfg := cfg
			if optimalOnly {
				spurCfg.MaxCost = min(cfg.MaxCost, first.Cost-last.Costs[i])
			}
			sub := p
			sub.Start = last.States[i]
			spurs++
			spur, err := solve(sub, spurCfg, excl)
			if errors.Is(err, ErrNoPath) {
				continue
			}
			if err != nil {
				return nil, err
			}

			// 3) Root + spur is a candidate unless it was produced before.
			cand := join(last, i, spur)
			sig := signature(cand.States)
			if _, dup := seen[sig]; dup {
				continue
			}
			seen[sig] = struct{}{}
			heap.Push(&cands, &candidate[S]{path: cand, seq: len(seen)})
		}

		// 4) Accept the cheapest candidate.
		if cands.Len() == 0 {
			break
		}
		next := heap.Pop(&cands).(*candidate[S]).path
		if optimalOnly && next.Cost > first.Cost {
			break
		}
		found = append(found, next)
	}

	cfg.Logger.WithFields(logrus.Fields{
		"paths":       len(found),
		"spurs":       spurs,
		"best":        first.Cost,
		"optimalOnly": optimalOnly,
	}).Debug("search: yen finished")

	return found, nil
}

// solve runs one search and always reconstructs its path.
func solve[S comparable](p Problem[S], cfg Options, excl *exclusion[S]) (Path[S], error) {
	cfg.ReturnPath = true
	r := newRunner(p, cfg, excl)
	res, err := r.run()
	if err != nil {
		return Path[S]{}, err
	}
	return *res.Path, nil
}

// join concatenates the first i states of base with spur, which starts at
// base.States[i].
func join[S comparable](base Path[S], i int, spur Path[S]) Path[S] {
	rootCost := base.Costs[i]
	states := make([]S, 0, i+len(spur.States))
	states = append(states, base.States[:i]...)
	states = append(states, spur.States...)
	costs := make([]int64, 0, len(states))
	costs = append(costs, base.Costs[:i]...)
	for _, c := range spur.Costs {
		costs = append(costs, rootCost+c)
	}
	return Path[S]{States: states, Costs: costs, Cost: rootCost + spur.Cost}
}

// signature identifies a state sequence for candidate deduplication.
func signature[S comparable](states []S) deephash.Sum {
	return deephash.Hash(&states)
}

type candidate[S comparable] struct {
	path Path[S]
	seq  int
}

// candidates is a min-heap of Yen candidates by cost, then discovery order.
type candidates[S comparable] []*candidate[S]

func (c candidates[S]) Len() int { return len(c) }
func (c candidates[S]) Less(i, j int) bool {
	if c[i].path.Cost != c[j].path.Cost {
		return c[i].path.Cost < c[j].path.Cost
	}
	return c[i].seq < c[j].seq
}
func (c candidates[S]) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c *candidates[S]) Push(x any) { *c = append(*c, x.(*candidate[S])) }
func (c *candidates[S]) Pop() any {
	old := *c
	n := len(old)
	item := old[n-1]
	*c = old[:n-1]
	return item
}
