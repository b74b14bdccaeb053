// Package reindeer scores routes through a maze where every step costs 1 and
// every change of heading costs an extra 1000.
package reindeer

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/point"
	"github.com/katalvlaran/aocgrid/search"
)

const (
	// StepCost is paid for every tile entered.
	StepCost = 1
	// TurnCost is paid on top of StepCost when the heading changes.
	TurnCost = 1000
)

// Maze is a parsed maze with its start and end tiles.
type Maze struct {
	grid       *gridgraph.Grid
	start, end point.Point
}

// reindeer is a search state: the position plus the heading it arrived with.
type reindeer struct {
	pos, dir point.Point
}

// Parse reads a maze. Both 'S' and 'E' must occur exactly once.
func Parse(text string) (*Maze, error) {
	g, err := gridgraph.Parse(text,
		gridgraph.WithRequiredMarkers('S', 'E'),
		gridgraph.WithMarkerFill('.'),
	)
	if err != nil {
		return nil, fmt.Errorf("reindeer: %w", err)
	}
	start, _ := g.Marker('S')
	end, _ := g.Marker('E')
	return &Maze{grid: g, start: start, end: end}, nil
}

// problem starts facing East. Reversing in place is never allowed.
func (m *Maze) problem() search.Problem[reindeer] {
	return search.Problem[reindeer]{
		Start: reindeer{pos: m.start, dir: point.East},
		Expand: func(r reindeer) []search.Edge[reindeer] {
			out := make([]search.Edge[reindeer], 0, 3)
			for _, d := range [3]point.Point{r.dir, r.dir.RotateLeft(), r.dir.RotateRight()} {
				next := r.pos.Add(d)
				if c, ok := m.grid.Get(next); !ok || c != '.' {
					continue
				}
				cost := int64(StepCost)
				if d != r.dir {
					cost += TurnCost
				}
				out = append(out, search.Edge[reindeer]{To: reindeer{pos: next, dir: d}, Cost: cost})
			}
			return out
		},
		Goal: func(r reindeer) bool { return r.pos == m.end },
		Heuristic: func(r reindeer) int64 {
			return int64(r.pos.Manhattan(m.end)) * StepCost
		},
	}
}

// MinCost returns the lowest score from S to E.
func (m *Maze) MinCost(opts ...search.Option) (int64, error) {
	res, err := search.ShortestPath(m.problem(), opts...)
	if err != nil {
		return 0, fmt.Errorf("reindeer: %w", err)
	}
	return res.Cost, nil
}

// OptimalTiles returns every tile that lies on at least one lowest-score route.
func (m *Maze) OptimalTiles(opts ...search.Option) (mapset.Set[point.Point], error) {
	tiles := mapset.New[point.Point]()
	paths, err := search.AllShortest(m.problem(), opts...)
	if err != nil {
		return tiles, fmt.Errorf("reindeer: %w", err)
	}
	for _, p := range paths {
		for _, s := range p.States {
			tiles.Put(s.pos)
		}
	}
	return tiles, nil
}

// CountOptimalTiles is the size of OptimalTiles.
func (m *Maze) CountOptimalTiles(opts ...search.Option) (int, error) {
	tiles, err := m.OptimalTiles(opts...)
	if err != nil {
		return 0, err
	}
	return tiles.Size(), nil
}
