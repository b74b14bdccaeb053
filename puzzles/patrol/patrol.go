// Package patrol follows a guard who walks straight ahead and turns right at
// every obstruction, and finds where one extra obstruction traps them in a loop.
package patrol

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/parallel"
	"github.com/katalvlaran/aocgrid/point"
)

const obstruction = '#'

// Lab is a read-only floor plan with the guard's starting tile.
// The guard always starts facing north.
type Lab struct {
	grid  *gridgraph.Grid
	guard point.Point
}

// guard is a walk state; revisiting one means the walk loops.
type guard struct {
	pos, dir point.Point
}

// Parse reads a floor plan; '^' marks the guard and must occur exactly once.
func Parse(text string) (*Lab, error) {
	g, err := gridgraph.Parse(text,
		gridgraph.WithRequiredMarkers('^'),
		gridgraph.WithMarkerFill('.'),
	)
	if err != nil {
		return nil, fmt.Errorf("patrol: %w", err)
	}
	start, _ := g.Marker('^')
	return &Lab{grid: g, guard: start}, nil
}

// walk moves the guard until they leave the lab or repeat a state, calling
// visit for every tile stood on. extra is an additional obstruction; pass a
// point outside the lab for none. It reports whether the walk loops.
func (l *Lab) walk(extra point.Point, visit func(point.Point)) bool {
	seen := mapset.New[guard]()
	g := guard{pos: l.guard, dir: point.North}
	for {
		if seen.Has(g) {
			return true
		}
		seen.Put(g)
		visit(g.pos)

		ahead := g.pos.Add(g.dir)
		c, ok := l.grid.Get(ahead)
		switch {
		case !ok:
			return false
		case c == obstruction || ahead == extra:
			g.dir = g.dir.RotateRight()
		default:
			g.pos = ahead
		}
	}
}

// none lies outside every lab.
var none = point.Pt(-1, -1)

// Visited returns every tile the guard stands on before leaving the lab.
// The set is empty if the unobstructed patrol already loops forever.
func (l *Lab) Visited() (mapset.Set[point.Point], error) {
	tiles := mapset.New[point.Point]()
	if l.walk(none, tiles.Put) {
		return mapset.New[point.Point](), ErrLoops
	}
	return tiles, nil
}

// Loops reports whether adding an obstruction at p traps the guard.
func (l *Lab) Loops(p point.Point) bool {
	return l.walk(p, func(point.Point) {})
}

// LoopingObstacles counts the tiles where a single new obstruction traps the
// guard. Only tiles on the original route can change it; the guard's own
// tile is excluded. Candidates are tried in parallel against the shared,
// read-only floor plan.
func (l *Lab) LoopingObstacles(ctx context.Context, opts ...parallel.Option) (int, error) {
	route, err := l.Visited()
	if err != nil {
		return 0, err
	}
	var candidates []point.Point
	for y := 0; y < l.grid.Height; y++ {
		for x := 0; x < l.grid.Width; x++ {
			if p := point.Pt(x, y); p != l.guard && route.Has(p) {
				candidates = append(candidates, p)
			}
		}
	}
	n, err := parallel.Count(ctx, candidates, l.Loops, opts...)
	if err != nil {
		return 0, fmt.Errorf("patrol: %w", err)
	}
	return n, nil
}
