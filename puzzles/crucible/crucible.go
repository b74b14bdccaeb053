// Package crucible routes a crucible across a city block map minimizing heat
// loss, subject to limits on how far it may travel in a straight line.
package crucible

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/point"
	"github.com/katalvlaran/aocgrid/search"
)

// ErrBadLimits indicates straight-run limits that admit no move.
var ErrBadLimits = errors.New("crucible: invalid straight-run limits")

// Limits bounds a straight run: at least MinRun blocks before turning or
// stopping, at most MaxRun blocks before turning.
type Limits struct {
	MinRun, MaxRun int
}

var (
	// Normal is the ordinary crucible.
	Normal = Limits{MinRun: 1, MaxRun: 3}
	// Ultra is the ultra crucible.
	Ultra = Limits{MinRun: 4, MaxRun: 10}
)

// City is a heat-loss map of single digits.
type City struct {
	grid     *gridgraph.Grid
	minDigit int
}

// cart is a search state. dir is zero only at the start.
type cart struct {
	pos, dir point.Point
	run      int
}

// Parse reads a map where every cell is a digit.
func Parse(text string) (*City, error) {
	g, err := gridgraph.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("crucible: %w", err)
	}
	c := &City{grid: g, minDigit: 9}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			d, ok := g.Cost(point.Pt(x, y))
			if !ok {
				b, _ := g.Get(point.Pt(x, y))
				return nil, fmt.Errorf("crucible: %w: %q at %d,%d is not a digit", gridgraph.ErrMalformedInput, b, x, y)
			}
			c.minDigit = min(c.minDigit, d)
		}
	}
	return c, nil
}

func (c *City) problem(lim Limits) search.Problem[cart] {
	exit := point.Pt(c.grid.Width-1, c.grid.Height-1)
	return search.Problem[cart]{
		Start: cart{pos: point.Zero},
		Expand: func(s cart) []search.Edge[cart] {
			out := make([]search.Edge[cart], 0, 3)
			for _, d := range point.Dirs4 {
				next := cart{pos: s.pos.Add(d), dir: d, run: 1}
				switch {
				case s.dir == point.Zero:
					// first move, any heading
				case d == s.dir.Neg():
					continue
				case d == s.dir:
					if s.run >= lim.MaxRun {
						continue
					}
					next.run = s.run + 1
				case s.run < lim.MinRun:
					continue
				}
				if loss, ok := c.grid.Cost(next.pos); ok {
					out = append(out, search.Edge[cart]{To: next, Cost: int64(loss)})
				}
			}
			return out
		},
		Goal: func(s cart) bool {
			return s.pos == exit && (s.run >= lim.MinRun || s.dir == point.Zero)
		},
		Heuristic: func(s cart) int64 {
			return int64(s.pos.Manhattan(exit) * c.minDigit)
		},
	}
}

// MinHeatLoss returns the least heat lost travelling from the top-left to the
// bottom-right block. The starting block's loss is not counted.
func (c *City) MinHeatLoss(lim Limits, opts ...search.Option) (int64, error) {
	if lim.MinRun < 1 || lim.MaxRun < lim.MinRun {
		return 0, fmt.Errorf("%w: %+v", ErrBadLimits, lim)
	}
	res, err := search.ShortestPath(c.problem(lim), opts...)
	if err != nil {
		return 0, fmt.Errorf("crucible: %w", err)
	}
	return res.Cost, nil
}

// Route returns the blocks visited by one least-loss route, start included.
func (c *City) Route(lim Limits, opts ...search.Option) ([]point.Point, error) {
	if lim.MinRun < 1 || lim.MaxRun < lim.MinRun {
		return nil, fmt.Errorf("%w: %+v", ErrBadLimits, lim)
	}
	res, err := search.ShortestPath(c.problem(lim), append(opts, search.WithReturnPath())...)
	if err != nil {
		return nil, fmt.Errorf("crucible: %w", err)
	}
	out := make([]point.Point, len(res.Path.States))
	for i, s := range res.Path.States {
		out[i] = s.pos
	}
	return out, nil
}
