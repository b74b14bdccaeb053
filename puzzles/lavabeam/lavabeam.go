// Package lavabeam traces light beams through a contraption of mirrors and
// splitters and counts the tiles they energize.
package lavabeam

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aocgrid/bfs"
	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/parallel"
	"github.com/katalvlaran/aocgrid/point"
)

// Beam is a beam inside tile Pos travelling in direction Dir, before the
// tile has deflected it.
type Beam struct {
	Pos, Dir point.Point
}

// Contraption is a read-only layout of '.', '/', '\', '|' and '-' tiles.
type Contraption struct {
	grid *gridgraph.Grid
}

// Parse reads a contraption layout.
func Parse(text string) (*Contraption, error) {
	g, err := gridgraph.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("lavabeam: %w", err)
	}
	return &Contraption{grid: g}, nil
}

// deflect returns the directions a beam leaves tile c with.
func deflect(c byte, dir point.Point) []point.Point {
	switch {
	case c == '/':
		return []point.Point{{X: -dir.Y, Y: -dir.X}}
	case c == '\\':
		return []point.Point{{X: dir.Y, Y: dir.X}}
	case c == '|' && dir.Y == 0:
		return []point.Point{point.North, point.South}
	case c == '-' && dir.X == 0:
		return []point.Point{point.West, point.East}
	default:
		return []point.Point{dir}
	}
}

// next moves a beam one tile onward. Beams leaving the grid vanish.
func (c *Contraption) next(b Beam) []Beam {
	tile, _ := c.grid.Get(b.Pos)
	out := make([]Beam, 0, 2)
	for _, d := range deflect(tile, b.Dir) {
		if n := b.Pos.Add(d); c.grid.InBounds(n) {
			out = append(out, Beam{Pos: n, Dir: d})
		}
	}
	return out
}

// Energize counts the tiles crossed by a beam entering at start heading dir.
func (c *Contraption) Energize(start, dir point.Point) (int, error) {
	return c.EnergizeOn(context.Background(), c.grid.NewOverlay(), start, dir)
}

// EnergizeOn traces a beam onto ov, which is reset first, and returns the
// number of energized tiles. ov must come from this contraption's grid and
// must not be shared between concurrent calls.
func (c *Contraption) EnergizeOn(ctx context.Context, ov *gridgraph.Overlay, start, dir point.Point) (int, error) {
	ov.Reset()
	if !c.grid.InBounds(start) {
		return 0, nil
	}
	res, err := bfs.Walk([]Beam{{Pos: start, Dir: dir}}, c.next, bfs.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("lavabeam: %w", err)
	}
	for _, b := range res.Order {
		ov.Mark(b.Pos)
	}
	return ov.Count(), nil
}

// Entries lists every beam entering from the border: down from the top row,
// up from the bottom row, right from the left column and left from the
// right column.
func (c *Contraption) Entries() []Beam {
	w, h := c.grid.Width, c.grid.Height
	out := make([]Beam, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		out = append(out,
			Beam{Pos: point.Pt(x, 0), Dir: point.South},
			Beam{Pos: point.Pt(x, h-1), Dir: point.North},
		)
	}
	for y := 0; y < h; y++ {
		out = append(out,
			Beam{Pos: point.Pt(0, y), Dir: point.East},
			Beam{Pos: point.Pt(w-1, y), Dir: point.West},
		)
	}
	return out
}

// MaxEnergized tries every border entry in parallel and returns the best count.
func (c *Contraption) MaxEnergized(ctx context.Context, opts ...parallel.Option) (int, error) {
	best, err := parallel.Max(ctx, c.Entries(), func(b Beam) int {
		n, err := c.EnergizeOn(ctx, c.grid.NewOverlay(), b.Pos, b.Dir)
		if err != nil {
			return 0
		}
		return n
	}, opts...)
	if err != nil {
		return 0, fmt.Errorf("lavabeam: %w", err)
	}
	// a trial cut short by cancellation reports 0; do not trust the maximum
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("lavabeam: %w", err)
	}
	return best, nil
}
