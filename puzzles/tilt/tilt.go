// Package tilt simulates a platform of rounded rocks that roll when the
// platform is tilted, and measures the load on its north support beams.
package tilt

import (
	"fmt"

	"tailscale.com/util/deephash"

	"github.com/katalvlaran/aocgrid/cycle"
	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/point"
)

const (
	round = 'O'
	cube  = '#'
	empty = '.'
)

// SpinOrder is the tilt sequence of one spin cycle.
var SpinOrder = [4]point.Point{point.North, point.West, point.South, point.East}

// Platform is a mutable rock layout.
type Platform struct {
	grid *gridgraph.Grid
}

// Parse reads a platform of 'O', '#' and '.' cells.
func Parse(text string) (*Platform, error) {
	g, err := gridgraph.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("tilt: %w", err)
	}
	return &Platform{grid: g}, nil
}

// Clone returns an independent copy.
func (p *Platform) Clone() *Platform {
	return &Platform{grid: p.grid.Clone()}
}

// String renders the layout row by row.
func (p *Platform) String() string { return p.grid.String() }

// Tilt rolls every rounded rock as far as it goes in direction d.
// Rocks closest to the downhill edge settle first.
func (p *Platform) Tilt(d point.Point) {
	w, h := p.grid.Width, p.grid.Height
	xs, ys := span(w, d.X > 0), span(h, d.Y > 0)
	for _, y := range ys {
		for _, x := range xs {
			pos := point.Pt(x, y)
			if c, _ := p.grid.Get(pos); c != round {
				continue
			}
			dst := pos
			for {
				c, ok := p.grid.Get(dst.Add(d))
				if !ok || c != empty {
					break
				}
				dst = dst.Add(d)
			}
			// dst is pos or an empty cell, so swapping rolls the rock there
			p.grid.Swap(pos, dst)
		}
	}
}

// span lists 0..n-1, reversed when the tilt points towards n.
func span(n int, reverse bool) []int {
	out := make([]int, n)
	for i := range out {
		if reverse {
			out[i] = n - 1 - i
		} else {
			out[i] = i
		}
	}
	return out
}

// TiltNorth rolls every rock north.
func (p *Platform) TiltNorth() { p.Tilt(point.North) }

// TiltWest rolls every rock west.
func (p *Platform) TiltWest() { p.Tilt(point.West) }

// TiltSouth rolls every rock south.
func (p *Platform) TiltSouth() { p.Tilt(point.South) }

// TiltEast rolls every rock east.
func (p *Platform) TiltEast() { p.Tilt(point.East) }

// Spin tilts north, west, south, then east.
func (p *Platform) Spin() {
	for _, d := range SpinOrder {
		p.Tilt(d)
	}
}

// Load sums, over every rounded rock, its distance to the south edge plus one.
func (p *Platform) Load() int {
	total := 0
	for _, pos := range p.grid.Find(round) {
		total += p.grid.Height - pos.Y
	}
	return total
}

// NorthLoad is the load after a single north tilt. p is left untouched.
func (p *Platform) NorthLoad() int {
	q := p.Clone()
	q.TiltNorth()
	return q.Load()
}

func spun(q *Platform) *Platform {
	next := q.Clone()
	next.Spin()
	return next
}

func snapshot(q *Platform) deephash.Sum { return cycle.DeepKey(q.String()) }

// SpinLoad returns the load after n spin cycles, jumping over repeated
// layouts. p is left untouched.
func (p *Platform) SpinLoad(n int) (int, cycle.Info, error) {
	q, info, err := cycle.Extrapolate(p, spun, snapshot, n)
	if err != nil {
		return 0, info, fmt.Errorf("tilt: %w", err)
	}
	return q.Load(), info, nil
}

// SpinLoadNaive spins n times without cycle detection.
func (p *Platform) SpinLoadNaive(n int) (int, error) {
	q, err := cycle.Simulate(p, spun, n)
	if err != nil {
		return 0, fmt.Errorf("tilt: %w", err)
	}
	return q.Load(), nil
}
