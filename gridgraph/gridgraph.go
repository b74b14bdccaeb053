// Package gridgraph provides utilities to treat a 2D character map as a
// graph of point.Point cells. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Required start/end markers located at parse time
//   - O(1) terrain lookups that never fabricate out-of-range cells
//   - Connected regions of open cells
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aocgrid/point"
)

// Parse builds a Grid from puzzle text, one row per line.
// A trailing newline and '\r' line endings are ignored.
// Returns ErrEmptyGrid if text has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrMissingMarker or
// ErrDuplicateMarker when a required marker is not present exactly once.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(text string, opts ...Option) (*Grid, error) {
	cfg := DefaultGridOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	h, w := len(lines), len(lines[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]byte, 0, w*h)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		cells = append(cells, line...)
	}

	g := &Grid{
		Width:   w,
		Height:  h,
		Conn:    cfg.Conn,
		cells:   cells,
		markers: make(map[byte]point.Point, len(cfg.Required)),
	}
	// Locate every required marker; each must occur exactly once.
	for _, m := range cfg.Required {
		found := g.Find(m)
		switch {
		case len(found) == 0:
			return nil, fmt.Errorf("%w: %q", ErrMissingMarker, m)
		case len(found) > 1:
			return nil, fmt.Errorf("%w: %q at %v and %v", ErrDuplicateMarker, m, found[0], found[1])
		}
		g.markers[m] = found[0]
	}
	if cfg.Fill != 0 {
		for _, p := range g.markers {
			g.cells[g.index(p.X, p.Y)] = cfg.Fill
		}
	}

	return g, nil
}

// New constructs a width×height grid with every cell set to fill.
// Returns ErrEmptyGrid for non-positive dimensions.
func New(width, height int, fill byte) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{
		Width:   width,
		Height:  height,
		cells:   cells,
		markers: map[byte]point.Point{},
	}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p point.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Get returns the cell at p, or (0, false) outside the grid.
func (g *Grid) Get(p point.Point) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.index(p.X, p.Y)], true
}

// Cost interprets the cell at p as a decimal digit terrain cost.
// Returns false outside the grid or when the cell is not a digit.
func (g *Grid) Cost(p point.Point) (int, bool) {
	c, ok := g.Get(p)
	if !ok || c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// Set overwrites the cell at p. Returns ErrOutOfBounds outside the grid.
func (g *Grid) Set(p point.Point, c byte) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Width, g.Height)
	}
	g.cells[g.index(p.X, p.Y)] = c
	return nil
}

// Swap exchanges the cells at a and b. Like slice indexing, it panics when
// either point lies outside the grid.
func (g *Grid) Swap(a, b point.Point) {
	if !g.InBounds(a) || !g.InBounds(b) {
		panic(fmt.Sprintf("gridgraph: Swap(%v, %v) outside %dx%d", a, b, g.Width, g.Height))
	}
	i, j := g.index(a.X, a.Y), g.index(b.X, b.Y)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// Marker returns the position recorded for a required marker, falling back
// to the first occurrence of b in row-major order.
func (g *Grid) Marker(b byte) (point.Point, bool) {
	if p, ok := g.markers[b]; ok {
		return p, true
	}
	for i, c := range g.cells {
		if c == b {
			return g.Coordinate(i), true
		}
	}
	return point.Point{}, false
}

// Find returns every position holding b, in row-major order.
func (g *Grid) Find(b byte) []point.Point {
	var out []point.Point
	for i, c := range g.cells {
		if c == b {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Neighbors4 returns the N, E, S, W neighbors of p, unfiltered.
func (g *Grid) Neighbors4(p point.Point) [4]point.Point {
	var out [4]point.Point
	for i, d := range point.Dirs4 {
		out[i] = p.Add(d)
	}
	return out
}

// Neighbors returns the neighbors of p under g.Conn, unfiltered.
func (g *Grid) Neighbors(p point.Point) []point.Point {
	if g.Conn == Conn8 {
		out := make([]point.Point, 0, len(point.Dirs8))
		for _, d := range point.Dirs8 {
			out = append(out, p.Add(d))
		}
		return out
	}
	n := g.Neighbors4(p)
	return n[:]
}

// Clone returns a deep copy that shares nothing with g.
func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	markers := make(map[byte]point.Point, len(g.markers))
	for k, v := range g.markers {
		markers[k] = v
	}
	return &Grid{Width: g.Width, Height: g.Height, Conn: g.Conn, cells: cells, markers: markers}
}

// String renders the grid back to text without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(g.cells[g.index(0, y) : g.index(0, y)+g.Width])
	}
	return sb.String()
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to a point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) point.Point {
	return point.Point{X: idx % g.Width, Y: idx / g.Width}
}
