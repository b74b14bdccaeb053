// Package ramrun routes across a memory grid while corrupted bytes fall
// onto it one at a time.
package ramrun

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/point"
	"github.com/katalvlaran/aocgrid/search"
)

var (
	// ErrNeverBlocked is returned when the exit stays reachable after every byte has fallen.
	ErrNeverBlocked = errors.New("ramrun: exit is never blocked")
	// ErrBlockCount indicates a block count outside [0, len(blocks)].
	ErrBlockCount = errors.New("ramrun: block count out of range")
)

const (
	open    = '.'
	corrupt = '#'
)

// Memory is a Width×Height space plus the ordered list of falling bytes.
// The route always runs from the top-left corner to the bottom-right one.
type Memory struct {
	Width, Height int
	blocks        []point.Point
}

// Parse reads one "x,y" coordinate per line. Blank lines are skipped;
// anything else that is not two in-range integers is ErrMalformedInput.
func Parse(text string, width, height int) (*Memory, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ramrun: %w", gridgraph.ErrEmptyGrid)
	}
	m := &Memory{Width: width, Height: height}
	for i, line := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		x, errX := strconv.Atoi(xs)
		y, errY := strconv.Atoi(ys)
		if !ok || errX != nil || errY != nil {
			return nil, fmt.Errorf("ramrun: %w: line %d: %q", gridgraph.ErrMalformedInput, i+1, line)
		}
		p := point.Pt(x, y)
		if x < 0 || x >= width || y < 0 || y >= height {
			return nil, fmt.Errorf("ramrun: %w: line %d: %v outside %dx%d", gridgraph.ErrMalformedInput, i+1, p, width, height)
		}
		m.blocks = append(m.blocks, p)
	}
	return m, nil
}

// Blocks returns how many bytes will fall.
func (m *Memory) Blocks() int { return len(m.blocks) }

// Block returns the i-th falling byte, 0-based.
func (m *Memory) Block(i int) point.Point { return m.blocks[i] }

func (m *Memory) exit() point.Point { return point.Pt(m.Width-1, m.Height-1) }

// Grid renders memory after the first n bytes have fallen.
func (m *Memory) Grid(n int) (*gridgraph.Grid, error) {
	if n < 0 || n > len(m.blocks) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBlockCount, n, len(m.blocks))
	}
	g, err := gridgraph.New(m.Width, m.Height, open)
	if err != nil {
		return nil, err
	}
	for _, b := range m.blocks[:n] {
		if err := g.Set(b, corrupt); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ShortestPath returns the fewest steps from the top-left to the bottom-right
// corner after n bytes have fallen, using A* with a Manhattan heuristic.
// Returns search.ErrNoPath when the exit is cut off.
func (m *Memory) ShortestPath(n int, opts ...search.Option) (int64, error) {
	g, err := m.Grid(n)
	if err != nil {
		return 0, err
	}
	exit := m.exit()
	if c, _ := g.Get(point.Zero); c == corrupt {
		return 0, fmt.Errorf("ramrun: start corrupted: %w", search.ErrNoPath)
	}
	res, err := search.ShortestPath(search.Problem[point.Point]{
		Start: point.Zero,
		Expand: func(p point.Point) []search.Edge[point.Point] {
			out := make([]search.Edge[point.Point], 0, 4)
			for _, nb := range g.Neighbors4(p) {
				if c, ok := g.Get(nb); ok && c == open {
					out = append(out, search.Edge[point.Point]{To: nb, Cost: 1})
				}
			}
			return out
		},
		Goal:      func(p point.Point) bool { return p == exit },
		Heuristic: func(p point.Point) int64 { return int64(p.Manhattan(exit)) },
	}, opts...)
	if err != nil {
		return 0, fmt.Errorf("ramrun: %w", err)
	}
	return res.Cost, nil
}

// Connected reports whether the exit is still reachable after n bytes.
// It labels the open regions once instead of searching.
func (m *Memory) Connected(n int) (bool, error) {
	g, err := m.Grid(n)
	if err != nil {
		return false, err
	}
	region := gridgraph.RegionOf(g.Regions(func(c byte) bool { return c == open }))
	a, okA := region[point.Zero]
	b, okB := region[m.exit()]
	return okA && okB && a == b, nil
}

// FirstBlocking returns the first byte after which the exit is unreachable.
// from is where the search starts: when the exit is still reachable after
// from bytes only later bytes are tried, otherwise the earlier ones are.
// Reachability only shrinks as bytes fall, so the answer is found by
// binary search over the block count.
func (m *Memory) FirstBlocking(from int) (point.Point, error) {
	if from < 0 || from > len(m.blocks) {
		return point.Point{}, fmt.Errorf("%w: %d of %d", ErrBlockCount, from, len(m.blocks))
	}
	lo, hi := from, len(m.blocks)
	ok, err := m.Connected(from)
	if err != nil {
		return point.Point{}, err
	}
	if !ok {
		lo, hi = 0, from
	}

	var searchErr error
	i := sort.Search(hi-lo+1, func(i int) bool {
		ok, err := m.Connected(lo + i)
		if err != nil {
			searchErr = err
			return true
		}
		return !ok
	})
	if searchErr != nil {
		return point.Point{}, searchErr
	}
	n := lo + i
	switch {
	case n > len(m.blocks):
		return point.Point{}, ErrNeverBlocked
	case n == 0:
		// nothing has fallen yet and the exit is already unreachable
		return point.Point{}, fmt.Errorf("ramrun: exit unreachable on an empty grid: %w", search.ErrNoPath)
	}
	return m.blocks[n-1], nil
}
