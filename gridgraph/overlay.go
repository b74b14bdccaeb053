package gridgraph

import "github.com/katalvlaran/aocgrid/point"

// Overlay is a transient per-run flag layer over a Grid (energized,
// visited, …). The terrain is never touched, so one read-only Grid can
// back many overlays evaluated in parallel.
type Overlay struct {
	width, height int
	marks         []bool
	count         int
}

// NewOverlay allocates an empty overlay sized to g.
func (g *Grid) NewOverlay() *Overlay {
	return &Overlay{width: g.Width, height: g.Height, marks: make([]bool, len(g.cells))}
}

// Mark flags p and reports whether it was newly flagged.
// Points outside the grid are ignored.
func (o *Overlay) Mark(p point.Point) bool {
	if p.X < 0 || p.X >= o.width || p.Y < 0 || p.Y >= o.height {
		return false
	}
	i := p.Y*o.width + p.X
	if o.marks[i] {
		return false
	}
	o.marks[i] = true
	o.count++
	return true
}

// Marked reports whether p is flagged.
func (o *Overlay) Marked(p point.Point) bool {
	if p.X < 0 || p.X >= o.width || p.Y < 0 || p.Y >= o.height {
		return false
	}
	return o.marks[p.Y*o.width+p.X]
}

// Count returns the number of flagged cells.
func (o *Overlay) Count() int { return o.count }

// Reset clears every flag, keeping the backing storage.
func (o *Overlay) Reset() {
	clear(o.marks)
	o.count = 0
}
