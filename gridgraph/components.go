package gridgraph

import "github.com/katalvlaran/aocgrid/point"

// Regions finds all contiguous regions of cells for which open returns
// true, according to g.Conn connectivity. Regions are reported in
// row-major order of their first cell; cells inside a region are in BFS
// order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(open func(byte) bool) [][]point.Point {
	seen := make([]bool, len(g.cells))
	var regions [][]point.Point

	for i0, c := range g.cells {
		if seen[i0] || !open(c) {
			continue
		}
		// BFS to collect the region
		queue := []point.Point{g.Coordinate(i0)}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(queue[qi]) {
				if !g.InBounds(v) {
					continue
				}
				vi := g.index(v.X, v.Y)
				if seen[vi] || !open(g.cells[vi]) {
					continue
				}
				seen[vi] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// RegionOf returns a lookup from each open cell to its region number in
// the slice Regions returns.
func RegionOf(regions [][]point.Point) map[point.Point]int {
	out := make(map[point.Point]int)
	for i, r := range regions {
		for _, p := range r {
			out[p] = i
		}
	}
	return out
}
