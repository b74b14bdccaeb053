package bfs_test

import (
	"testing"

	"github.com/katalvlaran/aocgrid/bfs"
	"github.com/katalvlaran/aocgrid/point"
)

// BenchmarkWalk_Chain measures a walk over a linear chain of N states.
func BenchmarkWalk_Chain(b *testing.B) {
	const N = 10000
	next := chain(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk([]int{0}, next)
	}
}

// BenchmarkWalk_OpenGrid floods a 200×200 open grid.
func BenchmarkWalk_OpenGrid(b *testing.B) {
	const size = 200
	next := func(p point.Point) []point.Point {
		out := make([]point.Point, 0, 4)
		for _, d := range point.Dirs4 {
			n := p.Add(d)
			if n.X >= 0 && n.X < size && n.Y >= 0 && n.Y < size {
				out = append(out, n)
			}
		}
		return out
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk([]point.Point{point.Zero}, next)
	}
}
