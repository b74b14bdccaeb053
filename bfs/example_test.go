package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/aocgrid/bfs"
	"github.com/katalvlaran/aocgrid/point"
)

// ExampleWalk demonstrates layering on a 3×3 open grid.
func ExampleWalk() {
	res, err := bfs.Walk([]point.Point{point.Zero}, func(p point.Point) []point.Point {
		var out []point.Point
		for _, d := range point.Dirs4 {
			n := p.Add(d)
			if n.X >= 0 && n.X < 3 && n.Y >= 0 && n.Y < 3 {
				out = append(out, n)
			}
		}
		return out
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0,0 1,0 0,1 2,0 1,1 0,2 2,1 1,2 2,2]
}

// ExampleWalk_beam traces a beam trapped between four mirrors. The visited set
// is keyed on position and heading, so the walk stops after one lap.
func ExampleWalk_beam() {
	type beam struct{ pos, dir point.Point }
	// mirrors at the corners of a 2×2 square turn the beam clockwise
	turns := map[point.Point]bool{
		point.Pt(0, 0): true, point.Pt(1, 0): true,
		point.Pt(1, 1): true, point.Pt(0, 1): true,
	}
	res, _ := bfs.Walk([]beam{{point.Zero, point.East}}, func(b beam) []beam {
		n := b.pos.Add(b.dir)
		if !turns[n] {
			return nil
		}
		return []beam{{n, b.dir.RotateRight()}}
	})
	fmt.Println(len(res.Order))
	// Output: 4
}
