package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aocgrid/gridgraph"
)

// ExampleParse locates required markers and turns them into open floor.
func ExampleParse() {
	g, err := gridgraph.Parse("#####\n#S.E#\n#####",
		gridgraph.WithRequiredMarkers('S', 'E'),
		gridgraph.WithMarkerFill('.'),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, _ := g.Marker('S')
	e, _ := g.Marker('E')
	fmt.Println(g.Width, g.Height, s, e)
	fmt.Println(g)

	// Output:
	// 5 3 1,1 3,1
	// #####
	// #...#
	// #####
}

// ExampleGrid_Regions demonstrates how to identify contiguous open areas.
func ExampleGrid_Regions() {
	g, _ := gridgraph.Parse("..#.\n..#.\n###.")
	regions := g.Regions(func(c byte) bool { return c == '.' })
	for i, r := range regions {
		fmt.Printf("region %d: %v\n", i, r)
	}

	// Output:
	// region 0: [0,0 1,0 0,1 1,1]
	// region 1: [3,0 3,1 3,2]
}
