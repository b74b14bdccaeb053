package gridgraph_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/aocgrid/gridgraph"
)

// BenchmarkRegions measures Regions on a random 1000×1000 map with ~30% walls.
func BenchmarkRegions(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if rng.Intn(10) < 3 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	g, err := gridgraph.Parse(sb.String())
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions(open)
	}
}
