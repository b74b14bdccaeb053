package crucible_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/point"
	"github.com/katalvlaran/aocgrid/puzzles/crucible"
	"github.com/katalvlaran/aocgrid/search"
)

const city = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

const corridor = `111111111111
999999999991
999999999991
999999999991
999999999991`

func TestMinHeatLoss(t *testing.T) {
	tests := []struct {
		name string
		text string
		lim  crucible.Limits
		want int64
	}{
		{"normal", city, crucible.Normal, 102},
		{"ultra", city, crucible.Ultra, 94},
		{"ultra corridor", corridor, crucible.Ultra, 71},
		{"single block", "7", crucible.Normal, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := crucible.Parse(tc.text)
			require.NoError(t, err)
			got, err := c.MinHeatLoss(tc.lim)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestRoute checks run limits along the returned route.
func TestRoute(t *testing.T) {
	c, err := crucible.Parse(city)
	require.NoError(t, err)
	for _, lim := range []crucible.Limits{crucible.Normal, crucible.Ultra} {
		route, err := c.Route(lim)
		require.NoError(t, err)
		require.Equal(t, point.Zero, route[0])
		require.Equal(t, point.Pt(12, 12), route[len(route)-1])

		run, dir := 0, point.Zero
		for i := 1; i < len(route); i++ {
			d := route[i].Sub(route[i-1])
			require.Equal(t, 1, d.Manhattan(point.Zero), "step %d", i)
			if d == dir {
				run++
			} else {
				if dir != point.Zero {
					assert.GreaterOrEqual(t, run, lim.MinRun)
				}
				dir, run = d, 1
			}
			assert.LessOrEqual(t, run, lim.MaxRun)
		}
		assert.GreaterOrEqual(t, run, lim.MinRun)
	}
}

// TestMinHeatLoss_Unreachable: a 1×5 strip cannot finish an ultra run of 4.
func TestMinHeatLoss_Unreachable(t *testing.T) {
	c, err := crucible.Parse("11111\n11111")
	require.NoError(t, err)
	_, err = c.MinHeatLoss(crucible.Ultra)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestErrors(t *testing.T) {
	_, err := crucible.Parse("12\n3x")
	assert.ErrorIs(t, err, gridgraph.ErrMalformedInput)

	c, err := crucible.Parse("12\n34")
	require.NoError(t, err)
	_, err = c.MinHeatLoss(crucible.Limits{MinRun: 3, MaxRun: 2})
	assert.ErrorIs(t, err, crucible.ErrBadLimits)
	_, err = c.Route(crucible.Limits{})
	assert.ErrorIs(t, err, crucible.ErrBadLimits)
}
