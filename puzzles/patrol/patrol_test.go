package patrol_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/parallel"
	"github.com/katalvlaran/aocgrid/point"
	"github.com/katalvlaran/aocgrid/puzzles/patrol"
)

const lab = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...`

func mustParse(t *testing.T, text string) *patrol.Lab {
	t.Helper()
	l, err := patrol.Parse(text)
	require.NoError(t, err)
	return l
}

func TestVisited(t *testing.T) {
	tiles, err := mustParse(t, lab).Visited()
	require.NoError(t, err)
	assert.Equal(t, 41, tiles.Size())
	assert.True(t, tiles.Has(point.Pt(4, 6)))
	assert.True(t, tiles.Has(point.Pt(7, 9)), "exit tile")
}

func TestLoops(t *testing.T) {
	l := mustParse(t, lab)
	assert.True(t, l.Loops(point.Pt(3, 6)))
	assert.True(t, l.Loops(point.Pt(7, 9)))
	assert.False(t, l.Loops(point.Pt(0, 0)))
}

func TestLoopingObstacles(t *testing.T) {
	l := mustParse(t, lab)
	for _, w := range []int{1, 4} {
		n, err := l.LoopingObstacles(context.Background(), parallel.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, 6, n, "workers=%d", w)
	}
}

func TestVisited_AlreadyLooping(t *testing.T) {
	l := mustParse(t, ".#..\n.^.#\n#...\n..#.")
	_, err := l.Visited()
	assert.ErrorIs(t, err, patrol.ErrLoops)
	_, err = l.LoopingObstacles(context.Background())
	assert.ErrorIs(t, err, patrol.ErrLoops)
}

func TestParse_Errors(t *testing.T) {
	_, err := patrol.Parse("....\n....")
	assert.ErrorIs(t, err, gridgraph.ErrMissingMarker)
	_, err = patrol.Parse("^..^")
	assert.ErrorIs(t, err, gridgraph.ErrDuplicateMarker)
}

func TestLoopingObstacles_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mustParse(t, lab).LoopingObstacles(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
