package reindeer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/point"
	"github.com/katalvlaran/aocgrid/puzzles/reindeer"
	"github.com/katalvlaran/aocgrid/search"
)

const small = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

const large = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`

func TestMaze(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		cost  int64
		tiles int
	}{
		{"small", small, 7036, 45},
		{"large", large, 11048, 64},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := reindeer.Parse(tc.text)
			require.NoError(t, err)

			cost, err := m.MinCost()
			require.NoError(t, err)
			assert.Equal(t, tc.cost, cost)

			tiles, err := m.OptimalTiles()
			require.NoError(t, err)
			assert.Equal(t, tc.tiles, tiles.Size())
			assert.True(t, tiles.Has(point.Pt(1, strings.Count(tc.text, "\n")-1)), "start tile")
		})
	}
}

func TestMaze_Straight(t *testing.T) {
	m, err := reindeer.Parse("######\n#S..E#\n######\n")
	require.NoError(t, err)
	cost, err := m.MinCost()
	require.NoError(t, err)
	assert.EqualValues(t, 3, cost)

	n, err := m.CountOptimalTiles()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

// TestMaze_NoReverse: the exit lies West of a start facing East, so the
// reindeer has to turn twice and cannot simply reverse.
func TestMaze_NoReverse(t *testing.T) {
	m, err := reindeer.Parse("#####\n#E.S#\n#...#\n#####")
	require.NoError(t, err)
	cost, err := m.MinCost()
	require.NoError(t, err)
	// S(3,1) → south (3,2) → west (2,2) → west (1,2) → north (1,1):
	// four steps, three turns.
	assert.EqualValues(t, 4+3*reindeer.TurnCost, cost)
}

func TestMaze_Errors(t *testing.T) {
	_, err := reindeer.Parse("#####\n#S..#\n#####")
	assert.ErrorIs(t, err, gridgraph.ErrMissingMarker)

	_, err = reindeer.Parse("#####\n#SES#\n#####")
	assert.ErrorIs(t, err, gridgraph.ErrDuplicateMarker)

	m, err := reindeer.Parse("#####\n#S#E#\n#####")
	require.NoError(t, err)
	_, err = m.MinCost()
	assert.ErrorIs(t, err, search.ErrNoPath)
	_, err = m.CountOptimalTiles()
	assert.ErrorIs(t, err, search.ErrNoPath)
}
