package springs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/parallel"
	"github.com/katalvlaran/aocgrid/puzzles/springs"
)

const records = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
`

func TestCount(t *testing.T) {
	recs, err := springs.Parse(records)
	require.NoError(t, err)
	require.Len(t, recs, 6)

	folded := []int{1, 4, 1, 1, 4, 10}
	unfolded := []int{1, 16384, 1, 16, 2500, 506250}
	for i, r := range recs {
		assert.Equal(t, folded[i], r.Arrangements(), "record %d", i)
		assert.Equal(t, unfolded[i], r.Unfold(5).Arrangements(), "unfolded record %d", i)
	}
}

func TestTotal(t *testing.T) {
	recs, err := springs.Parse(records)
	require.NoError(t, err)

	got, err := springs.Total(context.Background(), recs, 1)
	require.NoError(t, err)
	assert.Equal(t, 21, got)

	got, err = springs.Total(context.Background(), recs, 5, parallel.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, 525152, got)

	_, err = springs.Total(context.Background(), recs, 0)
	assert.Error(t, err)
}

func TestCount_Edges(t *testing.T) {
	tests := []struct {
		springs string
		groups  []int
		want    int
	}{
		{"", nil, 1},
		{"...", nil, 1},
		{"#", nil, 0},
		{"???", nil, 1},
		{"???", []int{1}, 3},
		{"???", []int{1, 1}, 1},
		{"#.#", []int{2}, 0},
		{"##", []int{1}, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, springs.Count(tc.springs, tc.groups), "%q %v", tc.springs, tc.groups)
	}
}

func TestUnfold(t *testing.T) {
	r := springs.Record{Springs: ".#", Groups: []int{1}}.Unfold(5)
	assert.Equal(t, ".#?.#?.#?.#?.#", r.Springs)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, r.Groups)
}

func TestParse_Errors(t *testing.T) {
	for _, bad := range []string{"???", "?x? 1", "??? 1,a", "??? 0"} {
		_, err := springs.Parse(bad)
		assert.ErrorIs(t, err, gridgraph.ErrMalformedInput, bad)
	}
}
