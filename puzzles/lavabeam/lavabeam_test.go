package lavabeam_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/parallel"
	"github.com/katalvlaran/aocgrid/point"
	"github.com/katalvlaran/aocgrid/puzzles/lavabeam"
)

const layout = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`

func mustParse(t *testing.T, text string) *lavabeam.Contraption {
	t.Helper()
	c, err := lavabeam.Parse(text)
	require.NoError(t, err)
	return c
}

func TestEnergize(t *testing.T) {
	c := mustParse(t, layout)
	n, err := c.Energize(point.Zero, point.East)
	require.NoError(t, err)
	assert.Equal(t, 46, n)
}

func TestMaxEnergized(t *testing.T) {
	c := mustParse(t, layout)
	for _, w := range []int{1, 3, 8} {
		n, err := c.MaxEnergized(context.Background(), parallel.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, 51, n, "workers=%d", w)
	}
}

func TestEntries(t *testing.T) {
	c := mustParse(t, layout)
	entries := c.Entries()
	assert.Len(t, entries, 40)
	assert.Contains(t, entries, lavabeam.Beam{Pos: point.Pt(3, 0), Dir: point.South})
	assert.Contains(t, entries, lavabeam.Beam{Pos: point.Pt(9, 4), Dir: point.West})
}

// TestEnergizeOn_ResetIsIdempotent reuses one overlay across runs.
func TestEnergizeOn_ResetIsIdempotent(t *testing.T) {
	c := mustParse(t, layout)
	g, err := gridgraph.Parse(layout)
	require.NoError(t, err)
	ov := g.NewOverlay()

	first, err := c.EnergizeOn(context.Background(), ov, point.Pt(3, 0), point.South)
	require.NoError(t, err)
	_, err = c.EnergizeOn(context.Background(), ov, point.Zero, point.East)
	require.NoError(t, err)
	again, err := c.EnergizeOn(context.Background(), ov, point.Pt(3, 0), point.South)
	require.NoError(t, err)
	assert.Equal(t, 51, first)
	assert.Equal(t, first, again)
}

// TestEnergize_Loop: four mirrors trap the beam in a square; the walk ends.
func TestEnergize_Loop(t *testing.T) {
	c := mustParse(t, "/.\\\n...\n\\./")
	n, err := c.Energize(point.Pt(1, 0), point.East)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestDeflections(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		dir    point.Point
		want   int
	}{
		{"empty row", "...", point.East, 3},
		{"splitter pointy end", ".-.", point.East, 3},
		{"splitter flat side", ".|.\n...\n...", point.East, 4},
		{"slash turns north", "../\n...", point.East, 3},
		{"backslash turns south", "..\\\n...", point.East, 4},
		{"leave immediately", "|..", point.East, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := mustParse(t, tc.layout).Energize(point.Zero, tc.dir)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestMaxEnergized_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mustParse(t, layout).MaxEnergized(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
