package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/point"
)

func TestOverlay_MarkCountReset(t *testing.T) {
	g, err := gridgraph.Parse("..\n..")
	require.NoError(t, err)
	o := g.NewOverlay()

	assert.True(t, o.Mark(point.Pt(0, 0)))
	assert.False(t, o.Mark(point.Pt(0, 0)), "second mark is not new")
	assert.True(t, o.Mark(point.Pt(1, 1)))
	assert.False(t, o.Mark(point.Pt(5, 5)), "outside the grid is ignored")
	assert.Equal(t, 2, o.Count())
	assert.True(t, o.Marked(point.Pt(1, 1)))
	assert.False(t, o.Marked(point.Pt(1, 0)))
	assert.False(t, o.Marked(point.Pt(-1, 0)))

	o.Reset()
	assert.Zero(t, o.Count())
	assert.False(t, o.Marked(point.Pt(0, 0)))

	// Terrain is untouched by overlays.
	assert.Equal(t, "..\n..", g.String())
}
