package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConvexPolygons(t *testing.T) {
	g := tracedGraph(LoadFixture("l_shape"))
	_, resolved := g.SplitConcavities()
	require.True(t, resolved)

	polygons := g.BuildConvexPolygons()
	assert.Equal(t, [][]VertexIndex{{0, 1, 2, 3}, {3, 4, 5, 0}}, polygons)
	for i, edge := range g.Edges {
		assert.True(t, edge.Consumed, "edge %d", i)
	}
}

func TestBuildConvexPolygons_IsolatedOutlines(t *testing.T) {
	// Isolated outlines come out of pruning already consumed, and still have to
	// be built
	other := Ring{{5, 5}, {5, 6}, {6, 6}, {6, 5}}
	g := tracedGraph(RingList{unitSquare, other})
	assert.Len(t, g.BuildConvexPolygons(), 2)
}

func TestBuildConvexPolygons_SkipsConcave(t *testing.T) {
	g := tracedGraph(LoadFixture("l_shape"))
	// Without splitting, the walk can't get around the inner corner
	assert.Empty(t, g.BuildConvexPolygons())
}

func TestFanTriangulate(t *testing.T) {
	g := NewGraph(nil)
	var loop []VertexIndex
	for _, p := range []Point{{0, 0}, {0, 2}, {1, 3}, {2, 2}, {2, 0}} {
		loop = append(loop, g.AddVertex(p.X, p.Y))
	}

	assert.Equal(t, []Point{
		{0, 0}, {0, 2}, {1, 3},
		{0, 0}, {1, 3}, {2, 2},
		{0, 0}, {2, 2}, {2, 0},
	}, g.FanTriangulate(loop))

	assert.Len(t, g.FanTriangulate(loop[:3]), 3)
	assert.Empty(t, g.FanTriangulate(loop[:2]))
	assert.Empty(t, g.FanTriangulate(nil))
}
