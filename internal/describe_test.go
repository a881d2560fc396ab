package internal

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	g := NewGraphFromSegments(LoadFixture("l_shape").Segments(), nil)
	g.Triangulate()

	description := g.DescribeEdge(0)
	assert.Contains(t, description, "#0 (0, 0) -> (0, 2)")
	// Names are stable for the life of the graph
	assert.Equal(t, description, g.DescribeEdge(0))

	outline := g.DescribeOutline(0)
	assert.Contains(t, outline, "6 edges")
	assert.Contains(t, outline, "concave")

	dump := g.Dump()
	lines := strings.Split(strings.TrimSpace(dump), "\n")
	// One outline, its six edges and both halves of the split
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "Outline "))
	assert.True(t, strings.HasPrefix(lines[7], "Split "))
}

func TestLogRefs(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	g := NewGraphFromSegments(unitSquare.Segments(), logger)
	g.TraceAll()

	logger.Info("refs", "edge", g.edgeRef(1), "none", g.edgeRef(NoEdge), "outline", g.outlineRef(0))
	output := logs.String()
	assert.Contains(t, output, "edge.index=1")
	assert.Contains(t, output, "edge.from=\"(0, 1)\"")
	assert.Contains(t, output, "none=Ø")
	assert.Contains(t, output, "outline.clockwise=true")
	assert.Contains(t, output, "outline.edges=4")
}
