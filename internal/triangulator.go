package internal

import "log/slog"

// Counters from one triangulation. Handy for tests and for the debug log.
type Stats struct {
	Outlines     int
	SplitRounds  int
	Splits       int
	PrunedSplits int
	// Concave edges that no split could fix
	Unresolved int
	Polygons   int
	Triangles  int
}

// Turn a sector's boundary edges into a flat triangle buffer, three points per
// triangle. Every call gets its own graph, so concurrent calls are fine.
func Triangulate(segments []Segment, logger *slog.Logger) ([]Point, Stats) {
	return NewGraphFromSegments(segments, logger).Triangulate()
}

// Run every phase over the graph. A graph can only be triangulated once.
func (g *Graph) Triangulate() ([]Point, Stats) {
	var stats Stats

	g.TraceAll()
	stats.Outlines = len(g.Outlines)
	g.PruneIsolated()

	rounds, resolved := g.SplitConcavities()
	stats.SplitRounds = rounds
	if !resolved {
		stats.Unresolved = len(g.DetectConcavity())
	}
	stats.Splits = len(g.Splits()) / 2
	stats.PrunedSplits = g.PruneRedundantSplits()

	polygons := g.BuildConvexPolygons()
	var points []Point
	for _, loop := range polygons {
		points = append(points, g.FanTriangulate(loop)...)
	}
	stats.Polygons = len(polygons)
	stats.Triangles = len(points) / 3

	g.log.Debug("triangulated region",
		"outlines", stats.Outlines,
		"rounds", stats.SplitRounds,
		"splits", stats.Splits,
		"pruned", stats.PrunedSplits,
		"unresolved", stats.Unresolved,
		"polygons", stats.Polygons,
		"triangles", stats.Triangles,
	)
	return points, stats
}
