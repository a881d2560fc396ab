package internal

// Once splitting is done, every face left in the graph should be convex. Each
// one is walked once more to collect its vertices, then expanded into a
// triangle fan.

// Collect the vertex loop of every convex face. Faces that fail to close are
// skipped; that's the price of bad geometry, not an error.
func (g *Graph) BuildConvexPolygons() [][]VertexIndex {
	// Isolated convex outlines were consumed to keep the splitter away from
	// them. They still need to be built.
	for i := range g.Edges {
		g.Edges[i].Consumed = false
	}

	var polygons [][]VertexIndex
	for i := range g.Edges {
		edge := &g.Edges[i]
		if !edge.Valid || edge.Consumed {
			continue
		}
		if loop := g.buildConvexLoop(EdgeIndex(i)); loop != nil {
			polygons = append(polygons, loop)
		}
	}
	return polygons
}

// Walk the convex face to the right of start, consuming its edges. Returns the
// loop's vertices in walk order, or nil if the walk doesn't close. Edges of a
// failed walk stay consumed, so we don't retry the same broken face from each
// of its edges.
func (g *Graph) buildConvexLoop(start EdgeIndex) []VertexIndex {
	rules := walkRules{skipConsumed: true, convexOnly: true, start: start}
	var loop []VertexIndex
	e := start
	for step := 0; step < MaxTraceSteps; step++ {
		g.Edges[e].Consumed = true
		loop = append(loop, g.Edges[e].From)

		next, _ := g.nextEdge(e, rules)
		if next == NoEdge {
			g.log.Debug("convex face did not close",
				"start", g.edgeRef(start), "deadEnd", g.edgeRef(e))
			return nil
		}
		if next == start {
			return loop
		}
		e = next
	}

	g.log.Warn("convex face walk exceeded step bound", "start", g.edgeRef(start))
	return nil
}

// Expand a convex loop into a fan around its first vertex: [0,1,2], [0,2,3],
// and so on. The triangles keep the loop's winding.
func (g *Graph) FanTriangulate(loop []VertexIndex) []Point {
	if len(loop) < 3 {
		return nil
	}
	points := make([]Point, 0, 3*(len(loop)-2))
	first := g.Vertices[loop[0]].Point
	for i := 1; i+1 < len(loop); i++ {
		points = append(points,
			first,
			g.Vertices[loop[i]].Point,
			g.Vertices[loop[i+1]].Point,
		)
	}
	return points
}
