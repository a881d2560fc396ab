package internal

import (
	"math"
	"sort"
)

// Splitting concave faces into convex ones by adding diagonals.
//
// An edge is concave when the face it borders can't continue from its end
// without turning left by more than 180°. Each concave edge gets a diagonal
// from its end vertex to the nearest vertex in front of it that can be reached
// without crossing anything. The new diagonal is a convex continuation for the
// edge, so the concavity is gone. Repeat until nothing is concave.

// Termination guard for the split loop. Valid sectors settle in a handful of
// rounds.
const MaxSplitRounds = 100

// Find every valid edge with no convex continuation. Consumed edges belong to
// isolated convex outlines, which need no splitting.
func (g *Graph) DetectConcavity() []EdgeIndex {
	var concave []EdgeIndex
	for i := range g.Edges {
		edge := &g.Edges[i]
		if !edge.Valid || edge.Consumed {
			continue
		}
		if !g.hasConvexContinuation(EdgeIndex(i)) {
			concave = append(concave, EdgeIndex(i))
		}
	}
	return concave
}

// A vertex whose edges were all thrown away would make a diagonal into a dead
// end.
func (g *Graph) isConnected(v VertexIndex) bool {
	vertex := &g.Vertices[v]
	for _, e := range vertex.In {
		if g.Edges[e].Valid {
			return true
		}
	}
	for _, e := range vertex.Out {
		if g.Edges[e].Valid {
			return true
		}
	}
	return false
}

func (g *Graph) hasConvexContinuation(e EdgeIndex) bool {
	next, _ := g.nextEdge(e, walkRules{convexOnly: true, start: NoEdge})
	return next != NoEdge
}

// Add a diagonal that fixes the concavity at the end of e. Candidates are the
// usable vertices strictly in front of e, nearest to e's end vertex first. The
// first one whose diagonal crosses nothing wins. Returns false if there is no
// such vertex, which leaves the face concave.
func (g *Graph) SplitFromEdge(e EdgeIndex, crossings *crossingIndex) bool {
	edge := g.Edge(e)
	v1, v2 := edge.From, edge.To
	p1 := g.Vertices[v1].Point
	p2 := g.Vertices[v2].Point

	var candidates []VertexIndex
	for i := range g.Vertices {
		v := &g.Vertices[i]
		if v.Usable && g.isConnected(VertexIndex(i)) && LineSide(v.Point, p1, p2) > 0 {
			v.Distance = p2.Distance(v.Point)
			candidates = append(candidates, VertexIndex(i))
		} else {
			v.Distance = math.Inf(1)
		}
	}
	if len(candidates) == 0 {
		// Nothing in front of the edge at all. The outline is facing the wrong
		// way, or the sector isn't closed.
		return false
	}

	// Stable, so equally distant vertices are tried in index order
	sort.SliceStable(candidates, func(i, j int) bool {
		return g.Vertices[candidates[i]].Distance < g.Vertices[candidates[j]].Distance
	})

	for _, candidate := range candidates {
		if crossings.crosses(v2, candidate) {
			continue
		}
		s1, s2, ok := g.AddSplit(v2, candidate)
		if !ok {
			// Already connected
			continue
		}
		crossings.add(s1)
		crossings.add(s2)
		return true
	}
	return false
}

// Split until no concave edges are left. Returns the number of rounds it took,
// and false if concavities remain.
func (g *Graph) SplitConcavities() (int, bool) {
	concave := g.DetectConcavity()
	rounds := 0
	for len(concave) > 0 {
		if rounds >= MaxSplitRounds {
			g.log.Warn("splitting exceeded round bound",
				"rounds", rounds, "concave", len(concave))
			return rounds, false
		}
		rounds++

		crossings := g.newCrossingIndex()
		added := 0
		for _, e := range concave {
			// An earlier split this round may already have fixed this one
			if g.hasConvexContinuation(e) {
				continue
			}
			if g.SplitFromEdge(e, crossings) {
				added++
			} else {
				g.log.Debug("no split for concave edge", "edge", g.edgeRef(e))
			}
		}

		concave = g.DetectConcavity()
		if added == 0 {
			// The graph didn't change, so another round would find the same
			// concavities and fail the same way.
			if len(concave) > 0 {
				g.log.Debug("concave edges left unsplit", "concave", len(concave))
			}
			break
		}
	}
	return rounds, len(concave) == 0
}

// Splitting one concave edge at a time tends to add more diagonals than
// needed. Try taking each one out again: if the merged face is still convex,
// it stays out. Returns how many pairs were removed.
func (g *Graph) PruneRedundantSplits() int {
	pruned := 0
	for _, e := range g.Splits() {
		if !g.Edges[e].Valid {
			continue
		}

		g.SetSplitValid(e, false)
		// With the split gone, its end vertex continues into the merged face
		next, _ := g.nextEdge(e, walkRules{convexOnly: true, start: NoEdge})
		if next != NoEdge && g.closesConvex(next) {
			pruned++
			continue
		}
		g.SetSplitValid(e, true)
	}
	return pruned
}

// Walk convex turns from start, and report whether we make it back to start.
// A simple loop can't be longer than the number of edges, so a walk that
// hasn't closed by then never will.
func (g *Graph) closesConvex(start EdgeIndex) bool {
	limit := min(MaxTraceSteps, len(g.Edges)+1)
	rules := walkRules{convexOnly: true, start: start}
	e := start
	for step := 0; step < limit; step++ {
		next, _ := g.nextEdge(e, rules)
		if next == NoEdge {
			return false
		}
		if next == start {
			return true
		}
		e = next
	}
	return false
}
