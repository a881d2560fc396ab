package internal

import (
	"math"

	"github.com/peterstace/simplefeatures/rtree"
)

// Tracing faces out of the edge soup. Every phase walks the graph the same
// way: from the end of the current edge, take the outgoing edge with the
// tightest turn (the smallest angle on the right hand side, where the face
// interior is). On a planar graph this walks exactly one face. What differs
// between phases is which edges are allowed, and whether a turn of more than
// 180° ends the walk.

// Guards against walking forever around a malformed graph. Well formed
// sectors never come close.
const MaxTraceSteps = 100000

type walkRules struct {
	skipConsumed  bool
	skipInOutline bool
	// Refuse to turn left by more than 180°
	convexOnly bool
	// The edge the walk started from is always allowed, since taking it closes
	// the loop. NoEdge if there's no such edge.
	start EdgeIndex
}

// Find the next edge after e, along with the angle of the turn onto it. The
// reverse of e, zero length edges and invalid edges are never taken. Ties go
// to the edge that comes first in the vertex's outgoing list, which is the
// lowest edge index.
func (g *Graph) nextEdge(e EdgeIndex, rules walkRules) (EdgeIndex, float64) {
	edge := g.Edge(e)
	prev := g.Vertices[edge.From].Point
	v := &g.Vertices[edge.To]

	next := NoEdge
	minAngle := 2 * math.Pi
	for _, candidate := range v.Out {
		out := &g.Edges[candidate]
		if !out.Valid || out.From == out.To || g.isReverse(e, candidate) {
			continue
		}
		if candidate != rules.start {
			if rules.skipConsumed && out.Consumed {
				continue
			}
			if rules.skipInOutline && out.InOutline {
				continue
			}
		}

		angle := TurnAngle(prev, v.Point, g.Vertices[out.To].Point)
		if angle < minAngle {
			minAngle = angle
			next = candidate
		}
	}

	if rules.convexOnly && !IsConvexTurn(minAngle) {
		return NoEdge, minAngle
	}
	return next, minAngle
}

// Trace the face to the right of start. On success, every edge of the outline
// is marked InOutline. On failure nothing is marked.
func (g *Graph) TraceOutline(start EdgeIndex) (Outline, bool) {
	outline := Outline{BBox: EmptyBBox(), Convex: true}
	rules := walkRules{skipInOutline: true, start: start}

	// Running shoelace sum, which gives us the winding
	var shoelace float64
	e := start
	for step := 0; ; step++ {
		if step >= MaxTraceSteps {
			g.log.Warn("outline trace exceeded step bound",
				"start", g.edgeRef(start), "steps", step)
			g.rollbackOutline(outline.Edges)
			return Outline{}, false
		}

		from, to := g.EdgePoints(e)
		outline.Edges = append(outline.Edges, e)
		if e == start {
			outline.BBox.Extend(from)
		} else {
			// The start edge is only marked once the loop closes, so that it stays
			// available to close it
			g.Edges[e].InOutline = true
		}
		outline.BBox.Extend(to)
		shoelace += from.X*to.Y - to.X*from.Y

		next, angle := g.nextEdge(e, rules)
		if next == NoEdge {
			g.log.Debug("outline did not close",
				"start", g.edgeRef(start), "deadEnd", g.edgeRef(e))
			g.rollbackOutline(outline.Edges)
			return Outline{}, false
		}

		// A concave face is still one face. Keep going so that it gets traced in
		// full, and let the splitter deal with it.
		if !IsConvexTurn(angle) {
			outline.Convex = false
		}

		if next == start {
			break
		}
		e = next
	}

	g.Edges[start].InOutline = true
	outline.Clockwise = shoelace < 0
	return outline, true
}

func (g *Graph) rollbackOutline(edges []EdgeIndex) {
	for _, e := range edges {
		g.Edges[e].InOutline = false
	}
}

// Trace every face we can find. Edges that don't end up in any outline are
// spurious (dangling, one sided, zero length) and get invalidated.
func (g *Graph) TraceAll() {
	for i := range g.Edges {
		edge := &g.Edges[i]
		if edge.InOutline || !edge.Valid || edge.From == edge.To {
			continue
		}
		if outline, ok := g.TraceOutline(EdgeIndex(i)); ok {
			g.Outlines = append(g.Outlines, outline)
		}
	}

	invalidated := 0
	for i := range g.Edges {
		if !g.Edges[i].InOutline && g.Edges[i].Valid {
			g.Edges[i].Valid = false
			invalidated++
		}
	}
	g.log.Debug("traced outlines",
		"outlines", len(g.Outlines), "edges", len(g.Edges), "invalidated", invalidated)
}

// Look for outlines that can be settled without any splitting. An outline
// whose bounding box overlaps no other outline can't contain or be contained
// by anything:
//
//   - A convex clockwise outline is already a finished piece. Its edges are
//     consumed so the splitter leaves it alone, and its plain vertices are
//     taken out of the running as split targets.
//   - A counterclockwise outline is a hole with nothing around it, which only
//     happens in broken sectors. It's thrown away.
func (g *Graph) PruneIsolated() {
	if len(g.Outlines) == 0 {
		return
	}

	items := make([]rtree.BulkItem, len(g.Outlines))
	for i, outline := range g.Outlines {
		items[i] = rtree.BulkItem{Box: outline.BBox.rtreeBox(), RecordID: i}
	}
	tree := rtree.BulkLoad(items)

	for i := range g.Outlines {
		outline := &g.Outlines[i]
		separate := true
		tree.RangeSearch(outline.BBox.rtreeBox(), func(other int) error {
			if other != i {
				separate = false
				return rtree.Stop
			}
			return nil
		})
		if !separate {
			continue
		}

		switch {
		case outline.Clockwise && outline.Convex:
			for _, e := range outline.Edges {
				g.Edges[e].Consumed = true
				v := &g.Vertices[g.Edges[e].From]
				if len(v.In) == 1 && len(v.Out) == 1 {
					v.Usable = false
				}
			}
		case !outline.Clockwise:
			g.log.Debug("dropping hole with no outer outline", "outline", g.outlineRef(i))
			for _, e := range outline.Edges {
				g.Edges[e].Valid = false
			}
		}
	}
}

func (b BBox) rtreeBox() rtree.Box {
	return rtree.Box{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}
