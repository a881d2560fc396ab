package internal

import (
	"github.com/peterstace/simplefeatures/rtree"
)

// Answers "would a diagonal between these two vertices cross anything?" during
// one round of splitting. The edges that existed at the start of the round go
// into an R-tree; diagonals added during the round are few, and are just kept
// in a list.
type crossingIndex struct {
	g      *Graph
	tree   *rtree.RTree
	recent []EdgeIndex
}

func (g *Graph) newCrossingIndex() *crossingIndex {
	var items []rtree.BulkItem
	for i, edge := range g.Edges {
		if !edge.Valid {
			continue
		}
		from, to := g.EdgePoints(EdgeIndex(i))
		items = append(items, rtree.BulkItem{Box: segmentBox(from, to), RecordID: i})
	}

	index := &crossingIndex{g: g}
	if len(items) > 0 {
		index.tree = rtree.BulkLoad(items)
	}
	return index
}

func (c *crossingIndex) add(e EdgeIndex) {
	c.recent = append(c.recent, e)
}

// Check if the segment a-b crosses or touches any valid edge. Edges that meet
// a or b are ignored, since they can only touch the diagonal at its own ends.
func (c *crossingIndex) crosses(a, b VertexIndex) bool {
	pa := c.g.Vertices[a].Point
	pb := c.g.Vertices[b].Point

	hit := func(e EdgeIndex) bool {
		edge := &c.g.Edges[e]
		if !edge.Valid {
			return false
		}
		if edge.From == a || edge.To == a || edge.From == b || edge.To == b {
			return false
		}
		q1, q2 := c.g.EdgePoints(e)
		return SegmentsIntersect(pa, pb, q1, q2)
	}

	crossed := false
	if c.tree != nil {
		c.tree.RangeSearch(segmentBox(pa, pb), func(recordID int) error {
			if hit(EdgeIndex(recordID)) {
				crossed = true
				return rtree.Stop
			}
			return nil
		})
	}
	if crossed {
		return true
	}

	for _, e := range c.recent {
		if hit(e) {
			return true
		}
	}
	return false
}

func segmentBox(a, b Point) rtree.Box {
	box := EmptyBBox()
	box.Extend(a)
	box.Extend(b)
	return box.rtreeBox()
}
