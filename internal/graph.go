package internal

import (
	"log/slog"

	"github.com/osuushi/sectorfill/internal/dbg"
)

// The graph that all phases of the triangulator share. It is built from
// scratch for every sector and thrown away afterwards; nothing in it survives
// a call.
type Graph struct {
	Vertices []Vertex
	Edges    []Edge
	Outlines []Outline

	vertexLookup map[Point]VertexIndex
	edgeLookup   map[edgeKey]EdgeIndex

	// Everything from this index on was created by splitting
	firstSplit EdgeIndex

	log   *slog.Logger
	names *dbg.Namer
}

type edgeKey struct {
	from, to VertexIndex
}

func NewGraph(logger *slog.Logger) *Graph {
	if logger == nil {
		logger = NopLogger()
	}
	return &Graph{
		vertexLookup: make(map[Point]VertexIndex),
		edgeLookup:   make(map[edgeKey]EdgeIndex),
		firstSplit:   NoEdge,
		log:          logger,
	}
}

// Build a graph out of a sector's boundary edges. Garbage is accepted as is;
// later phases deal with it.
func NewGraphFromSegments(segments []Segment, logger *slog.Logger) *Graph {
	g := NewGraph(logger)
	for _, segment := range segments {
		g.AddSegment(segment)
	}
	return g
}

// Get the vertex at the exact coordinates, creating it if needed.
func (g *Graph) AddVertex(x, y float64) VertexIndex {
	p := Point{x, y}
	if index, ok := g.vertexLookup[p]; ok {
		return index
	}
	index := VertexIndex(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vertex{Point: p, Usable: true})
	g.vertexLookup[p] = index
	return index
}

// Get the edge v1->v2, creating it if needed. The reverse direction is a
// different edge.
func (g *Graph) AddEdge(v1, v2 VertexIndex) EdgeIndex {
	g.checkVertex(v1)
	g.checkVertex(v2)

	key := edgeKey{v1, v2}
	if index, ok := g.edgeLookup[key]; ok {
		return index
	}
	index := EdgeIndex(len(g.Edges))
	g.Edges = append(g.Edges, Edge{From: v1, To: v2, Valid: true, sister: NoEdge})
	g.edgeLookup[key] = index
	g.Vertices[v1].Out = append(g.Vertices[v1].Out, index)
	g.Vertices[v2].In = append(g.Vertices[v2].In, index)
	return index
}

func (g *Graph) AddSegment(segment Segment) EdgeIndex {
	v1 := g.AddVertex(segment.Start.X, segment.Start.Y)
	v2 := g.AddVertex(segment.End.X, segment.End.Y)
	return g.AddEdge(v1, v2)
}

// Look up the edge v1->v2 without creating it
func (g *Graph) FindEdge(v1, v2 VertexIndex) (EdgeIndex, bool) {
	index, ok := g.edgeLookup[edgeKey{v1, v2}]
	return index, ok
}

// Insert a diagonal between two vertices as a pair of sister edges. If either
// direction already exists, deduplication would hand us back an edge that
// isn't ours to pair up, so the split is refused instead.
func (g *Graph) AddSplit(v1, v2 VertexIndex) (EdgeIndex, EdgeIndex, bool) {
	if v1 == v2 {
		return NoEdge, NoEdge, false
	}
	if _, ok := g.FindEdge(v1, v2); ok {
		return NoEdge, NoEdge, false
	}
	if _, ok := g.FindEdge(v2, v1); ok {
		return NoEdge, NoEdge, false
	}

	e1 := g.AddEdge(v1, v2)
	e2 := g.AddEdge(v2, v1)
	g.Edges[e1].sister = e2
	g.Edges[e2].sister = e1
	if g.firstSplit == NoEdge {
		g.firstSplit = e1
	}
	return e1, e2, true
}

// Flip a split on or off. Splits only ever change state together with their
// sister.
func (g *Graph) SetSplitValid(e EdgeIndex, valid bool) {
	edge := g.Edge(e)
	if !edge.HasSister() {
		fatalf("edge %d is not a split", e)
	}
	sister := g.Edge(edge.sister)
	if sister.sister != e {
		fatalf("split %d and %d are not mutual sisters", e, edge.sister)
	}
	edge.Valid = valid
	sister.Valid = valid
}

// All split edges, in creation order. Each pair shows up twice, once from each
// side.
func (g *Graph) Splits() []EdgeIndex {
	if g.firstSplit == NoEdge {
		return nil
	}
	var splits []EdgeIndex
	for e := g.firstSplit; int(e) < len(g.Edges); e++ {
		if g.Edges[e].HasSister() {
			splits = append(splits, e)
		}
	}
	return splits
}

func (g *Graph) Edge(e EdgeIndex) *Edge {
	if e < 0 || int(e) >= len(g.Edges) {
		fatalf("edge index %d out of range [0, %d)", e, len(g.Edges))
	}
	return &g.Edges[e]
}

func (g *Graph) Vertex(v VertexIndex) *Vertex {
	g.checkVertex(v)
	return &g.Vertices[v]
}

func (g *Graph) checkVertex(v VertexIndex) {
	if v < 0 || int(v) >= len(g.Vertices) {
		fatalf("vertex index %d out of range [0, %d)", v, len(g.Vertices))
	}
}

// The two endpoints of an edge as points
func (g *Graph) EdgePoints(e EdgeIndex) (Point, Point) {
	edge := g.Edge(e)
	return g.Vertices[edge.From].Point, g.Vertices[edge.To].Point
}

// Is other the same segment as e, walked the other way?
func (g *Graph) isReverse(e, other EdgeIndex) bool {
	a, b := &g.Edges[e], &g.Edges[other]
	return a.From == b.To && a.To == b.From
}
