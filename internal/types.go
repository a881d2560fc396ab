package internal

import "math"

type Point struct {
	X float64
	Y float64
}

// A directed boundary edge as the sector hands it over. The face interior is
// on the right of Start->End.
type Segment struct {
	Start Point
	End   Point
}

// Vertices and edges live in flat arenas owned by one Graph, and refer to each
// other by index. Nothing is ever deleted from an arena; removal is expressed
// with the usable/valid flags instead.
type VertexIndex int
type EdgeIndex int

// Sentinel for "no edge", used for the sister of a boundary edge and for
// failed next-edge searches.
const NoEdge = EdgeIndex(-1)

type Vertex struct {
	Point
	In, Out []EdgeIndex
	// Usable vertices may be the far end of a diagonal split
	Usable bool
	// Scratch space for the splitter. Only meaningful during one split.
	Distance float64
}

type Edge struct {
	From, To VertexIndex
	// Still part of the graph
	Valid bool
	// Already used to build a convex piece (or, before building, belongs to an
	// isolated convex outline that needs no splitting)
	Consumed bool
	// Claimed by a traced outline
	InOutline bool

	sister EdgeIndex
}

// The reverse edge created alongside a diagonal split. Boundary edges have no
// sister.
func (e *Edge) Sister() EdgeIndex {
	return e.sister
}

func (e *Edge) HasSister() bool {
	return e.sister != NoEdge
}

type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

func (b *BBox) Extend(p Point) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// Inclusive overlap; boxes that merely touch overlap.
func (b BBox) Overlaps(other BBox) bool {
	return !(other.MinX > b.MaxX || other.MaxX < b.MinX ||
		other.MinY > b.MaxY || other.MaxY < b.MinY)
}

// A closed walk through the graph. Edges are in walk order, so
// Edges[i].To == Edges[i+1].From, wrapping around.
type Outline struct {
	Edges []EdgeIndex
	BBox  BBox
	// Outer boundaries wind clockwise, holes counterclockwise
	Clockwise bool
	// True only if every turn along the walk is at most 180°
	Convex bool
}
