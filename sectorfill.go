// Triangulation of map sectors for rendering.
//
// A sector arrives as a soup of directed boundary edges, with the sector's
// interior on the right of each edge. This package traces the faces those
// edges bound, cuts concave faces into convex pieces, and hands back a flat
// buffer of triangles, three points each, ready for a renderer.
//
// Input doesn't have to be clean. Dangling edges, unclosed loops, holes with
// nothing around them and similar damage are dropped rather than reported, so
// a broken sector draws partially (or not at all) instead of failing.
package sectorfill

import (
	"log/slog"

	"github.com/osuushi/sectorfill/internal"
)

type Point = internal.Point
type Segment = internal.Segment
type Ring = internal.Ring

// Anything that can list its boundary edges, like a sector in a map editor.
// Edges are directed, with the interior on the right: outer boundaries run
// clockwise and holes counterclockwise (with y pointing up).
type Sector interface {
	BoundaryEdges() []Segment
}

type options struct {
	logger *slog.Logger
}

type Option func(*options)

// Send diagnostics about bad geometry to the logger. By default nothing is
// logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Triangulate the region bounded by the segments. The result has three points
// per triangle, wound the same way as the input (clockwise for solid area).
//
// This never fails. Empty or degenerate input gives an empty buffer, and so
// does a bug in the triangulator, in which case the error is logged.
func Triangulate(segments []Segment, opts ...Option) (result []Point) {
	o := options{logger: internal.NopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internal.NopLogger()
	}

	defer func() {
		err := internal.HandleTriangulatePanicRecover(recover())
		if err != nil {
			o.logger.Error("triangulation failed", "error", err, "segments", len(segments))
			result = nil
		}
	}()
	result, _ = internal.Triangulate(segments, o.logger)
	return result
}

func TriangulateSector(s Sector, opts ...Option) []Point {
	return Triangulate(s.BoundaryEdges(), opts...)
}

// Flatten a triangle buffer into interleaved x, y float32 pairs, the layout a
// GPU vertex buffer wants.
func Float32Buffer(points []Point) []float32 {
	buffer := make([]float32, 0, 2*len(points))
	for _, p := range points {
		buffer = append(buffer, float32(p.X), float32(p.Y))
	}
	return buffer
}

// Segments for a set of loops. Solid loops and holes must already be wound
// correctly; see Ring.Oriented to fix that up.
func LoopSegments(rings ...Ring) []Segment {
	return internal.RingList(rings).Segments()
}
