package internal

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. This
// matters most for turn angles: three collinear points rarely produce exactly
// π, and we don't want a straight run of vertices to read as a concavity.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Which side of the infinite line through a->b the point lies on. Positive is
// the right hand side (the front, where a sector's interior is), negative is
// the left, and zero is on the line.
func LineSide(p, a, b Point) float64 {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

// The angle of the turn at vertex v when walking prev->v->next, measured on
// the right hand side of the walk. Going straight is π, turning right is less,
// turning left is more. The result is in [0, 2π).
//
//	         prev
//	          |
//	next <--- v       θ = π/2, a right turn
func TurnAngle(prev, v, next Point) float64 {
	in := prev.Sub(v)
	out := next.Sub(v)
	angle := math.Atan2(out.Y, out.X) - math.Atan2(in.Y, in.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// A turn is convex if it doesn't bend left by more than the tolerance
func IsConvexTurn(angle float64) bool {
	return angle <= math.Pi+Tolerance
}

// Check if two closed segments share any point. Touching and collinear overlap
// both count.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	d1 := LineSide(p1, q1, q2)
	d2 := LineSide(p2, q1, q2)
	d3 := LineSide(q1, p1, p2)
	d4 := LineSide(q2, p1, p2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Everything else is an endpoint lying on the other segment
	return (d1 == 0 && inSegmentBox(p1, q1, q2)) ||
		(d2 == 0 && inSegmentBox(p2, q1, q2)) ||
		(d3 == 0 && inSegmentBox(q1, p1, p2)) ||
		(d4 == 0 && inSegmentBox(q2, p1, p2))
}

// For a point already known to be collinear with a->b, is it between them?
func inSegmentBox(p, a, b Point) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

// Signed area of a triangle. Counterclockwise is positive.
func SignedArea(a, b, c Point) float64 {
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}

// Signed area of a closed ring by the shoelace formula. Counterclockwise is
// positive.
func RingArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		next := points[CircularIndex(i+1, len(points))]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}
