package internal

// A closed loop of points. Sectors don't arrive as rings, but tools and tests
// think in rings, and this turns them into the directed edges the
// triangulator wants.
type Ring []Point

// The ring's edges, each point to the next and the last back to the first.
// Repeated closing points are dropped, so rings written either way work.
func (r Ring) Segments() []Segment {
	points := []Point(r)
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	if len(points) < 2 {
		return nil
	}
	segments := make([]Segment, len(points))
	for i, p := range points {
		segments[i] = Segment{p, points[CircularIndex(i+1, len(points))]}
	}
	return segments
}

func (r Ring) Reverse() Ring {
	reversed := make(Ring, len(r))
	for i, p := range r {
		reversed[len(r)-1-i] = p
	}
	return reversed
}

// Counterclockwise is positive
func (r Ring) SignedArea() float64 {
	return RingArea(r)
}

func (r Ring) IsClockwise() bool {
	return r.SignedArea() < 0
}

// Wind the ring so its interior is on the right of every edge. That's
// clockwise for a solid ring and counterclockwise for a hole.
func (r Ring) Oriented(hole bool) Ring {
	if r.IsClockwise() == hole {
		return r.Reverse()
	}
	return r
}

// Even-odd point in polygon test
func (r Ring) ContainsPointByEvenOdd(p Point) bool {
	return r.CrossingCount(p)%2 == 1
}

// Crossings of a ray going right from p
func (r Ring) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range r {
		next := r[CircularIndex(i+1, len(r))]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		// X where the edge crosses the ray's line
		x := vertex.X + (p.Y-vertex.Y)*(next.X-vertex.X)/(next.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

type RingList []Ring

func (list RingList) Segments() []Segment {
	var segments []Segment
	for _, r := range list {
		segments = append(segments, r.Segments()...)
	}
	return segments
}

func (list RingList) ContainsPointByEvenOdd(p Point) bool {
	count := 0
	for _, r := range list {
		count += r.CrossingCount(p)
	}
	return count%2 == 1
}

// Area of the region the rings bound. Clockwise rings add and
// counterclockwise rings (holes) subtract, so the rings must be oriented.
func (list RingList) Area() float64 {
	var area float64
	for _, r := range list {
		area -= r.SignedArea()
	}
	return area
}
