package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangle buffer is a valid triangulation of the
// region the (oriented) rings bound. The rules are:
// 1. The buffer holds whole triangles.
// 2. Every triangle point is a point of some ring; nothing new is invented.
// 3. Every triangle is clockwise, like the solid rings.
// 4. The sum of the areas of all triangles is equal to the area of the region.
func AssertValidTriangulation(t *testing.T, rings RingList, triangles []Point) {
	require.Zero(t, len(triangles)%3, "buffer must hold whole triangles")

	ringPoints := make(map[Point]struct{})
	for _, r := range rings {
		for _, p := range r {
			ringPoints[p] = struct{}{}
		}
	}

	var triangleArea float64
	for i := 0; i < len(triangles); i += 3 {
		a, b, c := triangles[i], triangles[i+1], triangles[i+2]
		for _, p := range []Point{a, b, c} {
			_, ok := ringPoints[p]
			require.True(t, ok, "triangle %d has point %v, which is in no ring", i/3, p)
		}
		area := SignedArea(a, b, c)
		require.LessOrEqual(t, area, Tolerance, "counterclockwise triangle %d: %v %v %v", i/3, a, b, c)
		triangleArea -= area
	}

	expected := rings.Area()
	require.InDelta(t, expected, triangleArea, Tolerance*math.Max(1, expected),
		"sum of the areas of all triangles should equal the area of the region")
}

// Check a grid of sample points: every point inside the region must be covered
// by exactly one triangle, and every point outside by none.
func validateTrianglesBySampling(t *testing.T, triangles []Point, rings RingList) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, r := range rings {
		for _, p := range r {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	size := math.Max(maxX-minX, maxY-minY)
	// Pad the bounding box by 10%
	padding := size * 0.1
	step := size / 50

	// The odd offsets keep samples off the grid lines most fixtures are drawn on
	bad := 0
	for y := minY - padding + step*0.37; y <= maxY+padding; y += step {
		for x := minX - padding + step*0.61; x <= maxX+padding; x += step {
			p := Point{X: x, Y: y}

			covering := 0
			for i := 0; i < len(triangles); i += 3 {
				if triangleContains(triangles[i], triangles[i+1], triangles[i+2], p) {
					covering++
				}
			}

			expected := 0
			if rings.ContainsPointByEvenOdd(p) {
				expected = 1
			}
			if covering != expected {
				bad++
				assert.Equal(t, expected, covering, "point %v is covered by the wrong number of triangles", p)
			}
			if bad > 10 {
				t.Fatal("too many bad samples")
			}
		}
	}
}

// Strictly inside; points on an edge are in neither triangle
func triangleContains(a, b, c, p Point) bool {
	d1 := SignedArea(p, a, b)
	d2 := SignedArea(p, b, c)
	d3 := SignedArea(p, c, a)
	return (d1 < 0 && d2 < 0 && d3 < 0) || (d1 > 0 && d2 > 0 && d3 > 0)
}
