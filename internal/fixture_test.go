package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures for the tests. The svg files in fixtures/ are read with
// ParseSVGRings, so a polygon with class="hole" is a hole. Fixtures are
// available by name, sans extension. If anything goes wrong, it dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) RingList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rings, err := ParseSVGRings(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return rings
}

// Some ad hoc code specified fixtures

func makeStar(x, y, outerRadius, innerRadius float64) Ring {
	var points Ring
	for i := 0; i < 10; i++ {
		angle := 2 * math.Pi * float64(i) / 10
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		points = append(points, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return points
}

func SimpleStar() RingList {
	return RingList{makeStar(0, 0, 5, 2).Oriented(false)}
}

func SquareWithHole() RingList {
	outer := Ring{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	}
	hole := Ring{
		{X: -2, Y: -2},
		{X: -2, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: -2},
	}
	return RingList{outer.Oriented(false), hole.Oriented(true)}
}

// A star shaped band: a star with a thinner star cut out of it
func StarOutline() RingList {
	return RingList{
		makeStar(0, 0, 10, 5).Oriented(false),
		makeStar(0, 0, 8, 3).Oriented(true),
	}
}

func StarStripes() RingList {
	// Multiple inset stars with alternating winding
	var list RingList
	const outerRadius = 10
	const n = 20
	var scale float64 = 1
	const indentScale = 0.7
	const gapScale = 0.9

	for i := 0; i < n; i++ {
		r := outerRadius * scale
		list = append(list, makeStar(0, 0, r, r*indentScale).Oriented(i%2 == 1))
		scale *= gapScale
	}
	return list
}

func MultiLayeredHoles() RingList {
	// In this test, we want multiple holes which contain filled shapes inside.
	return RingList{
		// Outer star
		makeStar(0, 0, 10, 7).Oriented(false),
		// Top hole
		makeStar(1.5, 5, 3, 2).Oriented(true),
		// Top inner
		makeStar(1.5, 5, 2, 1).Oriented(false),
		// Bottom hole
		makeStar(1.8, -5, 3, 2).Oriented(true),
		// Bottom inner
		makeStar(1.8, -5, 2, 1).Oriented(false),
		// Left hole
		makeStar(-3, 0, 4, 2).Oriented(true),
		// Left inner
		makeStar(-3, 0, 3, 1).Oriented(false),
	}
}
