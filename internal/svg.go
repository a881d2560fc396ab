package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Reading rings out of SVG. This is not a full (or even correct) SVG reader:
// it finds every <polygon> element and reads its points attribute, ignoring
// transforms and everything else. A polygon with class "hole" is a hole.
// Rings come back oriented for the triangulator.
//
// Coordinates are used as is, so the y axis points down compared to how a
// viewer shows the file. Since the rings are reoriented anyway, that only
// mirrors the picture.
func ParseSVGRings(r io.Reader) (RingList, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var rings RingList
	for i, polygon := range root.FindAll("polygon") {
		ring, err := parseSVGPoints(polygon.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		if len(ring) < 3 {
			return nil, errors.Errorf("polygon %d has %d points", i, len(ring))
		}
		hole := false
		for _, class := range strings.Fields(polygon.Attributes["class"]) {
			if class == "hole" {
				hole = true
			}
		}
		rings = append(rings, ring.Oriented(hole))
	}
	if len(rings) == 0 {
		return nil, errors.New("no polygons found")
	}
	return rings, nil
}

// Points are "x,y x,y ...", but SVG allows any mix of commas and whitespace
func parseSVGPoints(attribute string) (Ring, error) {
	fields := strings.Fields(strings.ReplaceAll(attribute, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attribute)
	}
	ring := make(Ring, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		ring = append(ring, Point{x, y})
	}
	return ring, nil
}
