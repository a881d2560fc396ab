package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/sectorfill/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Read boundary edges in the given format. Loops in text and yaml input are
// taken as they are written, so their winding says which are holes. SVG
// polygons are wound for us, using the "hole" class.
func readSegments(r io.Reader, format string) ([]internal.Segment, error) {
	switch format {
	case "text":
		rings, err := readTextRings(r)
		if err != nil {
			return nil, err
		}
		return rings.Segments(), nil
	case "yaml":
		return readYAMLSegments(r)
	case "svg":
		rings, err := internal.ParseSVGRings(r)
		if err != nil {
			return nil, err
		}
		return rings.Segments(), nil
	default:
		return nil, errors.Errorf("unknown input format %q", format)
	}
}

// Newline separated points in the form "x y", with each loop separated by an
// extra newline.
func readTextRings(r io.Reader) (internal.RingList, error) {
	var rings internal.RingList
	var ring internal.Ring
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the loop
		if line == "" {
			if len(ring) > 0 {
				rings = append(rings, ring)
				ring = nil
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parseTextPoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		ring = append(ring, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing loop if any
	if len(ring) > 0 {
		rings = append(rings, ring)
	}
	return rings, nil
}

func parseTextPoint(line string) (internal.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return internal.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return internal.Point{X: x, Y: y}, nil
}

// A yaml document holds raw directed segments, loops, or both:
//
//	segments:
//	  - {from: [0, 0], to: [0, 1]}
//	loops:
//	  - [[0, 0], [0, 2], [2, 2], [2, 0]]
type yamlInput struct {
	Segments []yamlSegment  `yaml:"segments"`
	Loops    [][][]float64 `yaml:"loops"`
}

type yamlSegment struct {
	From []float64 `yaml:"from"`
	To   []float64 `yaml:"to"`
}

func readYAMLSegments(r io.Reader) ([]internal.Segment, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var input yamlInput
	if err := decoder.Decode(&input); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decoding yaml")
	}

	var segments []internal.Segment
	for i, segment := range input.Segments {
		from, err := yamlPoint(segment.From)
		if err != nil {
			return nil, errors.Wrapf(err, "segment %d from", i)
		}
		to, err := yamlPoint(segment.To)
		if err != nil {
			return nil, errors.Wrapf(err, "segment %d to", i)
		}
		segments = append(segments, internal.Segment{Start: from, End: to})
	}

	for i, loop := range input.Loops {
		ring := make(internal.Ring, 0, len(loop))
		for j, coordinates := range loop {
			point, err := yamlPoint(coordinates)
			if err != nil {
				return nil, errors.Wrapf(err, "loop %d point %d", i, j)
			}
			ring = append(ring, point)
		}
		segments = append(segments, ring.Segments()...)
	}
	return segments, nil
}

func yamlPoint(coordinates []float64) (internal.Point, error) {
	if len(coordinates) != 2 {
		return internal.Point{}, errors.Errorf("expected [x, y], got %d values", len(coordinates))
	}
	return internal.Point{X: coordinates[0], Y: coordinates[1]}, nil
}
