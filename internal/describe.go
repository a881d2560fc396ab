package internal

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/sectorfill/internal/dbg"
)

// Human readable descriptions of graph parts, for logs and for dumping a graph
// while debugging.

type edgeKeyName EdgeIndex
type outlineKeyName int

func (g *Graph) namer() *dbg.Namer {
	if g.names == nil {
		g.names = dbg.NewNamer()
	}
	return g.names
}

// Log values are resolved lazily, so with logging off we never pay for names
type edgeRef struct {
	g *Graph
	e EdgeIndex
}

func (g *Graph) edgeRef(e EdgeIndex) edgeRef {
	return edgeRef{g, e}
}

func (r edgeRef) LogValue() slog.Value {
	if r.e == NoEdge {
		return slog.StringValue("Ø")
	}
	from, to := r.g.EdgePoints(r.e)
	return slog.GroupValue(
		slog.String("name", r.g.namer().Name(edgeKeyName(r.e))),
		slog.Int("index", int(r.e)),
		slog.String("from", formatPoint(from)),
		slog.String("to", formatPoint(to)),
	)
}

type outlineRef struct {
	g *Graph
	i int
}

func (g *Graph) outlineRef(i int) outlineRef {
	return outlineRef{g, i}
}

func (r outlineRef) LogValue() slog.Value {
	outline := &r.g.Outlines[r.i]
	return slog.GroupValue(
		slog.String("name", r.g.namer().Name(outlineKeyName(r.i))),
		slog.Int("edges", len(outline.Edges)),
		slog.Bool("clockwise", outline.Clockwise),
		slog.Bool("convex", outline.Convex),
	)
}

func formatPoint(p Point) string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Describe an edge, colored by state: green for live boundary edges, cyan for
// live splits, red for anything invalidated.
func (g *Graph) DescribeEdge(e EdgeIndex) string {
	edge := g.Edge(e)
	from, to := g.EdgePoints(e)
	name := g.namer().Name(edgeKeyName(e))
	switch {
	case !edge.Valid:
		name = aurora.Red(name).String()
	case edge.HasSister():
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return fmt.Sprintf("%s #%d %s -> %s", name, e, formatPoint(from), formatPoint(to))
}

func (g *Graph) DescribeOutline(i int) string {
	outline := &g.Outlines[i]
	name := g.namer().Name(outlineKeyName(i))
	var flags []string
	if outline.Clockwise {
		flags = append(flags, "outer")
	} else {
		flags = append(flags, aurora.Yellow("hole").String())
	}
	if outline.Convex {
		flags = append(flags, "convex")
	} else {
		flags = append(flags, aurora.Magenta("concave").String())
	}
	return fmt.Sprintf("Outline %s <%s> %d edges, box [%g %g %g %g]",
		aurora.Bold(name), strings.Join(flags, ", "), len(outline.Edges),
		outline.BBox.MinX, outline.BBox.MinY, outline.BBox.MaxX, outline.BBox.MaxY)
}

// Everything in the graph, one line each. Used by the command line tool's dump.
func (g *Graph) Dump() string {
	var b strings.Builder
	for i := range g.Outlines {
		fmt.Fprintln(&b, g.DescribeOutline(i))
		for _, e := range g.Outlines[i].Edges {
			fmt.Fprintf(&b, "  %s\n", g.DescribeEdge(e))
		}
	}
	for _, e := range g.Splits() {
		fmt.Fprintf(&b, "Split %s\n", g.DescribeEdge(e))
	}
	return b.String()
}
