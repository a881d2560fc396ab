package internal

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// Drawing a triangulated graph, for debugging. Triangles are filled, then the
// edges that survived are stroked on top: boundary edges in one color, splits
// in another.

// Padding around the shape, in pixels
const dbgDrawPadding = 20

var (
	dbgBackground   = colornames.Black
	dbgTriangleFill = color.RGBA{0x2e, 0x8b, 0x57, 0x80} // translucent seagreen
	dbgTriangleLine = colornames.Darkseagreen
	dbgBoundary     = colornames.Cyan
	dbgSplit        = colornames.Orange
	dbgInvalid      = colornames.Red
)

// Draw the graph and the triangles built from it, scale pixels per unit (line
// widths are in pixels regardless). The context is flipped so that y grows
// upwards, like map coordinates.
func (g *Graph) Draw(triangles []Point, scale float64) *gg.Context {
	box := EmptyBBox()
	for _, v := range g.Vertices {
		box.Extend(v.Point)
	}
	for _, p := range triangles {
		box.Extend(p)
	}
	if math.IsInf(box.MinX, 1) {
		// Nothing to draw
		box = BBox{}
	}

	width := int(scale*(box.MaxX-box.MinX)) + dbgDrawPadding*2
	height := int(scale*(box.MaxY-box.MinY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetColor(dbgBackground)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-box.MinX, -box.MinY)

	for i := 0; i+2 < len(triangles); i += 3 {
		c.MoveTo(triangles[i].X, triangles[i].Y)
		c.LineTo(triangles[i+1].X, triangles[i+1].Y)
		c.LineTo(triangles[i+2].X, triangles[i+2].Y)
		c.ClosePath()
		c.SetColor(dbgTriangleFill)
		c.FillPreserve()
		c.SetColor(dbgTriangleLine)
		c.SetLineWidth(1)
		c.Stroke()
	}

	for i, edge := range g.Edges {
		from, to := g.EdgePoints(EdgeIndex(i))
		switch {
		case !edge.Valid && edge.HasSister():
			// Pruned splits are just noise
			continue
		case !edge.Valid:
			c.SetColor(dbgInvalid)
		case edge.HasSister():
			c.SetColor(dbgSplit)
		default:
			c.SetColor(dbgBoundary)
		}
		c.SetLineWidth(2)
		c.DrawLine(from.X, from.Y, to.X, to.Y)
		c.Stroke()
	}
	return c
}
