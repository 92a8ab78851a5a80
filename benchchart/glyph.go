// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// markerGlyph is a filled circle with an edge. The edge is drawn in
// the glyph style's color and the inside in Fill.
type markerGlyph struct {
	Fill color.Color
}

// edgeWidth is the stroke width of the marker edge.
var edgeWidth = vg.Points(1)

// DrawGlyph implements the draw.GlyphDrawer interface.
func (g markerGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Arc(pt, sty.Radius, 0, 2*math.Pi)
	p.Close()

	c.SetColor(g.Fill)
	c.Fill(p)

	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: edgeWidth})
	c.Stroke(p)
}
