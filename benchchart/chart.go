// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart draws a collection of benchmark series as a
// static line chart.
//
// Every series of the collection becomes one line on a shared pair
// of axes. Styling is fixed: lines are 3pt wide with circular markers,
// colors come from a short cyclic palette indexed by the position of
// the series in the collection, and the axis lines are not drawn.
// Per-chart options live in a Spec.
package benchchart

import (
	"fmt"
	"image/color"
	"os"

	"github.com/kvexp/benchplot/benchcsv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Spec configures a single chart.
type Spec struct {
	// Path is the output file. Its extension selects the image
	// format; see Render.
	Path string

	Title  string
	XLabel string
	YLabel string

	// Legend is a fmt format with a single verb (normally %s) that
	// is given the group key of each series. If Legend is empty, the
	// chart has no legend.
	Legend string

	LogX bool
	LogY bool

	// ExactTicks places the y ticks at exactly the plotted y values
	// instead of at automatically chosen positions.
	ExactTicks bool
}

// Fixed series styling.
var (
	lineWidth    = vg.Points(3)
	markerRadius = vg.Points(2.5)
)

// Chart geometry.
const (
	width  = 6.4 * vg.Inch
	height = 4.8 * vg.Inch
	dpi    = 100
)

// Render draws the series of c as a line chart configured by spec and
// writes it to spec.Path.
//
// The image format follows the extension of spec.Path: .png (also used
// when there is no extension), .jpg/.jpeg, .tif/.tiff, .svg or .pdf.
// Any other extension yields a *FormatError.
//
// On a log y axis every y value must be positive; otherwise Render
// returns a *ScaleError. If the output file cannot be created, Render
// returns the error from os.Create. Nothing is written when Render
// fails.
func Render(c *benchcsv.Collection, spec Spec) error {
	ch, err := newChart(c, spec)
	if err != nil {
		return err
	}
	can, err := newCanvas(spec.Path)
	if err != nil {
		return err
	}
	ch.plot.Draw(draw.New(can))

	f, err := os.Create(spec.Path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		os.Remove(spec.Path)
		return fmt.Errorf("benchchart: writing %s: %w", spec.Path, err)
	}
	return f.Close()
}

// A chart is a plot built from a collection, along with the choices
// made while building it.
type chart struct {
	plot *plot.Plot

	styles []Style   // per series, in drawing order
	legend []string  // legend entries, in drawing order
	xcats  []string  // x categories, in axis order
	yticks []float64 // y tick positions when spec.ExactTicks
}

// newChart builds a fresh plot for c. Nothing is shared between
// charts, so series never leak from one chart into the next.
func newChart(c *benchcsv.Collection, spec Spec) (*chart, error) {
	pl := plot.New()
	pl.Title.Text = spec.Title
	pl.X.Label.Text = spec.XLabel
	pl.Y.Label.Text = spec.YLabel

	// No axis lines ("spines"); ticks and labels remain.
	pl.X.LineStyle = draw.LineStyle{Color: color.Transparent}
	pl.Y.LineStyle = draw.LineStyle{Color: color.Transparent}

	base := 0.0
	if spec.LogX {
		// Category positions start at 1 so the first one is on
		// the axis.
		base = 1
	}
	cats := newCategories(base)
	ch := &chart{plot: pl}

	var allY []float64
	for i := 0; i < c.Len(); i++ {
		key, s := c.At(i)
		if s.Len() == 0 {
			continue
		}
		if spec.LogY {
			for _, y := range s.Y {
				if !(y > 0) {
					return nil, &ScaleError{Axis: "y", Group: key, Value: y}
				}
			}
		}

		xys := make(plotter.XYs, s.Len())
		for j := range xys {
			xys[j].X = cats.position(s.X[j])
			xys[j].Y = s.Y[j]
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("benchchart: series %q: %w", key, err)
		}

		sty := StyleAt(i)
		line.Color = sty.Line
		line.Width = lineWidth
		points.Color = sty.Line
		points.Radius = markerRadius
		points.Shape = markerGlyph{Fill: sty.Fill}
		pl.Add(line, points)
		ch.styles = append(ch.styles, sty)

		if spec.Legend != "" {
			label := fmt.Sprintf(spec.Legend, key)
			pl.Legend.Add(label, line, points)
			ch.legend = append(ch.legend, label)
		}
		allY = append(allY, s.Y...)
	}

	ch.xcats = cats.labels
	pl.X.Tick.Marker = cats.ticks()
	if len(cats.labels) > 0 {
		pl.X.Min, pl.X.Max = cats.bounds()
	} else {
		pl.X.Min, pl.X.Max = emptyRange(spec.LogX)
	}
	if spec.LogX {
		pl.X.Scale = plot.LogScale{}
	}

	if len(allY) == 0 {
		pl.Y.Min, pl.Y.Max = emptyRange(spec.LogY)
	} else if pl.Y.Min == pl.Y.Max {
		pl.Y.Min, pl.Y.Max = widen(pl.Y.Min, spec.LogY)
	}
	if spec.LogY {
		pl.Y.Scale = plot.LogScale{}
		pl.Y.Tick.Marker = logTicks{}
	}
	if spec.ExactTicks {
		ticks := exactTicks(allY)
		pl.Y.Tick.Marker = ticks
		for _, t := range ticks {
			ch.yticks = append(ch.yticks, t.Value)
		}
	}
	return ch, nil
}

// emptyRange is the axis range of a chart with no points.
func emptyRange(log bool) (min, max float64) {
	if log {
		return 1, 10
	}
	return 0, 1
}

// widen returns a range around v for an axis whose data has a single
// value.
func widen(v float64, log bool) (min, max float64) {
	if log {
		return v / 2, v * 2
	}
	return v - 1, v + 1
}
