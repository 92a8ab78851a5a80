// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seriesstat summarizes the y values of each series in a
// collection.
package seriesstat

import (
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/stats"
	"github.com/kvexp/benchplot/benchcsv"
	"github.com/kvexp/benchplot/internal/texttab"
)

// A Summary describes the y values of one series.
type Summary struct {
	Key string
	N   int

	Min, Max float64
	Median   float64
	Mean     float64
	GeoMean  float64 // NaN unless every value is positive
	StdDev   float64 // NaN for fewer than two values
}

// Summarize returns one Summary per series of c, in collection order.
func Summarize(c *benchcsv.Collection) []Summary {
	out := make([]Summary, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		key, s := c.At(i)
		out = append(out, summarize(key, s.Y))
	}
	return out
}

func summarize(key string, ys []float64) Summary {
	sum := Summary{Key: key, N: len(ys)}
	nan := math.NaN()
	if len(ys) == 0 {
		sum.Min, sum.Max, sum.Median, sum.Mean, sum.GeoMean, sum.StdDev = nan, nan, nan, nan, nan, nan
		return sum
	}
	sample := stats.Sample{Xs: ys}
	sum.Min, sum.Max = stats.Bounds(ys)
	sum.Median = sample.Quantile(0.5)
	sum.Mean = stats.Mean(ys)

	sum.GeoMean = nan
	if sum.Min > 0 {
		sum.GeoMean = stats.GeoMean(ys)
	}
	sum.StdDev = nan
	if len(ys) > 1 {
		sum.StdDev = stats.StdDev(ys)
	}
	return sum
}

// Format writes sums to w as a text table headed by the name of the
// grouping column.
func Format(w io.Writer, group string, sums []Summary) error {
	var tab texttab.Table
	tab.Row().Cell(group)
	for _, h := range []string{"n", "min", "median", "mean", "geomean", "max", "stddev"} {
		tab.AlignedCell(h, texttab.Right)
	}
	for _, s := range sums {
		tab.Row().Cell(s.Key).AlignedCell(strconv.Itoa(s.N), texttab.Right)
		for _, v := range []float64{s.Min, s.Median, s.Mean, s.GeoMean, s.Max, s.StdDev} {
			tab.AlignedCell(formatValue(v), texttab.Right)
		}
	}
	return tab.Format(w)
}

// formatValue prints v with four significant digits, or "~" when the
// statistic is undefined.
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "~"
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
