// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
)

// categories assigns axis positions to raw x values. Each distinct
// value gets the next position the first time it is seen.
type categories struct {
	base   float64
	labels []string
	pos    map[string]float64
}

func newCategories(base float64) *categories {
	return &categories{base: base, pos: make(map[string]float64)}
}

// position returns the axis position of x, allocating one if x is new.
func (c *categories) position(x string) float64 {
	if p, ok := c.pos[x]; ok {
		return p
	}
	p := c.base + float64(len(c.labels))
	c.pos[x] = p
	c.labels = append(c.labels, x)
	return p
}

// ticks returns one labeled tick per category.
func (c *categories) ticks() plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(c.labels))
	for i, l := range c.labels {
		ticks[i] = plot.Tick{Value: c.base + float64(i), Label: l}
	}
	return ticks
}

// bounds returns the axis range that shows every category with half
// a step of margin on each side.
func (c *categories) bounds() (min, max float64) {
	return c.base - 0.5, c.base + float64(len(c.labels)) - 0.5
}

// exactTicks returns a tick at each distinct value of ys, in
// ascending order.
func exactTicks(ys []float64) plot.ConstantTicks {
	vals := append([]float64(nil), ys...)
	sort.Float64s(vals)
	var ticks plot.ConstantTicks
	for i, v := range vals {
		if i > 0 && v == vals[i-1] {
			continue
		}
		ticks = append(ticks, tick(v))
	}
	return ticks
}

// logTicks marks each power of ten in the axis range, with unlabeled
// minor ticks at the multiples in between. When fewer than two powers
// of ten fall in the range, the multiples are labeled too, and when
// even those are fewer than two, the ends of the range are.
type logTicks struct{}

// Ticks implements plot.Ticker.
func (logTicks) Ticks(min, max float64) []plot.Tick {
	if !(min > 0) || !(max >= min) {
		return nil
	}
	lo := math.Floor(math.Log10(min))
	hi := math.Ceil(math.Log10(max))
	var ticks []plot.Tick
	labeled := 0
	for e := lo; e <= hi; e++ {
		for m := 1.0; m < 10; m++ {
			v := scaled(m, e)
			if v < min || v > max {
				continue
			}
			if m == 1 {
				ticks = append(ticks, tick(v))
				labeled++
			} else {
				ticks = append(ticks, plot.Tick{Value: v})
			}
		}
	}
	if labeled < 2 && len(ticks) >= 2 {
		for i := range ticks {
			ticks[i] = tick(ticks[i].Value)
		}
		labeled = len(ticks)
	}
	if labeled < 2 {
		return []plot.Tick{tick(min), tick(max)}
	}
	return ticks
}

// scaled returns m×10^e, computed so that m×0.1 is 0.3 rather than
// 0.30000000000000004.
func scaled(m, e float64) float64 {
	if e < 0 {
		return m / math.Pow(10, -e)
	}
	return m * math.Pow(10, e)
}

func tick(v float64) plot.Tick {
	return plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
}
