// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import "fmt"

// A Series is the sequence of points plotted for one group. X[i] and
// Y[i] come from the same row of the results file.
type Series struct {
	X []string
	Y []float64
}

// Len returns the number of points in s.
func (s *Series) Len() int {
	return len(s.Y)
}

// A Collection maps group keys to their Series, remembering the order
// in which keys were added. That order is the plotting order.
//
// The zero Collection is empty and ready to use.
type Collection struct {
	keys   []string
	series map[string]*Series
}

// Add appends the points x, y to the series for key, creating the
// series at the end of the key order if key is new. It panics if x
// and y differ in length.
func (c *Collection) Add(key string, x []string, y []float64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("benchcsv: series %q: %d x values but %d y values", key, len(x), len(y)))
	}
	if c.series == nil {
		c.series = make(map[string]*Series)
	}
	s, ok := c.series[key]
	if !ok {
		s = &Series{X: []string{}, Y: []float64{}}
		c.series[key] = s
		c.keys = append(c.keys, key)
	}
	s.X = append(s.X, x...)
	s.Y = append(s.Y, y...)
}

// Len returns the number of groups in c.
func (c *Collection) Len() int {
	return len(c.keys)
}

// Keys returns the group keys of c in insertion order. The caller
// must not modify the returned slice.
func (c *Collection) Keys() []string {
	return c.keys
}

// At returns the i'th group key and its series.
func (c *Collection) At(i int) (string, *Series) {
	k := c.keys[i]
	return k, c.series[k]
}
