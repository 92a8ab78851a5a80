// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Columns names the header columns used to build series.
type Columns struct {
	Group string // rows are partitioned by the value of this column
	X     string // raw text, one point per row
	Y     string // parsed as float64
}

// Extract reads the results file at path and groups its rows into
// series according to cols.
//
// If path cannot be opened, Extract returns the error from os.Open.
func Extract(path string, cols Columns) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ExtractReader(f, path, cols)
}

// ExtractReader is like Extract, but reads CSV data from r. fileName
// is used in error messages.
func ExtractReader(r io.Reader, fileName string, cols Columns) (*Collection, error) {
	rd := NewReader(r, fileName)
	if err := rd.Err(); err != nil {
		return nil, err
	}
	gi, err := rd.Index(cols.Group)
	if err != nil {
		return nil, err
	}
	xi, err := rd.Index(cols.X)
	if err != nil {
		return nil, err
	}
	yi, err := rd.Index(cols.Y)
	if err != nil {
		return nil, err
	}

	var keys, xs []string
	var ys []float64
	for rd.Scan() {
		row := rd.Row()
		raw := row.Field(yi)
		y, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &ParseError{
				FileName: rd.FileName(),
				Line:     row.Line(),
				Column:   cols.Y,
				Value:    raw,
				Err:      err,
			}
		}
		keys = append(keys, row.Field(gi))
		xs = append(xs, row.Field(xi))
		ys = append(ys, y)
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return group(keys, xs, ys), nil
}

// group partitions parallel key/x/y columns by key. table.GroupBy
// orders groups by first appearance and keeps row order within each
// group.
func group(keys, xs []string, ys []float64) *Collection {
	c := new(Collection)
	if len(keys) == 0 {
		return c
	}
	t := new(table.Builder).Add("key", keys).Add("x", xs).Add("y", ys).Done()
	g := table.GroupBy(t, "key")
	for _, gid := range g.Tables() {
		sub := g.Table(gid)
		c.Add(gid.Label().(string), sub.MustColumn("x").([]string), sub.MustColumn("y").([]float64))
	}
	return c
}
