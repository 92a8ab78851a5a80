// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out plain-text tables in aligned columns.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table collects rows of cells and formats them with every column
// padded to its widest cell.
//
// Row and Cell return the Table so callers can chain them to build
// up a row at once.
type Table struct {
	rows [][]cell
}

type cell struct {
	value string
	align Align
}

// Align is the horizontal alignment of a cell within its column.
type Align int

const (
	Left Align = iota
	Right
)

func (a Align) pad(s string, w int) string {
	if a == Right {
		return fmt.Sprintf("%*s", w, s)
	}
	return s
}

// Row starts a new row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell appends a left-aligned cell to the current row.
func (t *Table) Cell(value string) *Table {
	return t.AlignedCell(value, Left)
}

// AlignedCell appends a cell with alignment a to the current row.
func (t *Table) AlignedCell(value string, a Align) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	last := len(t.rows) - 1
	t.rows[last] = append(t.rows[last], cell{value, a})
	return t
}

// Format lays out t and writes it to w. Columns are separated by two
// spaces. Lines carry no trailing white space.
func (t *Table) Format(w io.Writer) error {
	var widths []int
	for _, row := range t.rows {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(c.value); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for i, c := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			s := c.align.pad(c.value, widths[i])
			line.WriteString(s)
			if i < len(row)-1 {
				// Pad left-aligned cells out to the column
				// width, except at the end of the line.
				line.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(s)))
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
