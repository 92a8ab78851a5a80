// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// A Reader reads rows of a CSV results file.
//
// Its API is modeled on bufio.Scanner. The Reader reuses the backing
// slice of each row between calls to Scan; a caller should copy the
// fields it needs to retain. (The field strings themselves are not
// reused.)
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	c   *csv.Reader
	err error

	fileName string
	header   []string
	index    map[string]int

	row Row
}

// A Row is one record of a results file.
type Row struct {
	fields []string
	line   int
}

// Field returns the i'th field of the row.
func (r Row) Field(i int) string {
	return r.fields[i]
}

// Line returns the 1-based line number the row starts on.
func (r Row) Line() int {
	return r.line
}

// NewReader constructs a Reader for the CSV data in r and reads its
// header row. fileName is used in error messages; it is purely
// diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input and
// reads the header row of that input. A missing or malformed header
// is reported by Err.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.c = csv.NewReader(ior)
	r.c.ReuseRecord = true
	r.err = nil
	r.fileName = fileName
	r.header = nil
	r.index = make(map[string]int)
	r.row = Row{}

	header, err := r.c.Read()
	if err == io.EOF {
		// An empty file has no columns at all. Leave the header
		// empty so every column lookup fails with a SchemaError.
		return
	}
	if err != nil {
		r.err = r.csvError(err)
		return
	}
	r.header = make([]string, len(header))
	copy(r.header, header)
	if len(r.header) > 0 {
		r.header[0] = strings.TrimPrefix(r.header[0], "\ufeff")
	}
	for i, name := range r.header {
		r.index[name] = i
	}
}

// FileName returns the diagnostic name of the input.
func (r *Reader) FileName() string {
	return r.fileName
}

// Index returns the position of the named column. If the header has
// no such column, it returns a *SchemaError. If the header names the
// same column more than once, the last one wins.
func (r *Reader) Index(column string) (int, error) {
	i, ok := r.index[column]
	if !ok {
		return -1, &SchemaError{FileName: r.fileName, Column: column, Header: r.header}
	}
	return i, nil
}

// Scan advances the reader to the next row and reports whether a row
// was read. The caller should use the Row method to get the row.
// If Scan reaches EOF or an error occurs, it returns false, in which
// case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil || r.header == nil {
		return false
	}
	fields, err := r.c.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = r.csvError(err)
		return false
	}
	line, _ := r.c.FieldPos(0)
	r.row = Row{fields: fields, line: line}
	return true
}

// Row returns the row read by the most recent call to Scan.
func (r *Reader) Row() Row {
	return r.row
}

// Err returns the first error encountered by the Reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// csvError converts an encoding/csv error into a *ParseError at the
// position the csv package reports.
func (r *Reader) csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{FileName: r.fileName, Line: pe.Line, Err: pe.Err}
	}
	return err
}
