// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"strings"
)

// A SchemaError reports a column that is missing from the header of
// a results file.
type SchemaError struct {
	FileName string
	Column   string
	Header   []string // header of the file; nil if the file is empty
}

func (e *SchemaError) Error() string {
	if e.Header == nil {
		return fmt.Sprintf("%s: no header row, want column %q", e.FileName, e.Column)
	}
	return fmt.Sprintf("%s: no column %q in header [%s]", e.FileName, e.Column, strings.Join(e.Header, ","))
}

// A ParseError represents a malformed record or a non-numeric value
// in a numeric column on a particular line of a results file.
type ParseError struct {
	FileName string
	Line     int
	Column   string // empty for malformed records
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%d: %v", e.FileName, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %q: %q is not a number", e.FileName, e.Line, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
