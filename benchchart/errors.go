// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import "fmt"

// A ScaleError reports a value that cannot be placed on a logarithmic
// axis.
type ScaleError struct {
	Axis  string // "y"
	Group string
	Value float64
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("benchchart: series %q: %s value %g is not positive on a log scale", e.Group, e.Axis, e.Value)
}

// A FormatError reports an output path whose extension names no
// supported image format.
type FormatError struct {
	Path string
	Ext  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("benchchart: %s: unsupported image format %q", e.Path, e.Ext)
}
