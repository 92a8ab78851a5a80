// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads CSV benchmark results and splits them into
// per-group series for plotting.
//
// A results file starts with a header row naming its columns. Each
// later row is one measurement. Extract partitions the rows by the
// value of a grouping column, producing one Series per distinct
// value. Series are kept in the order their group value first
// appears in the file, and rows keep their file order within a
// series:
//
//	c, err := benchcsv.Extract("get_operation.csv", benchcsv.Columns{
//		Group: "dbMemtableMaxSize(MB)",
//		X:     "inputDataSize(MB)",
//		Y:     "throughput(MB/sec)",
//	})
//
// X values are kept as the raw text of the cell. Y values are parsed
// as float64; a cell that is not a number stops extraction with a
// *ParseError.
package benchcsv
