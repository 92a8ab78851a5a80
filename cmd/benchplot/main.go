// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot draws line charts from the CSV results of storage engine
// experiments.
//
// Usage:
//
//	benchplot all [--config FILE] [--source DIR] [--out DIR] [--fail-fast] [chart...]
//	benchplot chart --csv F --group G --x X --y Y --out F.png [chart flags]
//	benchplot summary --csv F --group G --x X --y Y
//	benchplot list [--config FILE]
//
// "all" produces every chart of the manifest, by default the built-in
// catalog of the experiment suite. Settings are read from
// benchplot.yaml, BENCHPLOT_* environment variables (a .env file in
// the current directory is loaded first) and flags, in increasing
// order of precedence.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "benchplot: %v\n", err)
		os.Exit(1)
	}
}
