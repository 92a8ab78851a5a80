// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/kvexp/benchplot/internal/chartset"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// columnFlags adds the flags selecting a results file and its columns
// to f, storing them in j.
func columnFlags(f *pflag.FlagSet, j *chartset.Job) {
	f.StringVar(&j.CSV, "csv", "", "results `file`")
	f.StringVar(&j.Group, "group", "", "`column` whose values split rows into lines")
	f.StringVar(&j.X, "x", "", "`column` of x values")
	f.StringVar(&j.Y, "y", "", "`column` of y values")
}

func newChartCmd(a *app) *cobra.Command {
	var j chartset.Job
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Draw a single chart",
		Long: `Chart draws one results file. The image format follows the extension
of --out: png (the default), jpg, tif, svg or pdf.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j.Name = j.Out
			r := &chartset.Runner{Log: a.log}
			return r.Chart(&j)
		},
	}
	f := cmd.Flags()
	columnFlags(f, &j)
	f.StringVar(&j.Out, "out", "", "image `file` to write")
	f.StringVar(&j.Title, "title", "", "chart title")
	f.StringVar(&j.XLabel, "xlabel", "", "x axis label")
	f.StringVar(&j.YLabel, "ylabel", "", "y axis label")
	f.StringVar(&j.Legend, "legend", "", "legend `template`, with %s standing for the group value")
	f.BoolVar(&j.LogX, "logx", false, "use a log scale for x")
	f.BoolVar(&j.LogY, "logy", false, "use a log scale for y")
	f.BoolVar(&j.Exact, "exact", false, "put y ticks at the data values")
	for _, name := range []string{"csv", "group", "x", "y", "out"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
