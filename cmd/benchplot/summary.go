// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/kvexp/benchplot/benchcsv"
	"github.com/kvexp/benchplot/internal/chartset"
	"github.com/kvexp/benchplot/seriesstat"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func newSummaryCmd(a *app) *cobra.Command {
	var j chartset.Job
	cmd := &cobra.Command{
		Use:   "summary [chart...]",
		Short: "Print per-group statistics",
		Long: `Summary prints the count, extremes, median, mean, geometric mean and
standard deviation of the y values of each group. With --csv it reads
that file; otherwise it summarizes the charts of the manifest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if j.CSV != "" {
				return summarize(w, j.CSV, &j)
			}
			m, err := a.manifest(cmd)
			if err != nil {
				return err
			}
			jobs, err := m.Select(args...)
			if err != nil {
				return err
			}
			var errs error
			for i := range jobs {
				job := &jobs[i]
				fmt.Fprintf(w, "%s: %s\n", job.Name, job.Y)
				path := chartset.Resolve(m.SourceDir, job.CSV)
				if err := summarize(w, path, job); err != nil {
					a.log.Error("no summary", zap.String("chart", job.Name), zap.Error(err))
					errs = multierr.Append(errs, fmt.Errorf("chart %s: %w", job.Name, err))
				}
				fmt.Fprintln(w)
			}
			return errs
		},
	}
	manifestFlags(cmd, false)
	columnFlags(cmd.Flags(), &j)
	cmd.MarkFlagsRequiredTogether("csv", "group", "x", "y")
	return cmd
}

func summarize(w io.Writer, path string, j *chartset.Job) error {
	c, err := benchcsv.Extract(path, j.Columns())
	if err != nil {
		return err
	}
	return seriesstat.Format(w, j.Group, seriesstat.Summarize(c))
}
