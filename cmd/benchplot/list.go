// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/kvexp/benchplot/internal/chartset"
	"github.com/kvexp/benchplot/internal/texttab"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the charts of the manifest",
		Long: `List prints the name, results file and image file of every chart in
the manifest, with paths resolved against the source and output
directories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manifest(cmd)
			if err != nil {
				return err
			}
			var tab texttab.Table
			tab.Row().Cell("chart").Cell("csv").Cell("out")
			for _, j := range m.Charts {
				tab.Row().Cell(j.Name).
					Cell(chartset.Resolve(m.SourceDir, j.CSV)).
					Cell(j.Spec(m.OutputDir).Path)
			}
			return tab.Format(cmd.OutOrStdout())
		},
	}
	manifestFlags(cmd, true)
	return cmd
}
