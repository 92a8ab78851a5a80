// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/kvexp/benchplot/internal/chartset"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func newAllCmd(a *app) *cobra.Command {
	var failFast bool
	cmd := &cobra.Command{
		Use:   "all [chart...]",
		Short: "Draw every chart of the manifest",
		Long: `All draws the charts listed in the manifest, or only the named ones.
Without a manifest the built-in catalog of the experiment suite is used.
A chart that fails is reported and the rest are still drawn, unless
--fail-fast is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manifest(cmd)
			if err != nil {
				return err
			}
			jobs, err := m.Select(args...)
			if err != nil {
				return err
			}
			r := chartset.NewRunner(m, a.log)
			r.FailFast = failFast
			if err := r.Run(jobs); err != nil {
				return fmt.Errorf("%d of %d charts failed: %w", len(multierr.Errors(err)), len(jobs), err)
			}
			return nil
		},
	}
	manifestFlags(cmd, true)
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first chart that fails")
	return cmd
}
