// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kvexp/benchplot/internal/chartset"
	"github.com/kvexp/benchplot/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// env is the file of environment settings loaded before any command
// runs.
const env = ".env"

// app is the state shared by the commands of one invocation.
type app struct {
	verbose bool
	log     *zap.Logger
	v       *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop(), v: chartset.NewViper()}
	root := &cobra.Command{
		Use:   "benchplot",
		Short: "Draw charts from experiment results",
		Long: `Benchplot reads the CSV files written by the experiment harness and
draws one line chart per results file, with one line per group of rows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(env); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			a.log = logging.New(a.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log each step")

	root.AddCommand(
		newAllCmd(a),
		newChartCmd(a),
		newSummaryCmd(a),
		newListCmd(a),
	)
	return root
}

// manifest loads the manifest named by the --config flag of cmd, with
// the directory flags of cmd taking precedence over its settings.
func (a *app) manifest(cmd *cobra.Command) (*chartset.Manifest, error) {
	f := cmd.Flags()
	path, err := f.GetString("config")
	if err != nil {
		return nil, err
	}
	for key, flag := range map[string]string{"source_dir": "source", "output_dir": "out"} {
		if pf := f.Lookup(flag); pf != nil {
			if err := a.v.BindPFlag(key, pf); err != nil {
				return nil, err
			}
		}
	}
	return chartset.Load(a.v, path)
}

// manifestFlags adds the flags locating the manifest and its
// directories to cmd.
func manifestFlags(cmd *cobra.Command, out bool) {
	f := cmd.Flags()
	f.String("config", "", "manifest `file` (default ./benchplot.yaml if present)")
	f.String("source", chartset.DefaultSourceDir, "`directory` holding the results files")
	if out {
		f.String("out", chartset.DefaultOutputDir, "`directory` to write charts into")
	}
}
