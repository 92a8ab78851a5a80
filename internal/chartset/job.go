// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartset describes the set of charts produced from an
// experiment run and produces them one after another.
package chartset

import (
	"fmt"
	"path/filepath"

	"github.com/kvexp/benchplot/benchchart"
	"github.com/kvexp/benchplot/benchcsv"
)

// A Job is one chart: which results file and columns to read and how
// to draw them.
type Job struct {
	Name string `mapstructure:"name"`

	// CSV is the results file. A relative path is resolved against
	// the manifest's source directory.
	CSV string `mapstructure:"csv"`

	Group string `mapstructure:"group"`
	X     string `mapstructure:"x"`
	Y     string `mapstructure:"y"`

	// Out is the image file. A relative path is resolved against
	// the manifest's output directory.
	Out string `mapstructure:"out"`

	Title  string `mapstructure:"title"`
	XLabel string `mapstructure:"xlabel"`
	YLabel string `mapstructure:"ylabel"`
	Legend string `mapstructure:"legend"`
	LogX   bool   `mapstructure:"logx"`
	LogY   bool   `mapstructure:"logy"`
	Exact  bool   `mapstructure:"exact"`
}

// Columns returns the columns j extracts.
func (j *Job) Columns() benchcsv.Columns {
	return benchcsv.Columns{Group: j.Group, X: j.X, Y: j.Y}
}

// Spec returns the chart spec for j, writing into outDir.
func (j *Job) Spec(outDir string) benchchart.Spec {
	return benchchart.Spec{
		Path:       Resolve(outDir, j.Out),
		Title:      j.Title,
		XLabel:     j.XLabel,
		YLabel:     j.YLabel,
		Legend:     j.Legend,
		LogX:       j.LogX,
		LogY:       j.LogY,
		ExactTicks: j.Exact,
	}
}

// validate checks that j names everything a chart needs.
func (j *Job) validate() error {
	missing := func(field string) error {
		if j.Name == "" {
			return fmt.Errorf("chart with no name: missing %s", field)
		}
		return fmt.Errorf("chart %s: missing %s", j.Name, field)
	}
	switch {
	case j.Name == "":
		return missing("name")
	case j.CSV == "":
		return missing("csv")
	case j.Group == "":
		return missing("group")
	case j.X == "":
		return missing("x")
	case j.Y == "":
		return missing("y")
	case j.Out == "":
		return missing("out")
	}
	return nil
}

// Resolve returns path relative to dir, unless path is absolute or dir
// is empty.
func Resolve(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
