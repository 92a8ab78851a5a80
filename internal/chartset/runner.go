// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartset

import (
	"fmt"
	"time"

	"github.com/kvexp/benchplot/benchchart"
	"github.com/kvexp/benchplot/benchcsv"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// A Runner produces charts one at a time.
type Runner struct {
	Log *zap.Logger

	SourceDir string
	OutputDir string

	// FailFast stops at the first chart that fails. Otherwise the
	// remaining charts are still produced.
	FailFast bool
}

// NewRunner returns a Runner for the directories of m.
func NewRunner(m *Manifest, log *zap.Logger) *Runner {
	return &Runner{Log: log, SourceDir: m.SourceDir, OutputDir: m.OutputDir}
}

// Run produces each chart of jobs in order. It returns the errors of
// all charts that failed, combined with multierr.
func (r *Runner) Run(jobs []Job) error {
	var errs error
	done := 0
	for i := range jobs {
		if err := r.Chart(&jobs[i]); err != nil {
			errs = multierr.Append(errs, err)
			if r.FailFast {
				break
			}
			continue
		}
		done++
	}
	r.log().Info("charts finished",
		zap.Int("written", done),
		zap.Int("failed", len(multierr.Errors(errs))),
		zap.Int("total", len(jobs)))
	return errs
}

// Chart produces the single chart j.
func (r *Runner) Chart(j *Job) error {
	start := time.Now()
	csv := Resolve(r.SourceDir, j.CSV)
	spec := j.Spec(r.OutputDir)
	log := r.log().With(zap.String("chart", j.Name))
	log.Debug("extracting", zap.String("csv", csv), zap.String("group", j.Group),
		zap.String("x", j.X), zap.String("y", j.Y))

	c, err := benchcsv.Extract(csv, j.Columns())
	if err != nil {
		log.Error("chart not produced", zap.Error(err))
		return fmt.Errorf("chart %s: %w", j.Name, err)
	}
	if err := benchchart.Render(c, spec); err != nil {
		log.Error("chart not produced", zap.Error(err))
		return fmt.Errorf("chart %s: %w", j.Name, err)
	}
	log.Info("chart written",
		zap.String("out", spec.Path),
		zap.Int("groups", c.Len()),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (r *Runner) log() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}
