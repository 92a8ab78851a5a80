// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kvexp/benchplot/benchcsv"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefault(t *testing.T) {
	jobs := Default()
	if len(jobs) != 13 {
		t.Fatalf("Default() has %d charts, want 13", len(jobs))
	}
	m := &Manifest{Charts: jobs}
	if err := m.validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}

	var logY, logX []string
	for _, j := range jobs {
		if j.Legend != "" && strings.Count(j.Legend, "%s") != 1 {
			t.Errorf("%s: legend %q does not have exactly one %%s", j.Name, j.Legend)
		}
		if j.Out != j.Name+".png" {
			t.Errorf("%s: output %q, want %s.png", j.Name, j.Out, j.Name)
		}
		if j.LogY {
			logY = append(logY, j.Name)
		}
		if j.LogX {
			logX = append(logX, j.Name)
		}
	}
	if want := []string{"get_operation", "scan_operation"}; !cmp.Equal(logY, want) {
		t.Errorf("log y charts = %v, want %v", logY, want)
	}
	if want := []string{"put_operation_lsm"}; !cmp.Equal(logX, want) {
		t.Errorf("log x charts = %v, want %v", logX, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	m, err := Load(NewViper(), "")
	if err != nil {
		t.Fatal(err)
	}
	if m.SourceDir != DefaultSourceDir || m.OutputDir != DefaultOutputDir {
		t.Errorf("dirs = %q, %q", m.SourceDir, m.OutputDir)
	}
	if diff := cmp.Diff(Default(), m.Charts); diff != "" {
		t.Errorf("charts differ from Default (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.yaml")
	const manifest = `
source_dir: results
output_dir: plots
charts:
  - name: eviction
    csv: eviction.csv
    group: evictionPolicy
    x: bufferPoolMaxSize
    y: throughput(MB/sec)
    out: eviction.svg
    title: Eviction
    legend: "Eviction Policy: %s"
    logy: true
    exact: true
`
	if err := os.WriteFile(path, []byte(manifest), 0o666); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BENCHPLOT_OUTPUT_DIR", "elsewhere")

	m, err := Load(NewViper(), path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Manifest{
		SourceDir: "results",
		OutputDir: "elsewhere",
		Charts: []Job{{
			Name:   "eviction",
			CSV:    "eviction.csv",
			Group:  "evictionPolicy",
			X:      "bufferPoolMaxSize",
			Y:      "throughput(MB/sec)",
			Out:    "eviction.svg",
			Title:  "Eviction",
			Legend: "Eviction Policy: %s",
			LogY:   true,
			Exact:  true,
		}},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}

	spec := m.Charts[0].Spec(m.OutputDir)
	if spec.Path != filepath.Join("elsewhere", "eviction.svg") || !spec.ExactTicks || !spec.LogY {
		t.Errorf("Spec() = %+v", spec)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	for name, manifest := range map[string]string{
		"missing y": "charts:\n  - {name: a, csv: a.csv, group: g, x: x, out: a.png}\n",
		"duplicate": "charts:\n  - {name: a, csv: a.csv, group: g, x: x, y: y, out: a.png}\n" +
			"  - {name: a, csv: b.csv, group: g, x: x, y: y, out: b.png}\n",
		"no name": "charts:\n  - {csv: a.csv, group: g, x: x, y: y, out: a.png}\n",
	} {
		path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".yaml")
		if err := os.WriteFile(path, []byte(manifest), 0o666); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(NewViper(), path); err == nil {
			t.Errorf("%s: Load succeeded", name)
		}
	}

	if _, err := Load(NewViper(), filepath.Join(dir, "absent.yaml")); err == nil {
		t.Errorf("Load of a missing manifest succeeded")
	}
}

func TestSelect(t *testing.T) {
	m := &Manifest{Charts: Default()}
	jobs, err := m.Select("put_operation_lsm", "get_operation")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, j := range jobs {
		names = append(names, j.Name)
	}
	// Manifest order, not argument order.
	if want := []string{"get_operation", "put_operation_lsm"}; !cmp.Equal(names, want) {
		t.Errorf("Select = %v, want %v", names, want)
	}
	if _, err := m.Select("nope"); err == nil {
		t.Errorf("Select of an unknown chart succeeded")
	}
	if all, _ := m.Select(); len(all) != 13 {
		t.Errorf("Select() returned %d charts", len(all))
	}
}

// runnerFixture writes results files into a temporary source
// directory and returns a runner writing into a separate output
// directory, along with its observed logs.
func runnerFixture(t *testing.T) (*Runner, *observer.ObservedLogs) {
	t.Helper()
	src, out := t.TempDir(), t.TempDir()
	files := map[string]string{
		"good.csv": "bufferPoolMaxSize,evictionPolicy,throughput(MB/sec)\n100,LRU,5.2\n200,LRU,6.1\n100,CLOCK,4.0\n",
		"bad.csv":  "bufferPoolMaxSize,evictionPolicy,throughput(MB/sec)\n100,LRU,N/A\n",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(src, name), []byte(data), 0o666); err != nil {
			t.Fatal(err)
		}
	}
	core, logs := observer.New(zapcore.DebugLevel)
	return &Runner{Log: zap.New(core), SourceDir: src, OutputDir: out}, logs
}

func job(name, csv string) Job {
	return Job{
		Name:   name,
		CSV:    csv,
		Group:  "evictionPolicy",
		X:      "bufferPoolMaxSize",
		Y:      "throughput(MB/sec)",
		Out:    name + ".png",
		Legend: "Eviction Policy: %s",
	}
}

func TestRunContinues(t *testing.T) {
	r, logs := runnerFixture(t)
	jobs := []Job{job("missing", "missing.csv"), job("bad", "bad.csv"), job("good", "good.csv")}

	err := r.Run(jobs)
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("got %d errors (%v), want 2", len(errs), err)
	}
	if !errors.Is(errs[0], fs.ErrNotExist) || !strings.Contains(errs[0].Error(), "chart missing") {
		t.Errorf("first error = %v", errs[0])
	}
	var pe *benchcsv.ParseError
	if !errors.As(errs[1], &pe) || pe.Value != "N/A" {
		t.Errorf("second error = %v, want a ParseError for N/A", errs[1])
	}

	if _, err := os.Stat(filepath.Join(r.OutputDir, "good.png")); err != nil {
		t.Errorf("good chart not written: %v", err)
	}
	for _, name := range []string{"missing.png", "bad.png"} {
		if _, err := os.Stat(filepath.Join(r.OutputDir, name)); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("%s exists after a failed chart", name)
		}
	}

	if n := logs.FilterMessage("chart not produced").Len(); n != 2 {
		t.Errorf("logged %d failures, want 2", n)
	}
	written := logs.FilterMessage("chart written").All()
	if len(written) != 1 || written[0].ContextMap()["groups"] != int64(2) {
		t.Errorf("chart written logs = %+v", written)
	}
}

func TestRunFailFast(t *testing.T) {
	r, _ := runnerFixture(t)
	r.FailFast = true
	err := r.Run([]Job{job("bad", "bad.csv"), job("good", "good.csv")})
	if len(multierr.Errors(err)) != 1 {
		t.Fatalf("got %v, want one error", err)
	}
	if _, err := os.Stat(filepath.Join(r.OutputDir, "good.png")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("chart after the failure was still produced")
	}
}
