// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kvexp/benchplot/benchcsv"
	"github.com/spf13/cobra"
)

const results = `bufferPoolMaxSize,evictionPolicy,throughput(MB/sec)
100,LRU,5.2
200,LRU,6.1
100,CLOCK,4.0
200,CLOCK,4.5
`

// run executes benchplot with args and returns what it wrote to
// stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeResults(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(results), 0o666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSubcommandsPresent(t *testing.T) {
	have := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		have[c.Name()] = true
	}
	for _, want := range []string{"all", "chart", "summary", "list"} {
		if !have[want] {
			t.Errorf("missing subcommand %s", want)
		}
	}
}

func TestCommandsHaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		if cmd.Short == "" || cmd.Long == "" {
			t.Errorf("command %s missing Short/Long", cmd.Name())
		}
		for _, sc := range cmd.Commands() {
			check(sc)
		}
	}
	check(newRootCmd())
}

func TestChart(t *testing.T) {
	dir := t.TempDir()
	csv := writeResults(t, dir, "eviction.csv")
	out := filepath.Join(dir, "eviction.svg")

	_, err := run(t, "chart", "--csv", csv, "--group", "evictionPolicy",
		"--x", "bufferPoolMaxSize", "--y", "throughput(MB/sec)", "--out", out,
		"--legend", "Eviction Policy: %s", "--exact")
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<?xml")) {
		t.Errorf("%s is not an SVG document", out)
	}
}

func TestChartErrors(t *testing.T) {
	dir := t.TempDir()
	csv := writeResults(t, dir, "eviction.csv")

	if _, err := run(t, "chart", "--csv", csv, "--group", "evictionPolicy", "--x", "bufferPoolMaxSize"); err == nil {
		t.Errorf("chart without --y and --out succeeded")
	}

	_, err := run(t, "chart", "--csv", csv, "--group", "evictionPolicy",
		"--x", "bufferPoolMaxSize", "--y", "latency", "--out", filepath.Join(dir, "x.png"))
	var se *benchcsv.SchemaError
	if !errors.As(err, &se) || se.Column != "latency" {
		t.Errorf("got %v, want a SchemaError for latency", err)
	}

	_, err = run(t, "chart", "--csv", filepath.Join(dir, "absent.csv"), "--group", "evictionPolicy",
		"--x", "bufferPoolMaxSize", "--y", "throughput(MB/sec)", "--out", filepath.Join(dir, "x.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want a missing file error", err)
	}
}

func TestSummary(t *testing.T) {
	csv := writeResults(t, t.TempDir(), "eviction.csv")
	got, err := run(t, "summary", "--csv", csv, "--group", "evictionPolicy",
		"--x", "bufferPoolMaxSize", "--y", "throughput(MB/sec)")
	if err != nil {
		t.Fatal(err)
	}
	want := `evictionPolicy  n  min  median  mean  geomean  max  stddev
LRU             2  5.2    5.65  5.65    5.632  6.1  0.6364
CLOCK           2    4    4.25  4.25    4.243  4.5  0.3536
`
	if got != want {
		t.Errorf("summary output:\n%s\nwant:\n%s", got, want)
	}
}

func TestAllWithManifest(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	writeResults(t, src, "step2/eviction.csv")
	config := filepath.Join(t.TempDir(), "benchplot.yaml")
	manifest := `charts:
  - name: eviction
    csv: step2/eviction.csv
    group: evictionPolicy
    x: bufferPoolMaxSize
    y: throughput(MB/sec)
    out: eviction.png
  - name: broken
    csv: step2/eviction.csv
    group: evictionPolicy
    x: bufferPoolMaxSize
    y: latency(sec)
    out: broken.png
`
	if err := os.WriteFile(config, []byte(manifest), 0o666); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "all", "--config", config, "--source", src, "--out", out, "eviction"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(out, "eviction.png")); err != nil {
		t.Errorf("eviction chart not written: %v", err)
	}

	_, err := run(t, "all", "--config", config, "--source", src, "--out", out)
	if err == nil || !strings.Contains(err.Error(), "1 of 2 charts failed") {
		t.Errorf("got %v, want one failed chart", err)
	}
	var se *benchcsv.SchemaError
	if !errors.As(err, &se) {
		t.Errorf("error %v does not wrap a SchemaError", err)
	}

	if _, err := run(t, "all", "--config", config, "nope"); err == nil {
		t.Errorf("all with an unknown chart succeeded")
	}
}

func TestListDefault(t *testing.T) {
	got, err := run(t, "list", "--source", "results", "--out", "plots")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 14 {
		t.Fatalf("list printed %d lines, want a header and 13 charts:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "chart") {
		t.Errorf("header = %q", lines[0])
	}
	want := []string{
		"get_operation",
		filepath.Join("results", "experiments_db_CSV_step1", "get_operation.csv"),
		filepath.Join("plots", "get_operation.png"),
	}
	if f := strings.Fields(lines[1]); strings.Join(f, " ") != strings.Join(want, " ") {
		t.Errorf("first chart = %q, want %q", f, want)
	}
}
