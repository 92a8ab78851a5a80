// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// A Manifest is the list of charts to produce along with where their
// inputs and outputs live.
type Manifest struct {
	SourceDir string `mapstructure:"source_dir"`
	OutputDir string `mapstructure:"output_dir"`
	Charts    []Job  `mapstructure:"charts"`
}

// Defaults for manifest settings.
const (
	DefaultSourceDir = "./build/experiments"
	DefaultOutputDir = "."
)

// EnvPrefix is the prefix of environment variables overriding
// manifest settings, as in BENCHPLOT_SOURCE_DIR.
const EnvPrefix = "BENCHPLOT"

// NewViper returns a viper instance with the manifest defaults and
// environment overrides installed. Callers may bind flags to it
// before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("source_dir", DefaultSourceDir)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the manifest file at path into v and returns the
// resulting Manifest. If path is empty, Load looks for benchplot.yaml
// in the current directory and carries on with the defaults if there
// is none. A manifest that lists no charts gets the Default catalog.
func Load(v *viper.Viper, path string) (*Manifest, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("benchplot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading manifest: %w", err)
		}
	}

	m := new(Manifest)
	if err := v.Unmarshal(m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if len(m.Charts) == 0 {
		m.Charts = Default()
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) validate() error {
	seen := make(map[string]bool)
	for i := range m.Charts {
		j := &m.Charts[i]
		if err := j.validate(); err != nil {
			return err
		}
		if seen[j.Name] {
			return fmt.Errorf("chart %s: listed more than once", j.Name)
		}
		seen[j.Name] = true
	}
	return nil
}

// Select returns the jobs of m with the given names, in manifest
// order. With no names it returns every job.
func (m *Manifest) Select(names ...string) ([]Job, error) {
	if len(names) == 0 {
		return m.Charts, nil
	}
	want := make(map[string]bool)
	for _, n := range names {
		want[n] = true
	}
	var jobs []Job
	for _, j := range m.Charts {
		if want[j.Name] {
			jobs = append(jobs, j)
			delete(want, j.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, fmt.Errorf("no chart named %q", n)
		}
	}
	return jobs, nil
}
