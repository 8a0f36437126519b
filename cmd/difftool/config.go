// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/godiffutils/diffutils"
	"github.com/godiffutils/diffutils/unifieddiff"
)

// fileConfig is the schema of the optional YAML config file. Any field left unset in the file
// keeps its default.
type fileConfig struct {
	// Engine is one of "reference", "accelerated" or "auto". "auto" defers to the library's
	// own default engine.
	Engine           string `yaml:"engine"`
	HashOptimization bool   `yaml:"hash_optimization"`
	ContextSize      int    `yaml:"context_size"`
	Lenient          bool   `yaml:"lenient"`
}

func defaultFileConfig() *fileConfig {
	return &fileConfig{
		Engine:           "auto",
		HashOptimization: true,
		ContextSize:      3,
		Lenient:          false,
	}
}

var configFileNames = []string{
	"difftool.yaml",
	"difftool.yml",
	".difftool.yaml",
	".difftool.yml",
}

// discoverConfig returns the path of the first config file found in dir, or "" if none exists.
func discoverConfig(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadConfig reads and parses a difftool config file. If path is empty, it searches the working
// directory using discoverConfig; if no file is found there either, the defaults are returned.
func loadConfig(path string) (*fileConfig, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		path = discoverConfig(wd)
	}

	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// engineName translates the config file's "auto" sentinel to the empty string expected by the
// library's engine registry.
func (c *fileConfig) engineName() string {
	if c.Engine == "auto" {
		return ""
	}
	return c.Engine
}

// unifiedOptions builds the unifieddiff.Options that correspond to this config.
func (c *fileConfig) unifiedOptions() []unifieddiff.Option {
	opts := []unifieddiff.Option{
		unifieddiff.ContextSize(c.ContextSize),
		diff.EngineName(c.engineName()),
	}
	if c.HashOptimization {
		opts = append(opts, diff.HashOptimization())
	}
	return opts
}

// parseOptions builds the unifieddiff.Options relevant to Parse.
func (c *fileConfig) parseOptions() []unifieddiff.Option {
	var opts []unifieddiff.Option
	if c.Lenient {
		opts = append(opts, unifieddiff.Lenient())
	}
	return opts
}
