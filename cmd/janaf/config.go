// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration, loaded from ~/.janafdb.yaml when the
// file exists. Every field has a working default, so the file is
// optional.
type Config struct {
	// CacheDir is where fetched tables are stored. The JANAFDB_CACHE
	// environment variable overrides it.
	CacheDir string `yaml:"cache_dir"`

	// BaseURL is the fetch URL template with a %s verb for the table
	// filename. Empty means the NIST servers.
	BaseURL string `yaml:"base_url"`

	// IndexPath points at a full species index file. Empty means the
	// embedded index.
	IndexPath string `yaml:"index_path"`

	// TimeoutSeconds bounds a single table fetch. Zero means 30.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Listen is the address the serve command binds. Empty means
	// ":8080".
	Listen string `yaml:"listen"`

	// LogLevel is debug, info, warn, or error. Empty means info.
	LogLevel string `yaml:"log_level"`

	// LogDir enables file logging alongside stderr.
	LogDir string `yaml:"log_dir"`
}

// configFileName is looked up in the user's home directory.
const configFileName = ".janafdb.yaml"

// loadConfig reads the optional config file and applies environment
// overrides. A missing file yields the zero config; a malformed file is
// an error.
func loadConfig() (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, configFileName)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if dir := os.Getenv("JANAFDB_CACHE"); dir != "" {
		cfg.CacheDir = dir
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}
