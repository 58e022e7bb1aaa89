// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command janaf queries the JANAF thermochemical tables from the
// terminal: search the species index, resolve and evaluate phase data,
// run the HTTP service, and manage the local table cache.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/AleutianAI/janafdb/pkg/logging"
	"github.com/AleutianAI/janafdb/services/janaf"
	"github.com/spf13/cobra"
)

var (
	config Config
	logger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "janaf",
		Short: "Query the JANAF thermochemical tables",
		Long: `janaf looks up species in the JANAF thermochemical tables,
fetches and caches the per-phase data files, and interpolates the
tabulated properties at arbitrary temperatures.`,
		SilenceUsage: true,
	}

	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = loadConfig()
		if err != nil {
			return err
		}

		level := parseLogLevel(config.LogLevel)
		if verbose {
			level = logging.LevelDebug
		}
		logger = logging.New(logging.Config{
			Level:   level,
			LogDir:  config.LogDir,
			Service: "janaf",
		})
		return nil
	}

	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Close()
		}
	}
}

// parseLogLevel maps a config string onto a logging level, defaulting
// to Info.
func parseLogLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

// openDB builds a database from the loaded config.
func openDB() (*janaf.DB, error) {
	opts := []janaf.DBOption{
		janaf.WithLogger(logger.Slog()),
	}
	if config.CacheDir != "" {
		opts = append(opts, janaf.WithCacheDir(config.CacheDir))
	}
	if config.BaseURL != "" {
		opts = append(opts, janaf.WithBaseURL(config.BaseURL))
	}
	if config.IndexPath != "" {
		opts = append(opts, janaf.WithIndexPath(config.IndexPath))
	}
	if config.TimeoutSeconds > 0 {
		opts = append(opts, janaf.WithTimeout(time.Duration(config.TimeoutSeconds)*time.Second))
	}
	return janaf.New(opts...)
}
