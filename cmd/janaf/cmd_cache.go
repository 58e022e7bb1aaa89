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

	"github.com/spf13/cobra"
)

var (
	cacheCmd = &cobra.Command{
		Use:   "cache",
		Short: "Manage the local table cache",
	}
	cacheInfoCmd = &cobra.Command{
		Use:   "info",
		Short: "Show the cache location and its entries",
		RunE:  runCacheInfoCommand,
	}
	cacheClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Delete all cached tables",
		RunE:  runCacheClearCommand,
	}
)

func init() {
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheInfoCommand(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	store := db.Store()
	entries, err := store.Entries()
	if err != nil {
		return err
	}

	fmt.Println("cache directory:", store.Dir())
	fmt.Println("entries:", len(entries))
	for _, name := range entries {
		fmt.Println("  ", name)
	}
	return nil
}

func runCacheClearCommand(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	removed, err := db.Store().Clear()
	if err != nil {
		return err
	}
	fmt.Println("removed", removed, "cached tables")
	return nil
}
