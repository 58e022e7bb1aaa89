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
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [substring]",
	Short: "Search the species index",
	Long: `Search the species index for records whose formula contains the
substring (case-sensitive) or whose name contains it (case-insensitive).`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchCommand,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearchCommand(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	records := db.Search(args[0])
	if len(records) == 0 {
		fmt.Println("no matching species")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FORMULA\tNAME\tPHASE\tFILENAME")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.Formula, rec.Name, rec.Phase, rec.Filename)
	}
	return w.Flush()
}
