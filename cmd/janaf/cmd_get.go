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
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AleutianAI/janafdb/services/janaf"
	"github.com/spf13/cobra"
)

var (
	getFormula  string
	getName     string
	getPhase    string
	getFilename string
	getNoCache  bool
	getAt       []float64

	getCmd = &cobra.Command{
		Use:   "get",
		Short: "Resolve one phase and print its properties",
		Long: `Resolve the index to a single phase using the given criteria,
fetch its table (through the local cache), and print a summary at the
reference temperature. With --at, interpolate every property at the
given temperatures instead.`,
		RunE: runGetCommand,
	}
)

func init() {
	getCmd.Flags().StringVar(&getFormula, "formula", "", "exact chemical formula, case-sensitive (e.g. O2Ti)")
	getCmd.Flags().StringVar(&getName, "name", "", "species name substring, case-insensitive (e.g. rutile)")
	getCmd.Flags().StringVar(&getPhase, "phase", "", "phase code (cr, l, cr,l, g, ref, ...)")
	getCmd.Flags().StringVar(&getFilename, "filename", "", "table filename (e.g. O-062)")
	getCmd.Flags().BoolVar(&getNoCache, "no-cache", false, "fetch fresh, bypassing the local cache")
	getCmd.Flags().Float64SliceVar(&getAt, "at", nil, "temperatures in K to evaluate at")
	rootCmd.AddCommand(getCmd)
}

func runGetCommand(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	q := janaf.Query{
		Formula:  getFormula,
		Name:     getName,
		Phase:    getPhase,
		Filename: getFilename,
		NoCache:  getNoCache,
	}

	p, err := db.GetPhaseData(cmd.Context(), q)
	if err != nil {
		return err
	}

	if len(getAt) == 0 {
		fmt.Println(p)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "T(K)\tCp\tS\t-[G-H(Tr)]/T\tH-H(Tr)\tDelta_fH\tDelta_fG\tlog(Kf)")
	for _, t := range getAt {
		fmt.Fprintf(w, "%g", t)
		for _, ip := range []*janaf.Interpolant{p.Cp, p.S, p.Gef, p.Hef, p.DeltaH, p.DeltaG, p.LogKf} {
			v, err := ip.Eval(t)
			if errors.Is(err, janaf.ErrOutOfRange) {
				fmt.Fprint(w, "\tn/a")
				continue
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\t%.3f", v)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
