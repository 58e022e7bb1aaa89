// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package janaf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Row is one cleaned row of a JANAF table. The formation energies DeltaH
// and DeltaG are converted from the published kJ/mol to J/mol during
// parsing; HmH stays in kJ/mol as published, and the entropic quantities
// are in J/mol/K.
//
// Any field may be NaN (the source token was not numeric) or +Inf (the
// source token was the literal INFINITE, used for log Kf at 0 K).
type Row struct {
	// T is the temperature in K.
	T float64 `json:"t"`

	// Cp is the heat capacity at constant pressure, J/mol/K.
	Cp float64 `json:"cp"`

	// S is the standard entropy, J/mol/K.
	S float64 `json:"s"`

	// GmHoverT is -[G-H(Tr)]/T, the Gibbs energy function, J/mol/K.
	GmHoverT float64 `json:"gef"`

	// HmH is H-H(Tr), the enthalpy increment from Tr, kJ/mol.
	HmH float64 `json:"hef"`

	// DeltaH is the enthalpy of formation, J/mol. NaN at phase
	// transition rows, where the source leaves the column blank.
	DeltaH float64 `json:"delta_h"`

	// DeltaG is the Gibbs energy of formation, J/mol.
	DeltaG float64 `json:"delta_g"`

	// LogKf is the base-10 log of the equilibrium constant of formation.
	LogKf float64 `json:"log_kf"`
}

// RawTable is the cleaned numeric table for one phase. Rows are in source
// order; the source guarantees ascending temperature and no re-sorting is
// performed here.
type RawTable struct {
	Rows []Row `json:"rows"`
}

// tableColumns is the number of whitespace-delimited fields per data row.
const tableColumns = 8

// ParsePhaseData parses raw JANAF table text into a description and a
// cleaned numeric table.
//
// The first line is kept verbatim as the description and the second line
// (column header) is skipped. Every remaining non-empty line must split on
// runs of whitespace into exactly eight fields; anything else is a
// structural error wrapping ErrParse. Value cleansing never fails: the
// literal token INFINITE becomes +Inf and any other non-numeric token
// becomes NaN. The DeltaH and DeltaG columns are converted from kJ/mol to
// J/mol.
func ParsePhaseData(raw string) (string, RawTable, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if len(lines) < 3 {
		return "", RawTable{}, fmt.Errorf("%w: %d lines, want a description, a header, and data rows", ErrParse, len(lines))
	}

	description := lines[0]

	var table RawTable
	for i, line := range lines[2:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != tableColumns {
			return "", RawTable{}, fmt.Errorf("%w: line %d has %d fields, want %d", ErrParse, i+3, len(fields), tableColumns)
		}
		table.Rows = append(table.Rows, Row{
			T:        cleanValue(fields[0]),
			Cp:       cleanValue(fields[1]),
			S:        cleanValue(fields[2]),
			GmHoverT: cleanValue(fields[3]),
			HmH:      cleanValue(fields[4]),
			DeltaH:   cleanValue(fields[5]) * 1000,
			DeltaG:   cleanValue(fields[6]) * 1000,
			LogKf:    cleanValue(fields[7]),
		})
	}
	if len(table.Rows) == 0 {
		return "", RawTable{}, fmt.Errorf("%w: no data rows", ErrParse)
	}

	return description, table, nil
}

// cleanValue coerces one token to a float. The old text format sometimes
// has funky stuff written in it; INFINITE maps to +Inf and anything else
// non-numeric maps to NaN, never an error.
func cleanValue(token string) float64 {
	if token == "INFINITE" {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
