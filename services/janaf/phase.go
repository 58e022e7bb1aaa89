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
	"strings"
)

// PhaseData is the resolved, parsed, and interpolated data for one phase.
// It owns the verbatim description line, the cleaned table, and the seven
// property interpolants. Immutable once constructed.
type PhaseData struct {
	// Record is the index record the data was resolved from.
	Record IndexRecord

	// Description is the first line of the table file, verbatim.
	Description string

	// Table is the cleaned numeric table.
	Table RawTable

	// Cp is the heat capacity interpolant, J/mol/K.
	Cp *Interpolant

	// S is the standard entropy interpolant, J/mol/K.
	S *Interpolant

	// Gef is the Gibbs energy function -[G-H(Tr)]/T interpolant, J/mol/K.
	Gef *Interpolant

	// Hef is the enthalpy increment H-H(Tr) interpolant, kJ/mol.
	Hef *Interpolant

	// DeltaH is the enthalpy of formation interpolant, J/mol.
	DeltaH *Interpolant

	// DeltaG is the Gibbs energy of formation interpolant, J/mol.
	DeltaG *Interpolant

	// LogKf is the log10 equilibrium constant of formation interpolant.
	LogKf *Interpolant
}

// NewPhaseData parses raw table text and builds the interpolants.
// rec may be the zero record when the caller bypassed resolution.
func NewPhaseData(rec IndexRecord, raw string) (*PhaseData, error) {
	description, table, err := ParsePhaseData(raw)
	if err != nil {
		return nil, err
	}
	ips, err := BuildInterpolants(table)
	if err != nil {
		return nil, err
	}
	return &PhaseData{
		Record:      rec,
		Description: description,
		Table:       table,
		Cp:          ips.Cp,
		S:           ips.S,
		Gef:         ips.Gef,
		Hef:         ips.Hef,
		DeltaH:      ips.DeltaH,
		DeltaG:      ips.DeltaG,
		LogKf:       ips.LogKf,
	}, nil
}

// String summarizes the phase by evaluating every property at the reference
// temperature Tr. Properties whose domain excludes Tr (possible for the
// formation interpolants) are reported as n/a.
func (p *PhaseData) String() string {
	var b strings.Builder
	b.WriteString(p.Description)
	writeLine := func(label, unit string, ip *Interpolant, digits int) {
		v, err := ip.Eval(Tr)
		if err != nil {
			fmt.Fprintf(&b, "\n    %s(%.2f) = n/a", label, Tr)
			return
		}
		fmt.Fprintf(&b, "\n    %s(%.2f) = %.*f", label, Tr, digits, v)
		if unit != "" {
			fmt.Fprintf(&b, " %s", unit)
		}
	}
	writeLine("Cp", "J/mol/K", p.Cp, 3)
	writeLine("S", "J/mol/K", p.S, 3)
	writeLine("[G-H(Tr)]/T", "J/mol/K", p.Gef, 3)
	writeLine("H-H(Tr)", "kJ/mol", p.Hef, 3)
	writeLine("Delta_fH", "J/mol", p.DeltaH, 0)
	writeLine("Delta_fG", "J/mol", p.DeltaG, 0)
	writeLine("log(Kf)", "", p.LogKf, 3)
	return b.String()
}
