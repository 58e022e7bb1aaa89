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
	"errors"
	"strings"
	"testing"
)

func TestParsePhaseCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PhaseCode
		wantErr bool
	}{
		{name: "crystal", input: "cr", want: PhaseCrystal},
		{name: "combined crystal liquid", input: "cr,l", want: PhaseCrystalLiquid},
		{name: "gas", input: "g", want: PhaseGas},
		{name: "reference state", input: "ref", want: PhaseReference},
		{name: "upper case normalized", input: "G", want: PhaseGas},
		{name: "surrounding whitespace trimmed", input: "  l ", want: PhaseLiquid},
		{name: "unknown code", input: "solid", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhaseCode(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhase) {
					t.Fatalf("ParsePhaseCode(%q) error = %v, want ErrInvalidPhase", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePhaseCode(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePhaseCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePhaseCodeErrorListsValidCodes(t *testing.T) {
	_, err := ParsePhaseCode("plasma")
	if err == nil {
		t.Fatal("expected an error for an unknown phase code")
	}
	for _, code := range []string{"cr", "cr,l", "g", "ref", "aq", "sat"} {
		if !strings.Contains(err.Error(), code) {
			t.Errorf("error %q does not mention valid code %q", err, code)
		}
	}
}
