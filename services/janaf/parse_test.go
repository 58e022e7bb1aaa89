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
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestParsePhaseDataRutile(t *testing.T) {
	description, table, err := ParsePhaseData(readFixture(t, "O-062.txt"))
	require.NoError(t, err)

	assert.Equal(t, "Titanium Oxide, Rutile (TiO2)\tO1Ti1(cr)", description)
	require.Len(t, table.Rows, 18)

	first := table.Rows[0]
	assert.Equal(t, 298.15, first.T)
	assert.Equal(t, 55.103, first.Cp)
	assert.Equal(t, 50.292, first.S)
	assert.Equal(t, 0.0, first.HmH)

	// Formation energies are scaled from kJ/mol to J/mol.
	assert.InDelta(t, -944747.0, first.DeltaH, 1e-6)
	assert.InDelta(t, -889406.0, first.DeltaG, 1e-6)
	assert.Equal(t, 155.819, first.LogKf)

	last := table.Rows[len(table.Rows)-1]
	assert.Equal(t, 1800.0, last.T)
	assert.Equal(t, 78.283, last.Cp)
}

func TestParsePhaseDataTransitions(t *testing.T) {
	_, table, err := ParsePhaseData(readFixture(t, "Fe-055.txt"))
	require.NoError(t, err)
	require.Len(t, table.Rows, 21)

	t.Run("INFINITE becomes positive infinity", func(t *testing.T) {
		zero := table.Rows[0]
		assert.Equal(t, 0.0, zero.T)
		assert.True(t, math.IsInf(zero.GmHoverT, 1), "GmHoverT at 0 K should be +Inf")
		assert.True(t, math.IsInf(zero.LogKf, 1), "LogKf at 0 K should be +Inf")
	})

	t.Run("annotation tokens become NaN", func(t *testing.T) {
		var transition Row
		found := false
		for _, row := range table.Rows {
			if math.IsNaN(row.DeltaH) {
				transition = row
				found = true
				break
			}
		}
		require.True(t, found, "expected a row with NaN formation data")
		assert.Equal(t, 1650.0, transition.T)
		assert.False(t, math.IsNaN(transition.Cp), "Cp on the transition row stays numeric")
		assert.True(t, math.IsNaN(transition.DeltaG))
		assert.True(t, math.IsNaN(transition.LogKf))
	})

	t.Run("duplicate temperatures are kept in order", func(t *testing.T) {
		var at1650 []Row
		for _, row := range table.Rows {
			if row.T == 1650.0 {
				at1650 = append(at1650, row)
			}
		}
		require.Len(t, at1650, 2)
		assert.Equal(t, 71.164, at1650[0].Cp)
		assert.Equal(t, 68.199, at1650[1].Cp)
	})
}

func TestParsePhaseDataErrors(t *testing.T) {
	t.Run("too few lines", func(t *testing.T) {
		_, _, err := ParsePhaseData("Water\tH2O1(g)\nT(K) Cp S")
		require.ErrorIs(t, err, ErrParse)
	})

	t.Run("wrong column count", func(t *testing.T) {
		raw := "Water\tH2O1(g)\nT(K) Cp S gef hef dH dG logKf\n298.15 33.590 188.834 188.834 0.000\n"
		_, _, err := ParsePhaseData(raw)
		require.ErrorIs(t, err, ErrParse)
		assert.Contains(t, err.Error(), "5 fields")
	})

	t.Run("no data rows", func(t *testing.T) {
		_, _, err := ParsePhaseData("Water\tH2O1(g)\nT(K) Cp S gef hef dH dG logKf\n\n")
		require.ErrorIs(t, err, ErrParse)
	})

	t.Run("windows line endings", func(t *testing.T) {
		raw := "Water\tH2O1(g)\r\nheader\r\n298.15 33.590 188.834 188.834 0.000 -241.826 -228.582 40.047\r\n"
		description, table, err := ParsePhaseData(raw)
		require.NoError(t, err)
		assert.Equal(t, "Water\tH2O1(g)", description)
		require.Len(t, table.Rows, 1)
		assert.InDelta(t, -241826.0, table.Rows[0].DeltaH, 1e-6)
	})
}

func TestCleanValue(t *testing.T) {
	assert.Equal(t, 298.15, cleanValue("298.15"))
	assert.Equal(t, 300.0, cleanValue("300."))
	assert.True(t, math.IsInf(cleanValue("INFINITE"), 1))
	assert.True(t, math.IsNaN(cleanValue("FUSION")))
	assert.True(t, math.IsNaN(cleanValue("")))
}
