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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	require.NoError(t, err)
	return c
}

func TestCatalogSearch(t *testing.T) {
	c := testCatalog(t)

	t.Run("formula match is case sensitive", func(t *testing.T) {
		// "O2T" hits the three TiO2 formulas and no species name.
		upper := c.Search("O2T")
		require.Len(t, upper, 3)
		for _, rec := range upper {
			assert.Equal(t, "O2Ti", rec.Formula)
		}

		// Lower-cased it matches neither a formula nor a name.
		assert.Empty(t, c.Search("o2t"))
	})

	t.Run("name match is case insensitive", func(t *testing.T) {
		lower := c.Search("rutile")
		upper := c.Search("RUTILE")
		require.Len(t, lower, 1)
		assert.Equal(t, lower, upper)
		assert.Equal(t, "O-062", lower[0].Filename)
	})

	t.Run("charged species are distinct formulas", func(t *testing.T) {
		minus := c.Search("Rb-")
		require.Len(t, minus, 1)
		assert.Equal(t, "Rb-007", minus[0].Filename)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, c.Search("unobtainium"))
	})
}

func TestCatalogResolve(t *testing.T) {
	c := testCatalog(t)

	t.Run("unique match", func(t *testing.T) {
		rec, err := c.Resolve(Query{Formula: "O2Ti", Name: "rutile", Phase: "cr"})
		require.NoError(t, err)
		assert.Equal(t, "O-062", rec.Filename)
		assert.Equal(t, PhaseCrystal, rec.Phase)
	})

	t.Run("filename alone is unique", func(t *testing.T) {
		rec, err := c.Resolve(Query{Filename: "o-063"})
		require.NoError(t, err)
		assert.Equal(t, "Titanium Oxide, Anatase", rec.Name)
	})

	t.Run("formula and phase still ambiguous", func(t *testing.T) {
		// Rutile and anatase share formula O2Ti and phase cr.
		_, err := c.Resolve(Query{Formula: "O2Ti", Phase: "cr"})
		require.ErrorIs(t, err, ErrAmbiguous)
		assert.Contains(t, err.Error(), "2 records match")
		assert.Contains(t, err.Error(), "O-062")
		assert.Contains(t, err.Error(), "O-063")
	})

	t.Run("not found names the criteria", func(t *testing.T) {
		_, err := c.Resolve(Query{Formula: "O2Ti", Phase: "aq"})
		require.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "formula = O2Ti")
		assert.Contains(t, err.Error(), "phase = aq")
	})

	t.Run("invalid phase fails before matching", func(t *testing.T) {
		_, err := c.Resolve(Query{Formula: "O2Ti", Phase: "solid"})
		require.ErrorIs(t, err, ErrInvalidPhase)
	})

	t.Run("formula is case sensitive", func(t *testing.T) {
		_, err := c.Resolve(Query{Formula: "o2ti"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("name substring narrows", func(t *testing.T) {
		rec, err := c.Resolve(Query{Name: "anatase"})
		require.NoError(t, err)
		assert.Equal(t, "O-063", rec.Filename)
	})

	t.Run("empty query is ambiguous", func(t *testing.T) {
		_, err := c.Resolve(Query{})
		require.ErrorIs(t, err, ErrAmbiguous)
	})
}

func TestQueryString(t *testing.T) {
	assert.Equal(t, "no criteria", Query{}.String())
	assert.Equal(t, "formula = H2O, phase = g", Query{Formula: "H2O", Phase: "g"}.String())
}
