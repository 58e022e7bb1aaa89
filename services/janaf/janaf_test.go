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
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	srv, _ := newTableServer(t)
	db, err := New(
		WithCacheDir(t.TempDir()),
		WithBaseURL(srv.URL+"/tables/%s.txt"),
		WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return db
}

func TestGetPhaseDataRutile(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	p, err := db.GetPhaseData(ctx, Query{Formula: "O2Ti", Name: "rutile"})
	require.NoError(t, err)

	assert.Contains(t, p.Description, "Rutile")
	assert.Equal(t, "O-062", p.Record.Filename)
	require.Len(t, p.Table.Rows, 18)

	got, err := p.Cp.EvalSlice([]float64{500, 550, 1800})
	require.NoError(t, err)
	assert.InDelta(t, 67.203, got[0], 1e-3)
	assert.InDelta(t, 68.567, got[1], 1e-3)
	assert.InDelta(t, 78.283, got[2], 1e-3)

	_, err = p.Cp.Eval(5000)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestGetPhaseDataResolutionErrors(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	t.Run("ambiguous", func(t *testing.T) {
		_, err := db.GetPhaseData(ctx, Query{Formula: "O2Ti", Phase: "cr"})
		require.ErrorIs(t, err, ErrAmbiguous)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := db.GetPhaseData(ctx, Query{Formula: "Unobtainium"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid phase", func(t *testing.T) {
		_, err := db.GetPhaseData(ctx, Query{Formula: "O2Ti", Phase: "solid"})
		require.ErrorIs(t, err, ErrInvalidPhase)
	})
}

func TestGetPhaseDataUsesCache(t *testing.T) {
	srv, requests := newTableServer(t)
	db, err := New(
		WithCacheDir(t.TempDir()),
		WithBaseURL(srv.URL+"/tables/%s.txt"),
		WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	ctx := context.Background()
	q := Query{Filename: "O-062"}

	_, err = db.GetPhaseData(ctx, q)
	require.NoError(t, err)
	_, err = db.GetPhaseData(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(1), requests.Load())

	q.NoCache = true
	_, err = db.GetPhaseData(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(2), requests.Load())
}

func TestGetPhaseDataFetchFailure(t *testing.T) {
	srv, _ := newTableServer(t)
	db, err := New(
		WithCacheDir(t.TempDir()),
		WithBaseURL(srv.URL+"/tables/%s.txt"),
		WithTimeout(2*time.Second),
	)
	require.NoError(t, err)
	srv.Close()

	_, err = db.GetPhaseData(context.Background(), Query{Filename: "O-062"})
	require.ErrorIs(t, err, ErrFetch)
}

func TestNewWithIndexSources(t *testing.T) {
	t.Run("reader", func(t *testing.T) {
		db, err := New(
			WithCacheDir(t.TempDir()),
			WithIndexReader(strings.NewReader("H2O | Water | g | H-064\n")),
		)
		require.NoError(t, err)
		assert.Equal(t, 1, db.Catalog().Len())
	})

	t.Run("malformed reader fails construction", func(t *testing.T) {
		_, err := New(
			WithCacheDir(t.TempDir()),
			WithIndexReader(strings.NewReader("H2O | Water | plasma | H-064\n")),
		)
		require.ErrorIs(t, err, ErrInvalidPhase)
	})
}

func TestConstants(t *testing.T) {
	assert.InDelta(t, 8.314472, R, 1e-9)
	assert.InDelta(t, 298.15, Tr, 1e-9)
}
