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
	"sort"
)

// Interpolant is a one-dimensional piecewise-linear function of temperature
// reconstructed from tabulated samples.
//
// An Interpolant is total within its own domain [Tmin, Tmax] and refuses to
// extrapolate: evaluation outside the domain fails with ErrOutOfRange. The
// domain is the span of the rows the interpolant was built over, which for
// the formation properties can be narrower than the full table (rows at
// phase transitions lack formation data and are excluded).
type Interpolant struct {
	ts []float64
	ys []float64
}

// newInterpolant builds an interpolant over parallel sample slices.
// ts must be ascending (the table invariant) and non-empty.
func newInterpolant(ts, ys []float64) (*Interpolant, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("no sample points")
	}
	if len(ts) != len(ys) {
		return nil, fmt.Errorf("sample length mismatch: %d temperatures, %d values", len(ts), len(ys))
	}
	return &Interpolant{ts: ts, ys: ys}, nil
}

// Domain returns the inclusive temperature bounds within which Eval is
// defined.
func (ip *Interpolant) Domain() (tmin, tmax float64) {
	return ip.ts[0], ip.ts[len(ip.ts)-1]
}

// Eval evaluates the interpolant at temperature t.
//
// Returns ErrOutOfRange when t lies outside the domain. At a tabulated
// temperature the tabulated value is returned exactly; duplicate
// temperatures (phase transition rows) resolve to the first of the pair.
func (ip *Interpolant) Eval(t float64) (float64, error) {
	tmin, tmax := ip.Domain()
	if math.IsNaN(t) || t < tmin || t > tmax {
		return 0, fmt.Errorf("%w: %g K not in [%g, %g]", ErrOutOfRange, t, tmin, tmax)
	}

	// First sample >= t.
	i := sort.SearchFloat64s(ip.ts, t)
	if i < len(ip.ts) && ip.ts[i] == t {
		return ip.ys[i], nil
	}

	t0, t1 := ip.ts[i-1], ip.ts[i]
	y0, y1 := ip.ys[i-1], ip.ys[i]
	if t1 == t0 {
		return y0, nil
	}
	return y0 + (y1-y0)*(t-t0)/(t1-t0), nil
}

// EvalSlice evaluates the interpolant at each temperature in ts, returning
// results in the same order. The first out-of-domain temperature aborts the
// evaluation with ErrOutOfRange.
func (ip *Interpolant) EvalSlice(ts []float64) ([]float64, error) {
	out := make([]float64, len(ts))
	for i, t := range ts {
		v, err := ip.Eval(t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Interpolants groups the seven per-property interpolants built from one
// phase table.
type Interpolants struct {
	// Cp, S, Gef, and Hef span every row of the table.
	Cp  *Interpolant
	S   *Interpolant
	Gef *Interpolant
	Hef *Interpolant

	// DeltaH, DeltaG, and LogKf span only the rows with finite DeltaH.
	// Phase transition rows lack formation data; excluding them keeps
	// these three interpolants continuous within their (narrower) domain.
	DeltaH *Interpolant
	DeltaG *Interpolant
	LogKf  *Interpolant
}

// BuildInterpolants constructs the seven property interpolants from a
// cleaned table. Fails when the table has no rows, or when no row carries
// finite formation data.
func BuildInterpolants(table RawTable) (*Interpolants, error) {
	n := len(table.Rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrParse)
	}

	ts := make([]float64, n)
	cp := make([]float64, n)
	s := make([]float64, n)
	gef := make([]float64, n)
	hef := make([]float64, n)
	var fts, dh, dg, lkf []float64

	for i, row := range table.Rows {
		ts[i] = row.T
		cp[i] = row.Cp
		s[i] = row.S
		gef[i] = row.GmHoverT
		hef[i] = row.HmH

		if isFinite(row.DeltaH) {
			fts = append(fts, row.T)
			dh = append(dh, row.DeltaH)
			dg = append(dg, row.DeltaG)
			lkf = append(lkf, row.LogKf)
		}
	}

	out := &Interpolants{}
	var err error
	if out.Cp, err = newInterpolant(ts, cp); err != nil {
		return nil, fmt.Errorf("building cp interpolant: %w", err)
	}
	if out.S, err = newInterpolant(ts, s); err != nil {
		return nil, fmt.Errorf("building S interpolant: %w", err)
	}
	if out.Gef, err = newInterpolant(ts, gef); err != nil {
		return nil, fmt.Errorf("building gef interpolant: %w", err)
	}
	if out.Hef, err = newInterpolant(ts, hef); err != nil {
		return nil, fmt.Errorf("building hef interpolant: %w", err)
	}
	if out.DeltaH, err = newInterpolant(fts, dh); err != nil {
		return nil, fmt.Errorf("building DeltaH interpolant: %w", err)
	}
	if out.DeltaG, err = newInterpolant(fts, dg); err != nil {
		return nil, fmt.Errorf("building DeltaG interpolant: %w", err)
	}
	if out.LogKf, err = newInterpolant(fts, lkf); err != nil {
		return nil, fmt.Errorf("building logKf interpolant: %w", err)
	}
	return out, nil
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
