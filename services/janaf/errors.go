// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package janaf provides programmatic access to the NIST-JANAF thermochemical
// tables.
//
// The package resolves a unique phase record from the static JANAF index,
// retrieves its tabulated data (from a local flat-file cache or from the NIST
// servers), parses and cleans the legacy text format, and exposes each
// thermodynamic property as a piecewise-linear function of temperature.
//
// Typical usage:
//
//	db, err := janaf.New(janaf.WithCacheDir("~/.janafdb/cache"))
//	if err != nil { ... }
//	p, err := db.GetPhaseData(ctx, janaf.Query{Formula: "O2Ti", Name: "Rutile", Phase: "cr"})
//	if err != nil { ... }
//	cp, err := p.Cp.Eval(500) // heat capacity in J/mol/K at 500 K
//
// # Resolution Protocol
//
// GetPhaseData resolves exactly one index record before any data access.
// Zero matches fail with ErrNotFound, more than one with ErrAmbiguous; the
// caller must narrow the criteria. A resolved record's filename is the join
// key to both the cache and the remote resource.
//
// # Cache Semantics
//
// The cache is an unmanaged flat-file store: one file per table under the
// cache directory. An entry, once written, is authoritative for all future
// lookups until manually deleted. There is no eviction, no invalidation, and
// no write-back to the remote source.
//
// # Thread Safety
//
// A DB is safe for concurrent use. The index is loaded once and immutable;
// concurrent fetches for the same filename are deduplicated so a file is
// downloaded at most once at a time.
package janaf

import (
	"errors"
)

// Sentinel errors for record resolution, data retrieval, parsing, and
// interpolation. All errors returned by this package wrap one of these;
// check with errors.Is.
var (
	// ErrInvalidPhase is returned when a supplied phase code is not one of
	// the fourteen codes used by the JANAF index.
	ErrInvalidPhase = errors.New("invalid phase code")

	// ErrNotFound is returned when no index record matches the supplied
	// criteria.
	ErrNotFound = errors.New("no matching phase record")

	// ErrAmbiguous is returned when more than one index record matches the
	// supplied criteria. The caller must narrow the criteria to select a
	// unique record.
	ErrAmbiguous = errors.New("criteria match multiple phase records")

	// ErrFetch is returned when the single network attempt against the
	// remote table source fails. There is no retry.
	ErrFetch = errors.New("fetching table data failed")

	// ErrParse is returned when a table payload is structurally unreadable
	// (wrong field count, missing header). Individual malformed values do
	// not cause this error; they are absorbed as NaN.
	ErrParse = errors.New("unparseable table data")

	// ErrOutOfRange is returned when an interpolant is evaluated outside
	// the temperature domain of its tabulated rows. No extrapolation is
	// performed.
	ErrOutOfRange = errors.New("temperature outside tabulated range")
)
