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

// Query carries the partial identifying criteria for resolving a phase
// record. Empty fields match all records; Resolve requires the combination
// to select exactly one record.
type Query struct {
	// Formula is matched exactly, case-sensitively.
	Formula string `json:"formula,omitempty" form:"formula"`

	// Name is matched as a case-insensitive substring.
	Name string `json:"name,omitempty" form:"name"`

	// Phase is lower-cased and validated against the fourteen phase codes,
	// then matched exactly.
	Phase string `json:"phase,omitempty" form:"phase"`

	// Filename is matched exactly, case-insensitively.
	Filename string `json:"filename,omitempty" form:"filename"`

	// NoCache disables the local cache for this lookup: the table is always
	// fetched from the remote source and the response is not persisted.
	NoCache bool `json:"no_cache,omitempty" form:"no_cache"`
}

// String renders the supplied (non-empty) criteria for error messages.
func (q Query) String() string {
	var parts []string
	if q.Formula != "" {
		parts = append(parts, fmt.Sprintf("formula = %s", q.Formula))
	}
	if q.Name != "" {
		parts = append(parts, fmt.Sprintf("name = %s", q.Name))
	}
	if q.Phase != "" {
		parts = append(parts, fmt.Sprintf("phase = %s", q.Phase))
	}
	if q.Filename != "" {
		parts = append(parts, fmt.Sprintf("filename = %s", q.Filename))
	}
	if len(parts) == 0 {
		return "no criteria"
	}
	return strings.Join(parts, ", ")
}

// Search returns every record whose formula or name contains substr.
//
// Formula matching is case-sensitive while name matching is not. The
// asymmetry is inherited from the upstream JANAF tooling and preserved
// deliberately; see the notes in DESIGN.md. An empty result is valid.
func (c *Catalog) Search(substr string) []IndexRecord {
	lower := strings.ToLower(substr)
	var out []IndexRecord
	for _, rec := range c.records {
		if strings.Contains(rec.Formula, substr) ||
			strings.Contains(strings.ToLower(rec.Name), lower) {
			out = append(out, rec)
		}
	}
	return out
}

// Resolve selects the single record matching all supplied criteria.
//
// Each non-empty criterion becomes a predicate (formula exact, name
// case-insensitive substring, phase exact after validation, filename
// case-insensitive exact) and the predicates are AND'd. Zero matches fail
// with ErrNotFound naming the supplied criteria; more than one fails with
// ErrAmbiguous listing the candidates.
func (c *Catalog) Resolve(q Query) (IndexRecord, error) {
	var phase PhaseCode
	if q.Phase != "" {
		var err error
		phase, err = ParsePhaseCode(q.Phase)
		if err != nil {
			return IndexRecord{}, err
		}
	}

	nameLower := strings.ToLower(q.Name)
	filenameLower := strings.ToLower(q.Filename)

	var matches []IndexRecord
	for _, rec := range c.records {
		if q.Formula != "" && rec.Formula != q.Formula {
			continue
		}
		if q.Name != "" && !strings.Contains(strings.ToLower(rec.Name), nameLower) {
			continue
		}
		if q.Phase != "" && rec.Phase != phase {
			continue
		}
		if q.Filename != "" && strings.ToLower(rec.Filename) != filenameLower {
			continue
		}
		matches = append(matches, rec)
	}

	switch len(matches) {
	case 0:
		return IndexRecord{}, fmt.Errorf("%w: %s (provide enough information to select a unique record)", ErrNotFound, q)
	case 1:
		return matches[0], nil
	default:
		var b strings.Builder
		for _, rec := range matches {
			fmt.Fprintf(&b, "\n  %s  %s  %s  %s", rec.Formula, rec.Name, rec.Phase, rec.Filename)
		}
		return IndexRecord{}, fmt.Errorf("%w: %d records match %s:%s\nnarrow the criteria to select a unique record",
			ErrAmbiguous, len(matches), q, b.String())
	}
}
