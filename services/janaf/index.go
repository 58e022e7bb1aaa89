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
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// defaultIndex holds the raw bytes of the phase index that ships with this
// module. It is baked into the binary at compile time so a DB works out of
// the box; deployments that carry the full NIST index file can load it with
// WithIndexPath or LoadCatalog instead.
//
//go:embed janaf_index.txt
var defaultIndex []byte

// IndexRecord is one row of the JANAF phase index.
//
// Filename is the stable join key: it names both the local cache entry and
// the table resource on the NIST servers.
type IndexRecord struct {
	// Formula is the chemical formula with elements in index order
	// (e.g. "O2Ti").
	Formula string `json:"formula"`

	// Name is the free-text species name (e.g. "Titanium Oxide, Rutile").
	Name string `json:"name"`

	// Phase is the phase code for this row.
	Phase PhaseCode `json:"phase"`

	// Filename identifies the table file, without extension (e.g. "O-062").
	Filename string `json:"filename"`
}

// Catalog is the in-memory phase index: an ordered, read-only collection of
// IndexRecords loaded once at construction. Safe to share across goroutines.
type Catalog struct {
	records []IndexRecord
}

// LoadCatalog reads a pipe-delimited phase index from r.
//
// Each line holds four fields, "formula | name | phase | filename", with no
// header. Whitespace is trimmed from every field and the phase code is
// validated against the closed enumeration. Loading fails on the first
// structurally malformed line; there is no partial load.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var records []IndexRecord

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != 4 {
			return nil, fmt.Errorf("index line %d: want 4 pipe-delimited fields, got %d", lineNo, len(fields))
		}

		phase, err := ParsePhaseCode(fields[2])
		if err != nil {
			return nil, fmt.Errorf("index line %d: %w", lineNo, err)
		}

		records = append(records, IndexRecord{
			Formula:  strings.TrimSpace(fields[0]),
			Name:     strings.TrimSpace(fields[1]),
			Phase:    phase,
			Filename: strings.TrimSpace(fields[3]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("index is empty")
	}

	return &Catalog{records: records}, nil
}

// LoadCatalogFile reads a phase index from the file at path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening index %s: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// DefaultCatalog loads the index that ships embedded in this module.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultIndex))
}

// Len returns the number of index records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns a copy of all index records in index order.
func (c *Catalog) Records() []IndexRecord {
	out := make([]IndexRecord, len(c.records))
	copy(out, c.records)
	return out
}
