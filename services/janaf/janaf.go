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
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	// R is the molar gas constant, J/mol/K, as used by the NIST tables.
	R = 8.314472

	// Tr is the reference temperature of the tables, K.
	Tr = 298.15
)

// DB is the entry point of the package: an index catalog plus a cache-backed
// table store. Construct one with New and share it; DB is safe for
// concurrent use.
type DB struct {
	catalog *Catalog
	store   *Store
	logger  *slog.Logger
}

// dbConfig collects option state before construction.
type dbConfig struct {
	cacheDir  string
	baseURL   string
	client    HTTPClient
	timeout   time.Duration
	logger    *slog.Logger
	indexSrc  io.Reader
	indexPath string
}

// DBOption configures a DB during New.
type DBOption func(*dbConfig)

// WithCacheDir sets the cache directory. Defaults to janafdb under the
// user cache directory.
func WithCacheDir(dir string) DBOption {
	return func(c *dbConfig) {
		c.cacheDir = dir
	}
}

// WithBaseURL sets the fetch URL template. It must contain one %s verb for
// the table filename.
func WithBaseURL(url string) DBOption {
	return func(c *dbConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient injects the HTTP client used for table fetches. Takes
// precedence over WithTimeout.
func WithHTTPClient(client HTTPClient) DBOption {
	return func(c *dbConfig) {
		c.client = client
	}
}

// WithTimeout sets the per-fetch timeout of the default HTTP client.
// Ignored when WithHTTPClient is also given.
func WithTimeout(d time.Duration) DBOption {
	return func(c *dbConfig) {
		c.timeout = d
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) DBOption {
	return func(c *dbConfig) {
		c.logger = logger
	}
}

// WithIndexReader loads the species index from r instead of the embedded
// catalog. Takes precedence over WithIndexPath.
func WithIndexReader(r io.Reader) DBOption {
	return func(c *dbConfig) {
		c.indexSrc = r
	}
}

// WithIndexPath loads the species index from a file instead of the embedded
// catalog.
func WithIndexPath(path string) DBOption {
	return func(c *dbConfig) {
		c.indexPath = path
	}
}

// New constructs a DB.
//
// With no options the embedded index catalog is used, the cache lives under
// the user cache directory, and fetches go to the NIST servers with
// DefaultFetchTimeout.
func New(opts ...DBOption) (*DB, error) {
	cfg := &dbConfig{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	catalog, err := loadConfiguredCatalog(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("determining cache directory: %w", err)
		}
		cfg.cacheDir = filepath.Join(base, "janafdb")
	}

	client := cfg.client
	if client == nil {
		client = &http.Client{Timeout: cfg.timeout}
	}

	store, err := NewStore(cfg.cacheDir, cfg.baseURL, client, cfg.logger)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("database ready",
		"species", catalog.Len(),
		"cache_dir", cfg.cacheDir,
	)

	return &DB{catalog: catalog, store: store, logger: cfg.logger}, nil
}

func loadConfiguredCatalog(cfg *dbConfig) (*Catalog, error) {
	switch {
	case cfg.indexSrc != nil:
		return LoadCatalog(cfg.indexSrc)
	case cfg.indexPath != "":
		return LoadCatalogFile(cfg.indexPath)
	default:
		return DefaultCatalog()
	}
}

// Catalog returns the loaded species index.
func (db *DB) Catalog() *Catalog {
	return db.catalog
}

// Store returns the cache-backed table store.
func (db *DB) Store() *Store {
	return db.store
}

// Search returns every index record whose formula contains substr
// case-sensitively or whose name contains it case-insensitively.
func (db *DB) Search(substr string) []IndexRecord {
	return db.catalog.Search(substr)
}

// Resolve narrows the index to exactly one record matching q.
func (db *DB) Resolve(q Query) (IndexRecord, error) {
	return db.catalog.Resolve(q)
}

// GetPhaseData resolves q to a single index record, obtains its raw table
// text through the cache, and returns the parsed, interpolated phase data.
//
// Resolution failures surface ErrNotFound, ErrAmbiguous, or ErrInvalidPhase;
// a failed fetch surfaces ErrFetch and a malformed table ErrParse. With
// q.NoCache the table is fetched fresh and the cache is left untouched.
func (db *DB) GetPhaseData(ctx context.Context, q Query) (*PhaseData, error) {
	rec, err := db.catalog.Resolve(q)
	if err != nil {
		return nil, err
	}

	raw, err := db.store.ResolveData(ctx, rec, !q.NoCache)
	if err != nil {
		return nil, err
	}

	p, err := NewPhaseData(rec, raw)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", rec.Filename, err)
	}

	db.logger.Debug("phase data ready",
		"formula", rec.Formula,
		"phase", string(rec.Phase),
		"filename", rec.Filename,
		"rows", len(p.Table.Rows),
	)
	return p, nil
}
