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
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the fetch template for the NIST JANAF servers. The
// record filename is substituted for the %s verb.
const DefaultBaseURL = "https://janaf.nist.gov/tables/%s.txt"

// DefaultFetchTimeout bounds a single table fetch. There is no retry, so
// this is also the worst-case latency of a cache miss.
const DefaultFetchTimeout = 30 * time.Second

// HTTPClient allows injecting mock HTTP clients for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Store resolves a record's raw table text: local cache hit, or a single
// remote fetch followed by cache population.
//
// The cache is one file per filename under a fixed directory; the file's
// mere existence signals a hit. Entries are written with a temp-file and
// atomic rename so a concurrent reader never observes a partial file.
// Concurrent fetches for the same filename within one process are
// deduplicated with singleflight.
//
// Safe for concurrent use.
type Store struct {
	dir     string
	baseURL string
	client  HTTPClient
	logger  *slog.Logger
	flight  singleflight.Group
}

// NewStore creates a Store over the given cache directory, creating the
// directory if needed. baseURL must contain one %s verb for the filename;
// empty means DefaultBaseURL. A nil client gets an http.Client with
// DefaultFetchTimeout; a nil logger gets slog.Default().
func NewStore(dir, baseURL string, client HTTPClient, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", dir, err)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.Contains(baseURL, "%s") {
		return nil, fmt.Errorf("base URL %q has no %%s verb for the filename", baseURL)
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, baseURL: baseURL, client: client, logger: logger}, nil
}

// Dir returns the cache directory path.
func (s *Store) Dir() string {
	return s.dir
}

// EntryPath returns the cache file path for a table filename.
func (s *Store) EntryPath(filename string) string {
	return filepath.Join(s.dir, filename+".txt")
}

// HasEntry reports whether a cache entry exists for filename.
func (s *Store) HasEntry(filename string) bool {
	_, err := os.Stat(s.EntryPath(filename))
	return err == nil
}

// ResolveData returns the raw table text for rec.
//
// With useCache, an existing entry keyed by rec.Filename is returned with
// no network access; otherwise a single GET is issued and, on success, the
// response body is persisted verbatim as the entry before being returned.
// Without useCache the fetch always happens and nothing is persisted.
// A failed fetch returns ErrFetch; there is no retry and no fallback.
func (s *Store) ResolveData(ctx context.Context, rec IndexRecord, useCache bool) (string, error) {
	key := fmt.Sprintf("%s/%t", rec.Filename, useCache)
	v, err, _ := s.flight.Do(key, func() (any, error) {
		return s.resolveData(ctx, rec, useCache)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *Store) resolveData(ctx context.Context, rec IndexRecord, useCache bool) (string, error) {
	if useCache {
		data, err := os.ReadFile(s.EntryPath(rec.Filename))
		if err == nil {
			recordHit(ctx)
			s.logger.Debug("cache hit", "filename", rec.Filename)
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("reading cache entry for %s: %w", rec.Filename, err)
		}
		recordMiss(ctx)
	}

	text, err := s.fetch(ctx, rec.Filename)
	if err != nil {
		return "", err
	}

	if useCache {
		if err := s.writeEntry(rec.Filename, text); err != nil {
			return "", err
		}
		s.logger.Info("cached table", "filename", rec.Filename, "bytes", len(text))
	}

	return text, nil
}

// fetch issues the single GET against the fetch template.
func (s *Store) fetch(ctx context.Context, filename string) (string, error) {
	url := fmt.Sprintf(s.baseURL, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: creating request for %s: %v", ErrFetch, url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		recordFetch(ctx, true)
		return "", fmt.Errorf("%w: GET %s: %v", ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		recordFetch(ctx, true)
		return "", fmt.Errorf("%w: GET %s returned status %s", ErrFetch, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		recordFetch(ctx, true)
		return "", fmt.Errorf("%w: reading response for %s: %v", ErrFetch, url, err)
	}

	recordFetch(ctx, false)
	s.logger.Debug("fetched table", "url", url, "bytes", len(body))
	return string(body), nil
}

// writeEntry persists text as the cache entry for filename. The write goes
// to a temp file in the cache directory and is renamed into place so a
// concurrent reader sees either the old entry or the complete new one.
func (s *Store) writeEntry(filename, text string) error {
	tmp, err := os.CreateTemp(s.dir, "."+filename+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp cache file for %s: %w", filename, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing cache entry for %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing cache entry for %s: %w", filename, err)
	}

	if err := os.Rename(tmpName, s.EntryPath(filename)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("installing cache entry for %s: %w", filename, err)
	}
	return nil
}

// Entries returns the filenames (without extension) of all cache entries.
func (s *Store) Entries() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("listing cache entries: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".txt"))
	}
	return names, nil
}

// Clear deletes all cache entries and returns how many were removed.
// Manual deletion is the only way an entry stops being authoritative.
func (s *Store) Clear() (int, error) {
	names, err := s.Entries()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, name := range names {
		if err := os.Remove(s.EntryPath(name)); err != nil {
			return removed, fmt.Errorf("removing cache entry %s: %w", name, err)
		}
		removed++
	}
	return removed, nil
}
