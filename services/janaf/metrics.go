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
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Package-level meter for cache and fetch instrumentation. Counters are
// recorded against whatever MeterProvider the host process installs; with
// the default no-op provider they cost nothing.
var meter = otel.Meter("janafdb.store")

var (
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
	fetchTotal   metric.Int64Counter
	fetchErrors  metric.Int64Counter
	metricsOnce  sync.Once
	metricsErr   error
)

// initMetrics initializes the counters. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		cacheHits, err = meter.Int64Counter(
			"janaf_cache_hits_total",
			metric.WithDescription("Table lookups served from the local cache"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cacheMisses, err = meter.Int64Counter(
			"janaf_cache_misses_total",
			metric.WithDescription("Table lookups that required a remote fetch"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		fetchTotal, err = meter.Int64Counter(
			"janaf_fetch_total",
			metric.WithDescription("Remote table fetch attempts"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		fetchErrors, err = meter.Int64Counter(
			"janaf_fetch_errors_total",
			metric.WithDescription("Remote table fetch attempts that failed"),
		)
		if err != nil {
			metricsErr = err
		}
	})
	return metricsErr
}

// recordHit increments the cache hit counter.
func recordHit(ctx context.Context) {
	if initMetrics() == nil {
		cacheHits.Add(ctx, 1)
	}
}

// recordMiss increments the cache miss counter.
func recordMiss(ctx context.Context) {
	if initMetrics() == nil {
		cacheMisses.Add(ctx, 1)
	}
}

// recordFetch increments the fetch counter, and the error counter when the
// fetch failed.
func recordFetch(ctx context.Context, failed bool) {
	if initMetrics() == nil {
		fetchTotal.Add(ctx, 1)
		if failed {
			fetchErrors.Add(ctx, 1)
		}
	}
}
