// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package janafd exposes the thermochemical table database over HTTP.
package janafd

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/AleutianAI/janafdb/services/janaf"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServiceVersion is the janafd service version.
const ServiceVersion = "0.1.0"

// ErrorResponse is the JSON error body returned by all handlers.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is the error code (optional).
	Code string `json:"code,omitempty"`
}

// SearchResponse is the JSON body for search results.
type SearchResponse struct {
	// Query is the substring that was searched for.
	Query string `json:"query"`

	// Count is the number of matching records.
	Count int `json:"count"`

	// Results are the matching index records.
	Results []janaf.IndexRecord `json:"results"`
}

// PhaseResponse is the JSON body for a resolved phase.
type PhaseResponse struct {
	// Record is the resolved index record.
	Record janaf.IndexRecord `json:"record"`

	// Description is the table's verbatim description line.
	Description string `json:"description"`

	// Rows is the number of table rows. Raw rows carry NaN and Inf,
	// which JSON cannot represent, so values are exposed through the
	// eval endpoint instead.
	Rows int `json:"rows"`

	// Tmin and Tmax bound the full-property interpolants.
	Tmin float64 `json:"t_min"`
	Tmax float64 `json:"t_max"`
}

// EvalResponse is the JSON body for property evaluation.
type EvalResponse struct {
	// Record is the resolved index record.
	Record janaf.IndexRecord `json:"record"`

	// Property is the evaluated property name.
	Property string `json:"property"`

	// Temperatures are the requested sample points, K.
	Temperatures []float64 `json:"temperatures"`

	// Values are the interpolated property values, parallel to
	// Temperatures.
	Values []float64 `json:"values"`
}

// Handlers contains the HTTP handlers for the table database.
type Handlers struct {
	db     *janaf.DB
	logger *slog.Logger
}

// NewHandlers creates handlers over the given database. A nil logger
// gets slog.Default().
func NewHandlers(db *janaf.DB, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{db: db, logger: logger}
}

// HandleSearch handles GET /v1/janaf/search.
//
// Query Parameters:
//
//	q: Substring to match against formulas (case-sensitive) and
//	   names (case-insensitive). Required.
//
// Response:
//
//	200 OK: SearchResponse (Count may be zero)
//	400 Bad Request: Missing q parameter
func (h *Handlers) HandleSearch(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandleSearch")

	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "missing required query parameter q",
			Code:  "MISSING_QUERY",
		})
		return
	}

	results := h.db.Search(q)
	logger.Info("search complete", "query", q, "matches", len(results))

	c.JSON(http.StatusOK, SearchResponse{
		Query:   q,
		Count:   len(results),
		Results: results,
	})
}

// HandlePhase handles GET /v1/janaf/phase.
//
// Query Parameters:
//
//	formula: Exact, case-sensitive formula match (optional)
//	name: Case-insensitive name substring match (optional)
//	phase: One of the fourteen phase codes (optional)
//	filename: Exact, case-insensitive table filename (optional)
//	no_cache: Bypass the local cache for this lookup (optional)
//
// Response:
//
//	200 OK: PhaseResponse
//	400 Bad Request: Unknown phase code
//	404 Not Found: No record matches the criteria
//	409 Conflict: More than one record matches
//	502 Bad Gateway: Remote table fetch failed
//	500 Internal Server Error: Table could not be parsed
func (h *Handlers) HandlePhase(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandlePhase")

	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	p, err := h.db.GetPhaseData(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, logger, err)
		return
	}

	tmin, tmax := p.Cp.Domain()
	logger.Info("phase resolved", "filename", p.Record.Filename, "rows", len(p.Table.Rows))

	c.JSON(http.StatusOK, PhaseResponse{
		Record:      p.Record,
		Description: p.Description,
		Rows:        len(p.Table.Rows),
		Tmin:        tmin,
		Tmax:        tmax,
	})
}

// HandleEval handles GET /v1/janaf/eval.
//
// Query Parameters:
//
//	All HandlePhase criteria, plus:
//	property: cp, s, gef, hef, delta_h, delta_g, or log_kf. Required.
//	t: Comma-separated temperatures in K. Required.
//
// Response:
//
//	200 OK: EvalResponse
//	400 Bad Request: Bad property, temperature list, or phase code,
//	    or a temperature outside the interpolant's domain
//	404/409/502/500: As for HandlePhase
func (h *Handlers) HandleEval(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandleEval")

	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	property := c.Query("property")
	ts, err := parseTemperatures(c.Query("t"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_TEMPERATURES",
		})
		return
	}

	p, err := h.db.GetPhaseData(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, logger, err)
		return
	}

	ip := propertyInterpolant(p, property)
	if ip == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "unknown property " + strconv.Quote(property) + " (want cp, s, gef, hef, delta_h, delta_g, or log_kf)",
			Code:  "INVALID_PROPERTY",
		})
		return
	}

	values, err := ip.EvalSlice(ts)
	if err != nil {
		h.writeError(c, logger, err)
		return
	}

	logger.Info("evaluation complete",
		"filename", p.Record.Filename,
		"property", property,
		"points", len(ts),
	)

	c.JSON(http.StatusOK, EvalResponse{
		Record:       p.Record,
		Property:     property,
		Temperatures: ts,
		Values:       values,
	})
}

// HandleHealth handles GET /v1/janaf/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": ServiceVersion,
		"species": h.db.Catalog().Len(),
	})
}

// bindQuery binds the resolution criteria from the query string. On a
// bind failure it writes the error response and returns ok=false.
func (h *Handlers) bindQuery(c *gin.Context) (janaf.Query, bool) {
	var q janaf.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid query parameters: " + err.Error(),
			Code:  "INVALID_REQUEST",
		})
		return janaf.Query{}, false
	}
	return q, true
}

// writeError maps domain errors onto HTTP status codes.
func (h *Handlers) writeError(c *gin.Context, logger *slog.Logger, err error) {
	statusCode := http.StatusInternalServerError
	errCode := "INTERNAL"

	switch {
	case errors.Is(err, janaf.ErrInvalidPhase):
		statusCode = http.StatusBadRequest
		errCode = "INVALID_PHASE"
	case errors.Is(err, janaf.ErrOutOfRange):
		statusCode = http.StatusBadRequest
		errCode = "OUT_OF_RANGE"
	case errors.Is(err, janaf.ErrNotFound):
		statusCode = http.StatusNotFound
		errCode = "NOT_FOUND"
	case errors.Is(err, janaf.ErrAmbiguous):
		statusCode = http.StatusConflict
		errCode = "AMBIGUOUS"
	case errors.Is(err, janaf.ErrFetch):
		statusCode = http.StatusBadGateway
		errCode = "FETCH_FAILED"
	case errors.Is(err, janaf.ErrParse):
		errCode = "PARSE_FAILED"
	}

	logger.Error("request failed", "error", err, "status", statusCode)
	c.JSON(statusCode, ErrorResponse{
		Error: err.Error(),
		Code:  errCode,
	})
}

// propertyInterpolant selects the named interpolant, nil if unknown.
func propertyInterpolant(p *janaf.PhaseData, name string) *janaf.Interpolant {
	switch strings.ToLower(name) {
	case "cp":
		return p.Cp
	case "s":
		return p.S
	case "gef":
		return p.Gef
	case "hef":
		return p.Hef
	case "delta_h":
		return p.DeltaH
	case "delta_g":
		return p.DeltaG
	case "log_kf":
		return p.LogKf
	default:
		return nil
	}
}

// parseTemperatures splits a comma-separated temperature list.
func parseTemperatures(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("missing required query parameter t")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.New("temperature " + strconv.Quote(part) + " is not numeric")
		}
		out = append(out, v)
	}
	return out, nil
}

// getOrCreateRequestID gets or creates a request ID.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}
