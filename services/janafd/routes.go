// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package janafd

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all table database routes with the router.
//
// Description:
//
//	Registers all /v1/janaf/* endpoints with the given Gin router group.
//	The router group should already have any required middleware applied.
//
// Inputs:
//
//	rg - Gin router group (typically /v1)
//	handlers - The handlers instance
//
// Endpoints:
//
//	GET /v1/janaf/search - Substring search over the species index
//	GET /v1/janaf/phase - Resolve one phase and report its table bounds
//	GET /v1/janaf/eval - Evaluate a property at given temperatures
//	GET /v1/janaf/health - Health check
//
// Example:
//
//	db, _ := janaf.New()
//	handlers := janafd.NewHandlers(db, logger)
//
//	v1 := router.Group("/v1")
//	janafd.RegisterRoutes(v1, handlers)
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	grp := rg.Group("/janaf")
	{
		grp.GET("/search", handlers.HandleSearch)
		grp.GET("/phase", handlers.HandlePhase)
		grp.GET("/eval", handlers.HandleEval)
		grp.GET("/health", handlers.HandleHealth)
	}
}

// NewRouter builds a gin engine with the table database mounted under
// /v1. Release mode is the caller's responsibility.
func NewRouter(handlers *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	v1 := router.Group("/v1")
	RegisterRoutes(v1, handlers)
	return router
}
