// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package api

import (
	"time"

	"github.com/tomtom215/mynextmovie/internal/recommend"
)

// defaultRequestTimeout bounds engine work per request.
const defaultRequestTimeout = 10 * time.Second

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_health.go: liveness and readiness probes
//   - handlers_recommend.go: popularity, similarity, demo and status
//   - handlers_movies.go: catalog browsing
type Handler struct {
	engine         *recommend.Engine
	version        string
	startTime      time.Time
	requestTimeout time.Duration
}

// NewHandler creates a new API handler serving engine.
func NewHandler(engine *recommend.Engine, version string) *Handler {
	return &Handler{
		engine:         engine,
		version:        version,
		startTime:      time.Now(),
		requestTimeout: defaultRequestTimeout,
	}
}
