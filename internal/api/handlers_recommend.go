// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/mynextmovie/internal/middleware"
	"github.com/tomtom215/mynextmovie/internal/recommend"
)

// Popular handles GET /api/v1/recommendations/popular
// Query parameters: genre (substring, case-insensitive), min_ratings, limit.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	minCount, perr := getOptionalIntParam(r, "min_ratings")
	if perr != nil {
		respondQueryParamError(w, perr)
		return
	}
	limit, perr := getIntParam(r, "limit", 0)
	if perr != nil {
		respondQueryParamError(w, perr)
		return
	}

	req := recommend.PopularRequest{
		Genre:     strings.TrimSpace(r.URL.Query().Get("genre")),
		MinCount:  minCount,
		Limit:     limit,
		RequestID: middleware.GetRequestID(r.Context()),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.engine.Popular(ctx, req)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondSuccess(w, resp, resp.Metadata.LatencyMS)
}

// Similar handles GET /api/v1/recommendations/similar
// Query parameters: title (exact, case-sensitive), limit.
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	limit, perr := getIntParam(r, "limit", 0)
	if perr != nil {
		respondQueryParamError(w, perr)
		return
	}

	req := recommend.SimilarRequest{
		Title:     r.URL.Query().Get("title"),
		Limit:     limit,
		RequestID: middleware.GetRequestID(r.Context()),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.engine.Similar(ctx, req)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondSuccess(w, resp, resp.Metadata.LatencyMS)
}

// Demo handles GET /api/v1/recommendations/demo
func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	report, err := h.engine.Demo(ctx)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondSuccess(w, report, 0)
}

// Status handles GET /api/v1/recommendations/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]interface{}{
		"engine": h.engine.Status(),
		"config": h.engine.GetConfig(),
	}, 0)
}
