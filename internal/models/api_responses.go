// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"query": {...}, "items": [...], "metadata": {...}},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 3}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "MOVIE_NOT_FOUND",
//	    "message": "Movie not found in the dataset",
//	    "details": {"title": "Toy Story"}
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Engine processing time in milliseconds (omitted when zero)
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Fields:
//   - Code: Machine-readable error code (e.g., "VALIDATION_ERROR", "MOVIE_NOT_FOUND")
//   - Message: Human-readable error message
//   - Details: Additional context (field names, constraints, etc.)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of the readiness endpoint.
type HealthStatus struct {
	Status             string  `json:"status"` // "healthy" or "degraded"
	Version            string  `json:"version"`
	CatalogLoaded      bool    `json:"catalog_loaded"`
	Movies             int     `json:"movies"`
	CatalogFingerprint string  `json:"catalog_fingerprint"`
	Uptime             float64 `json:"uptime_seconds"`
}

// TitleList is the payload of the sample titles endpoint.
type TitleList struct {
	Titles []string `json:"titles"`
	Count  int      `json:"count"`
}

// GenreList is the payload of the genres endpoint.
type GenreList struct {
	Genres []string `json:"genres"`
	Count  int      `json:"count"`
}
