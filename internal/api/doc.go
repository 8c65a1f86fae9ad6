// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

/*
Package api exposes the recommendation engine over HTTP.

Routes are served by a chi router (see SetupChi). Every response uses the
models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "query_time_ms": 2}}

# Endpoints

Health:
  - GET /api/v1/health/live
  - GET /api/v1/health/ready (503 until a non-empty catalog is loaded)

Recommendations:
  - GET /api/v1/recommendations/popular?genre=&min_ratings=&limit=
  - GET /api/v1/recommendations/similar?title=&limit=
  - GET /api/v1/recommendations/demo
  - GET /api/v1/recommendations/status

Catalog:
  - GET /api/v1/movies/sample?n=
  - GET /api/v1/movies/search?q=&limit=
  - GET /api/v1/movies/genres
  - GET /api/v1/movies/{id}

Prometheus metrics are served at /metrics.

# Errors

  - 400 VALIDATION_ERROR: a query parameter failed struct validation
  - 400 INVALID_PARAMETER: the engine rejected a parameter value
  - 404 MOVIE_NOT_FOUND: the similarity title is not in the catalog
  - 429 RATE_LIMITED: the per-IP rate limit was exceeded
  - 500 INTERNAL_ERROR: anything else
*/
package api
