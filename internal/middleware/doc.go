// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - RequestID: UUID-based request tracking; IDs flow into the logging context
  - AccessLog: one structured zerolog entry per request
  - PrometheusMetrics: request count, latency and in-flight gauges labelled
    by chi route pattern

The functions use the http.HandlerFunc form. The api package adapts them to
chi's func(http.Handler) http.Handler with a one-line wrapper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
