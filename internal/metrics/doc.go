// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry with promauto and are
served by promhttp at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendation:
  - recommend_requests_total{strategy,outcome}
  - recommend_duration_seconds{strategy}
  - recommend_results{strategy}

Catalog:
  - catalog_movies, catalog_ratings, catalog_genres
  - catalog_skipped_rows_total{file}
  - catalog_load_duration_seconds{backend}
  - genre_index_cache_total{result}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Application:
  - app_info{version,go_version}, app_uptime_seconds

# Wiring

The engine reports through QueryObserver, which satisfies recommend.Observer
without this package importing the engine:

	engine.SetObserver(metrics.QueryObserver{})
	indexCache.OnLookup(metrics.RecordIndexLookup)
*/
package metrics
