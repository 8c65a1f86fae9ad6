// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"strategy", "outcome"}, // outcome: "ok", "not_found", "invalid", "error"
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"strategy"},
	)

	RecommendResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_results",
			Help:    "Number of movies returned per recommendation request",
			Buckets: []float64{0, 1, 3, 5, 10, 25, 50, 100},
		},
		[]string{"strategy"},
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogRatings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_ratings",
			Help: "Number of rating events in the loaded catalog",
		},
	)

	CatalogGenres = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_genres",
			Help: "Number of distinct genres in the loaded catalog",
		},
	)

	CatalogSkippedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_skipped_rows_total",
			Help: "Total number of unparsable catalog rows skipped during load",
		},
		[]string{"file"}, // "movies", "ratings"
	)

	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog loads in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"backend"},
	)

	// Genre Index Cache Metrics
	GenreIndexCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genre_index_cache_total",
			Help: "Total number of genre index cache lookups",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordRecommendation records one recommendation request
func RecordRecommendation(strategy, outcome string, duration time.Duration, results int) {
	RecommendRequestsTotal.WithLabelValues(strategy, outcome).Inc()
	RecommendDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if outcome == "ok" {
		RecommendResults.WithLabelValues(strategy).Observe(float64(results))
	}
}

// QueryObserver forwards engine measurements to Prometheus.
// It satisfies recommend.Observer.
type QueryObserver struct{}

// ObserveQuery implements recommend.Observer.
func (QueryObserver) ObserveQuery(strategy, outcome string, latency time.Duration, results int) {
	RecordRecommendation(strategy, outcome, latency, results)
}

// UpdateCatalogGauges sets the catalog size gauges
func UpdateCatalogGauges(movies, ratings, genres int) {
	CatalogMovies.Set(float64(movies))
	CatalogRatings.Set(float64(ratings))
	CatalogGenres.Set(float64(genres))
}

// RecordCatalogLoad records a completed catalog load
func RecordCatalogLoad(backend string, duration time.Duration, skippedMovies, skippedRatings int) {
	CatalogLoadDuration.WithLabelValues(backend).Observe(duration.Seconds())
	if skippedMovies > 0 {
		CatalogSkippedRows.WithLabelValues("movies").Add(float64(skippedMovies))
	}
	if skippedRatings > 0 {
		CatalogSkippedRows.WithLabelValues("ratings").Add(float64(skippedRatings))
	}
}

// RecordIndexLookup records a genre index cache lookup.
// Its signature matches algorithms.IndexCache.OnLookup.
func RecordIndexLookup(hit bool) {
	if hit {
		GenreIndexCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	GenreIndexCacheTotal.WithLabelValues("miss").Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the build version
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets the uptime gauge from the process start time
func UpdateUptime(started time.Time) {
	AppUptime.Set(time.Since(started).Seconds())
}
