// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/mynextmovie/internal/catalog"
)

// Strategy names a recommendation strategy.
type Strategy int

const (
	// StrategyPopularity ranks movies in a genre by mean rating.
	StrategyPopularity Strategy = iota
	// StrategySimilar ranks movies by genre overlap with a query movie.
	StrategySimilar
	// StrategyDemo runs both strategies with preset parameters.
	StrategyDemo
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyPopularity:
		return "popularity"
	case StrategySimilar:
		return "similar"
	case StrategyDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// PopularityQuery holds the parameters of a popularity ranking.
type PopularityQuery struct {
	// Genre is matched as a case-insensitive substring of each genre token.
	Genre string `json:"genre"`

	// MinCount is the minimum number of ratings a movie needs to be ranked.
	MinCount int `json:"min_count"`

	// Limit is the maximum number of results. Must be positive.
	Limit int `json:"limit"`
}

// SimilarityQuery holds the parameters of a content similarity lookup.
type SimilarityQuery struct {
	// Title must equal a catalog title exactly, including case.
	Title string `json:"title"`

	// Limit is the maximum number of results. Must be positive.
	Limit int `json:"limit"`
}

// RankedMovie is one row of a popularity ranking.
type RankedMovie struct {
	// Movie is the catalog entry.
	Movie catalog.Movie `json:"movie"`

	// AverageRating is the arithmetic mean of all rating events for the movie.
	AverageRating float64 `json:"average_rating"`

	// Count is the number of rating events for the movie.
	Count int `json:"count"`
}

// SimilarMovie is one row of a content similarity ranking.
type SimilarMovie struct {
	// Movie is the catalog entry.
	Movie catalog.Movie `json:"movie"`

	// Similarity is the cosine similarity of genre vectors, in [0, 1].
	Similarity float64 `json:"similarity"`
}

// PopularityRanker ranks movies by aggregate rating within a genre.
type PopularityRanker interface {
	// Rank returns at most q.Limit movies ordered by descending mean rating.
	Rank(ctx context.Context, c *catalog.Catalog, q PopularityQuery) ([]RankedMovie, error)
}

// ContentMatcher ranks movies by genre similarity to a query movie.
type ContentMatcher interface {
	// Similar returns at most q.Limit movies ordered by descending similarity,
	// excluding the query movie itself.
	Similar(ctx context.Context, c *catalog.Catalog, q SimilarityQuery) ([]SimilarMovie, error)
}

// PopularRequest is an engine request for a popularity ranking.
type PopularRequest struct {
	// Genre filter. Empty matches every movie with at least one genre.
	Genre string `json:"genre" validate:"max=100,nocontrol"`

	// MinCount is the rating count threshold. Defaults to
	// Config.Limits.DefaultMinRatings when nil.
	MinCount *int `json:"min_count,omitempty" validate:"omitempty,min=0"`

	// Limit is the number of results. Zero selects Config.Limits.DefaultLimit;
	// values above Config.Limits.MaxLimit are clamped.
	Limit int `json:"limit,omitempty" validate:"min=0"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// SimilarRequest is an engine request for a content similarity ranking.
type SimilarRequest struct {
	// Title of the query movie, matched exactly.
	Title string `json:"title" validate:"required,notblank,max=500,nocontrol"`

	// Limit is the number of results. Zero selects Config.Limits.DefaultLimit;
	// values above Config.Limits.MaxLimit are clamped.
	Limit int `json:"limit,omitempty" validate:"min=0"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	// RequestID echoes or generates the request identifier.
	RequestID string `json:"request_id"`

	// Strategy is the strategy that produced the results.
	Strategy string `json:"strategy"`

	// ResultCount is the number of results returned.
	ResultCount int `json:"result_count"`

	// LatencyMS is the processing time in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// CatalogFingerprint identifies the catalog snapshot that was queried.
	CatalogFingerprint string `json:"catalog_fingerprint"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// PopularResponse is the result of Engine.Popular.
type PopularResponse struct {
	// Query holds the effective parameters after defaults were applied.
	Query PopularityQuery `json:"query"`

	// Items is the ranking. Never nil; empty means nothing matched.
	Items []RankedMovie `json:"items"`

	// Metadata describes the request.
	Metadata ResponseMetadata `json:"metadata"`
}

// SimilarResponse is the result of Engine.Similar.
type SimilarResponse struct {
	// Query holds the effective parameters after defaults were applied.
	Query SimilarityQuery `json:"query"`

	// Items is the ranking. Never nil.
	Items []SimilarMovie `json:"items"`

	// Metadata describes the request.
	Metadata ResponseMetadata `json:"metadata"`
}

// DemoReport is the output of the demonstration run.
type DemoReport struct {
	// RequestID is shared by the two sub-requests of the run.
	RequestID string `json:"request_id"`

	// Genre is the first genre of the catalog vocabulary.
	Genre string `json:"genre"`

	// MinCount is the rating threshold used for the popularity part.
	MinCount int `json:"min_count"`

	// Popular is the popularity ranking for Genre.
	Popular []RankedMovie `json:"popular"`

	// QueryTitle is the title of the first catalog movie.
	QueryTitle string `json:"query_title"`

	// Similar is the similarity ranking for QueryTitle.
	Similar []SimilarMovie `json:"similar"`
}

// Metrics contains engine performance counters.
type Metrics struct {
	// RequestCount is the total number of requests received.
	RequestCount int64 `json:"request_count"`

	// PopularRequests is the number of popularity requests.
	PopularRequests int64 `json:"popular_requests"`

	// SimilarRequests is the number of similarity requests.
	SimilarRequests int64 `json:"similar_requests"`

	// DemoRequests is the number of demonstration runs.
	DemoRequests int64 `json:"demo_requests"`

	// NotFoundCount is the number of similarity requests for unknown titles.
	NotFoundCount int64 `json:"not_found_count"`

	// InvalidCount is the number of requests rejected for bad parameters.
	InvalidCount int64 `json:"invalid_count"`

	// ErrorCount is the number of requests that failed for other reasons.
	ErrorCount int64 `json:"error_count"`

	// AvgLatencyMS is the mean request latency in milliseconds.
	AvgLatencyMS float64 `json:"avg_latency_ms"`
}

// Status reports the catalog snapshot the engine serves and its counters.
type Status struct {
	// Catalog describes the loaded catalog.
	Catalog catalog.Stats `json:"catalog"`

	// Genres is the size of the genre vocabulary.
	Genres int `json:"genres"`

	// Ready is true when the catalog has at least one movie.
	Ready bool `json:"ready"`

	// Metrics are the engine counters.
	Metrics Metrics `json:"metrics"`

	// IndexCache is set when the content matcher caches genre indexes.
	IndexCache *IndexCacheStats `json:"index_cache,omitempty"`
}

// IndexCacheStats are the counters of a genre index cache.
type IndexCacheStats struct {
	Size      int   `json:"size"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
}

// IndexCacheReporter is implemented by matchers that keep per-catalog state.
// The engine reports its stats in Status and purges it when a catalog with a
// different fingerprint is installed.
type IndexCacheReporter interface {
	IndexCacheStats() (IndexCacheStats, bool)
	PurgeIndexCache()
}

// Observer receives per-request measurements. It lets the metrics layer
// record engine activity without this package importing it.
type Observer interface {
	// ObserveQuery is called once per request with its outcome label
	// ("ok", "not_found", "invalid", "error").
	ObserveQuery(strategy string, outcome string, latency time.Duration, results int)
}
