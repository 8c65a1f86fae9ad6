// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/mynextmovie/internal/catalog"
)

// Outcome labels passed to Observer.ObserveQuery.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Engine serves popularity and similarity requests over a catalog snapshot.
// It is safe for concurrent use. The catalog can be swapped with SetCatalog
// while requests are in flight; each request reads one snapshot.
type Engine struct {
	config *Config
	logger zerolog.Logger

	ranker  PopularityRanker
	matcher ContentMatcher

	catalog  atomic.Pointer[catalog.Catalog]
	observer atomic.Pointer[observerHolder]

	// Metrics
	requestCount    atomic.Int64
	popularRequests atomic.Int64
	similarRequests atomic.Int64
	demoRequests    atomic.Int64
	notFoundCount   atomic.Int64
	invalidCount    atomic.Int64
	errorCount      atomic.Int64
	latencyNanos    atomic.Int64
}

type observerHolder struct {
	o Observer
}

// NewEngine creates an engine serving c with the given strategies.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, c *catalog.Catalog, ranker PopularityRanker, matcher ContentMatcher, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if ranker == nil {
		return nil, errors.New("popularity ranker is required")
	}
	if matcher == nil {
		return nil, errors.New("content matcher is required")
	}

	e := &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		ranker:  ranker,
		matcher: matcher,
	}
	e.SetCatalog(c)
	return e, nil
}

// SetCatalog replaces the catalog snapshot served by the engine.
// Cached genre indexes are dropped when the fingerprint changes.
func (e *Engine) SetCatalog(c *catalog.Catalog) {
	prev := e.catalog.Swap(c)
	if prev != nil && prev.Fingerprint() != c.Fingerprint() {
		if r, ok := e.matcher.(IndexCacheReporter); ok {
			r.PurgeIndexCache()
		}
	}
	e.logger.Info().
		Int("movies", c.Len()).
		Int("ratings", len(c.Ratings())).
		Str("fingerprint", c.FingerprintHex()).
		Msg("catalog snapshot installed")
}

// Catalog returns the current catalog snapshot.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog.Load()
}

// SetObserver registers an observer for per-request measurements.
func (e *Engine) SetObserver(o Observer) {
	e.observer.Store(&observerHolder{o: o})
}

// Popular ranks movies in a genre by mean rating.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Popular(ctx context.Context, req PopularRequest) (*PopularResponse, error) {
	start := time.Now()
	e.requestCount.Add(1)
	e.popularRequests.Add(1)

	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	logger := e.createRequestLogger(req.RequestID, StrategyPopularity)

	q, err := e.preparePopular(req)
	if err != nil {
		e.finish(StrategyPopularity, start, 0, err, logger)
		return nil, err
	}

	snapshot := e.catalog.Load()
	logger.Debug().
		Str("genre", q.Genre).
		Int("min_count", q.MinCount).
		Int("limit", q.Limit).
		Msg("processing popularity request")

	items, err := e.ranker.Rank(ctx, snapshot, q)
	e.finish(StrategyPopularity, start, len(items), err, logger)
	if err != nil {
		return nil, fmt.Errorf("popularity ranking: %w", err)
	}
	if items == nil {
		items = []RankedMovie{}
	}

	return &PopularResponse{
		Query:    q,
		Items:    items,
		Metadata: e.buildMetadata(req.RequestID, StrategyPopularity, len(items), snapshot, start),
	}, nil
}

// Similar ranks movies by genre similarity to the movie titled req.Title.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Similar(ctx context.Context, req SimilarRequest) (*SimilarResponse, error) {
	start := time.Now()
	e.requestCount.Add(1)
	e.similarRequests.Add(1)

	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	logger := e.createRequestLogger(req.RequestID, StrategySimilar)

	q, err := e.prepareSimilar(req)
	if err != nil {
		e.finish(StrategySimilar, start, 0, err, logger)
		return nil, err
	}

	snapshot := e.catalog.Load()
	logger.Debug().
		Str("title", q.Title).
		Int("limit", q.Limit).
		Msg("processing similarity request")

	items, err := e.matcher.Similar(ctx, snapshot, q)
	e.finish(StrategySimilar, start, len(items), err, logger)
	if err != nil {
		return nil, fmt.Errorf("content similarity: %w", err)
	}
	if items == nil {
		items = []SimilarMovie{}
	}

	return &SimilarResponse{
		Query:    q,
		Items:    items,
		Metadata: e.buildMetadata(req.RequestID, StrategySimilar, len(items), snapshot, start),
	}, nil
}

// Demo runs the demonstration: the top movies of the first vocabulary genre,
// and the movies most similar to the first catalog movie. An empty catalog
// yields an empty report.
func (e *Engine) Demo(ctx context.Context) (*DemoReport, error) {
	e.demoRequests.Add(1)
	snapshot := e.catalog.Load()
	report := &DemoReport{
		RequestID: uuid.New().String(),
		MinCount:  e.config.Demo.MinCount,
		Popular:   []RankedMovie{},
		Similar:   []SimilarMovie{},
	}
	logger := e.createRequestLogger(report.RequestID, StrategyDemo)

	genres := snapshot.Genres()
	if len(genres) > 0 {
		report.Genre = genres[0]
		minCount := e.config.Demo.MinCount
		popular, err := e.Popular(ctx, PopularRequest{
			Genre:    report.Genre,
			MinCount:  &minCount,
			Limit:     e.config.Demo.Limit,
			RequestID: report.RequestID,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("demo popularity failed")
			return nil, fmt.Errorf("demo popularity: %w", err)
		}
		report.Popular = popular.Items
	}

	if !snapshot.Empty() {
		report.QueryTitle = snapshot.Movies()[0].Title
		similar, err := e.Similar(ctx, SimilarRequest{
			Title:     report.QueryTitle,
			Limit:     e.config.Demo.Limit,
			RequestID: report.RequestID,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("demo similarity failed")
			return nil, fmt.Errorf("demo similarity: %w", err)
		}
		report.Similar = similar.Items
	}

	logger.Debug().
		Str("genre", report.Genre).
		Int("popular", len(report.Popular)).
		Int("similar", len(report.Similar)).
		Msg("demo completed")
	return report, nil
}

// Genres returns the genre vocabulary of the current catalog in first-seen order.
func (e *Engine) Genres() []string {
	return e.catalog.Load().Genres()
}

// SampleTitles returns the first n catalog titles. A non-positive n selects
// Config.Limits.SampleSize.
func (e *Engine) SampleTitles(n int) []string {
	if n <= 0 {
		n = e.config.Limits.SampleSize
	}
	return e.catalog.Load().SampleTitles(n)
}

// SearchTitles finds movies whose title contains query, ignoring case.
// limit is bounded by Config.Limits.MaxSearchResults.
func (e *Engine) SearchTitles(query string, limit int) []catalog.Movie {
	if limit <= 0 || limit > e.config.Limits.MaxSearchResults {
		limit = e.config.Limits.MaxSearchResults
	}
	return e.catalog.Load().SearchTitles(query, limit)
}

// Status reports the served catalog and engine counters.
func (e *Engine) Status() Status {
	snapshot := e.catalog.Load()
	st := Status{
		Catalog: snapshot.Stats(),
		Genres:  len(snapshot.Genres()),
		Ready:   !snapshot.Empty(),
		Metrics: e.GetMetrics(),
	}
	if r, ok := e.matcher.(IndexCacheReporter); ok {
		if stats, enabled := r.IndexCacheStats(); enabled {
			st.IndexCache = &stats
		}
	}
	return st
}

// Movie returns the movie with the given id from the current catalog.
func (e *Engine) Movie(id int) (catalog.Movie, bool) {
	return e.catalog.Load().MovieByID(id)
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount:    e.requestCount.Load(),
		PopularRequests: e.popularRequests.Load(),
		SimilarRequests: e.similarRequests.Load(),
		DemoRequests:    e.demoRequests.Load(),
		NotFoundCount:   e.notFoundCount.Load(),
		InvalidCount:    e.invalidCount.Load(),
		ErrorCount:      e.errorCount.Load(),
	}
	if m.RequestCount > 0 {
		m.AvgLatencyMS = float64(e.latencyNanos.Load()) / float64(m.RequestCount) / float64(time.Millisecond)
	}
	return m
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// preparePopular applies defaults and bounds to a popularity request.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) preparePopular(req PopularRequest) (PopularityQuery, error) {
	limit, err := e.effectiveLimit(req.Limit)
	if err != nil {
		return PopularityQuery{}, err
	}

	minCount := e.config.Limits.DefaultMinRatings
	if req.MinCount != nil {
		minCount = *req.MinCount
	}
	if err := ValidateMinCount(minCount); err != nil {
		return PopularityQuery{}, err
	}

	return PopularityQuery{Genre: req.Genre, MinCount: minCount, Limit: limit}, nil
}

// prepareSimilar applies defaults and bounds to a similarity request.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareSimilar(req SimilarRequest) (SimilarityQuery, error) {
	limit, err := e.effectiveLimit(req.Limit)
	if err != nil {
		return SimilarityQuery{}, err
	}
	return SimilarityQuery{Title: req.Title, Limit: limit}, nil
}

// effectiveLimit maps zero to the default and clamps to the maximum.
func (e *Engine) effectiveLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, NewInvalidParameter("limit", limit, "must be non-negative")
	}
	if limit == 0 {
		limit = e.config.Limits.DefaultLimit
	}
	if limit > e.config.Limits.MaxLimit {
		limit = e.config.Limits.MaxLimit
	}
	return limit, nil
}

// createRequestLogger creates a logger with request context.
func (e *Engine) createRequestLogger(requestID string, s Strategy) zerolog.Logger {
	return e.logger.With().
		Str("request_id", requestID).
		Str("strategy", s.String()).
		Logger()
}

// finish updates counters, notifies the observer and logs the outcome.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) finish(s Strategy, start time.Time, results int, err error, logger zerolog.Logger) {
	latency := time.Since(start)
	e.latencyNanos.Add(int64(latency))

	outcome := OutcomeOf(err)
	switch outcome {
	case OutcomeNotFound:
		e.notFoundCount.Add(1)
	case OutcomeInvalid:
		e.invalidCount.Add(1)
	case OutcomeError:
		e.errorCount.Add(1)
	}

	if h := e.observer.Load(); h != nil && h.o != nil {
		h.o.ObserveQuery(s.String(), outcome, latency, results)
	}

	event := logger.Debug()
	if outcome == OutcomeError {
		event = logger.Warn().Err(err)
	} else if err != nil {
		event = event.Str("reason", err.Error())
	}
	event.
		Str("outcome", outcome).
		Int("returned", results).
		Dur("latency", latency).
		Msg("recommendation complete")
}

// buildMetadata constructs response metadata.
func (e *Engine) buildMetadata(requestID string, s Strategy, results int, c *catalog.Catalog, start time.Time) ResponseMetadata {
	return ResponseMetadata{
		RequestID:          requestID,
		Strategy:           s.String(),
		ResultCount:        results,
		LatencyMS:          time.Since(start).Milliseconds(),
		CatalogFingerprint: c.FingerprintHex(),
		Timestamp:          time.Now(),
	}
}

// OutcomeOf classifies an error into an outcome label.
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrInvalidParameter):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
