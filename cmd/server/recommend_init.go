// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mynextmovie/internal/catalog"
	"github.com/tomtom215/mynextmovie/internal/config"
	"github.com/tomtom215/mynextmovie/internal/logging"
	"github.com/tomtom215/mynextmovie/internal/metrics"
	"github.com/tomtom215/mynextmovie/internal/recommend"
	"github.com/tomtom215/mynextmovie/internal/recommend/algorithms"
)

// loadCatalog reads the configured files and records load metrics.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	cat, stats, err := catalog.Load(ctx, cfg.CatalogSource())
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	metrics.RecordCatalogLoad(string(stats.Backend), stats.Duration, stats.SkippedMovies, stats.SkippedRatings)
	metrics.UpdateCatalogGauges(cat.Len(), len(cat.Ratings()), len(cat.Genres()))

	event := logging.Info()
	if stats.SkippedMovies+stats.SkippedRatings > 0 {
		event = logging.Warn()
	}
	event.
		Str("backend", string(stats.Backend)).
		Int("movies", stats.MoviesRead).
		Int("ratings", stats.RatingsRead).
		Int("skipped_movies", stats.SkippedMovies).
		Int("skipped_ratings", stats.SkippedRatings).
		Int("orphan_ratings", cat.OrphanRatings()).
		Str("fingerprint", cat.FingerprintHex()).
		Dur("duration", stats.Duration).
		Msg("Catalog loaded")

	return cat, nil
}

// initRecommend builds the engine over cat. The genre index cache reports
// hits and misses to Prometheus and the engine reports every query.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, cat *catalog.Catalog, logger zerolog.Logger) (*recommend.Engine, error) {
	engineCfg := cfg.ToRecommendConfig()

	var opts []algorithms.ContentOption
	if engineCfg.IndexCache.Enabled {
		ic := algorithms.NewIndexCache(engineCfg.IndexCache.MaxEntries, engineCfg.IndexCache.TTL)
		ic.OnLookup(metrics.RecordIndexLookup)
		opts = append(opts, algorithms.WithIndexCache(ic))
	}

	engine, err := recommend.NewEngine(engineCfg, cat, algorithms.NewPopularity(), algorithms.NewContentMatcher(opts...), logger)
	if err != nil {
		return nil, err
	}
	engine.SetObserver(metrics.QueryObserver{})

	logger.Info().
		Int("default_limit", engineCfg.Limits.DefaultLimit).
		Int("max_limit", engineCfg.Limits.MaxLimit).
		Int("default_min_ratings", engineCfg.Limits.DefaultMinRatings).
		Bool("index_cache", engineCfg.IndexCache.Enabled).
		Msg("Recommendation engine initialized")

	return engine, nil
}
