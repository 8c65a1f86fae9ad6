// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

// Package main runs the interactive console menu.
//
// It reads the same configuration as the server (config.yaml and environment,
// see internal/config), loads the catalog once, and serves the menu on
// stdin/stdout. Logs go to stderr at warn level unless LOG_LEVEL says
// otherwise, so they do not interleave with the menu.
//
//	MOVIES_PATH=./movies.csv RATINGS_PATH=./ratings.csv ./mynextmovie
package main

import (
	"context"
	"errors"
	"os"

	"github.com/tomtom215/mynextmovie/internal/catalog"
	"github.com/tomtom215/mynextmovie/internal/cli"
	"github.com/tomtom215/mynextmovie/internal/config"
	"github.com/tomtom215/mynextmovie/internal/logging"
	"github.com/tomtom215/mynextmovie/internal/recommend"
	"github.com/tomtom215/mynextmovie/internal/recommend/algorithms"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.PrintBanner(os.Stdout)

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logCfg := cfg.ToLoggingConfig()
	if _, ok := os.LookupEnv("LOG_LEVEL"); !ok {
		logCfg.Level = "warn"
	}
	if _, ok := os.LookupEnv("LOG_FORMAT"); !ok {
		logCfg.Format = logging.FormatAuto
	}
	logging.Init(logCfg)

	// The menu blocks on stdin, so Ctrl-C keeps its default behavior.
	ctx := context.Background()

	cat, stats, err := catalog.Load(ctx, cfg.CatalogSource())
	cli.PrintLoadResult(os.Stdout, stats, err)
	if err != nil {
		return 1
	}

	engineCfg := cfg.ToRecommendConfig()
	var opts []algorithms.ContentOption
	if engineCfg.IndexCache.Enabled {
		opts = append(opts, algorithms.WithIndexCache(
			algorithms.NewIndexCache(engineCfg.IndexCache.MaxEntries, engineCfg.IndexCache.TTL)))
	}
	engine, err := recommend.NewEngine(engineCfg, cat, algorithms.NewPopularity(), algorithms.NewContentMatcher(opts...), logging.Logger())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create recommendation engine")
		return 1
	}

	if err := cli.NewMenu(engine, os.Stdin, os.Stdout).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Menu stopped")
		return 1
	}
	return 0
}
