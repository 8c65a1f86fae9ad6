// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

/*
Package config loads and validates MyNextMovie configuration.

# Configuration Sources

Configuration is layered with koanf, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. A YAML file, if one is found: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/mynextmovie/config.yaml, /etc/mynextmovie/config.yml
 3. Environment variables

Only environment variables listed in the mapping table are read, so unrelated
variables in the process environment never reach the configuration.

# Environment Variables

Data:
  - MOVIES_PATH: movies CSV (default: data/movies.csv)
  - RATINGS_PATH: ratings CSV (default: data/ratings.csv)
  - CATALOG_LOADER: csv or duckdb (default: csv)
  - CATALOG_RELOAD_INTERVAL: re-read the files this often, 0 disables (default: 0)

HTTP server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Recommendation engine:
  - RECOMMEND_DEFAULT_LIMIT (10), RECOMMEND_MAX_LIMIT (100)
  - RECOMMEND_DEFAULT_MIN_RATINGS (10)
  - RECOMMEND_SAMPLE_SIZE (10), RECOMMEND_MAX_SEARCH_RESULTS (25)
  - RECOMMEND_INDEX_CACHE_ENABLED (true), RECOMMEND_INDEX_CACHE_TTL (30m),
    RECOMMEND_INDEX_CACHE_MAX_ENTRIES (4)
  - RECOMMEND_DEMO_MIN_COUNT (10), RECOMMEND_DEMO_LIMIT (3)

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS (100), RATE_LIMIT_WINDOW (1m), DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL (info), LOG_FORMAT (json), LOG_CALLER

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	logging.Init(cfg.ToLoggingConfig())
*/
package config
