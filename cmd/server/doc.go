// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

/*
Package main is the entry point for the MyNextMovie HTTP server.

The server loads a MovieLens-style catalog (movies.csv and ratings.csv) once,
then answers popularity and content-similarity queries over a read-only JSON
API. Everything long-lived runs under a suture v4 supervisor tree:

	RootSupervisor ("mynextmovie")
	├── BackgroundSupervisor ("background-layer")
	│   ├── UptimeService
	│   └── CatalogReloadService (CATALOG_RELOAD_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Startup order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog: csv or duckdb loader, metrics for rows read and skipped
 4. Engine: popularity ranker and content matcher with a genre index cache
 5. HTTP: chi router with request ID, CORS, rate limiting and Prometheus
 6. Supervisor tree, then wait for SIGINT or SIGTERM

# Configuration

	MOVIES_PATH=data/movies.csv
	RATINGS_PATH=data/ratings.csv
	CATALOG_LOADER=csv           # csv or duckdb
	HTTP_PORT=8080
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json, console or auto

See internal/config for the full list.

# Example

	MOVIES_PATH=./movies.csv RATINGS_PATH=./ratings.csv ./mynextmovie-server
	curl 'localhost:8080/api/v1/recommendations/popular?genre=Comedy&min_ratings=50&limit=5'
	curl 'localhost:8080/api/v1/recommendations/similar?title=Toy%20Story%20(1995)'

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for HTTP_SHUTDOWN_TIMEOUT.
*/
package main
