// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

/*
Package services adapts server components to suture's Serve(ctx) error model.

# Available Services

HTTPServerService:
  - Runs ListenAndServe in a goroutine
  - Shuts the server down with a timeout when ctx is canceled
  - http.ErrServerClosed is a clean stop

CatalogReloadService:
  - Re-reads the catalog files every CATALOG_RELOAD_INTERVAL
  - Swaps the new snapshot into the engine only when its fingerprint changed
  - Keeps the current snapshot on failure; returns an error after repeated
    failures so suture restarts it with backoff

UptimeService:
  - Refreshes app_uptime_seconds

Every service implements fmt.Stringer so suture logs it by name.
*/
package services
