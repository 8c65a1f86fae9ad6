// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

// Package logging provides the zerolog-based structured logger shared by
// every component of the service.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("movies", n).Msg("catalog loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("query failed")
//
// # Configuration
//
// The level, format and caller flag come from the logging section of the
// service configuration (LOG_LEVEL, LOG_FORMAT, LOG_CALLER). Format "auto"
// writes colored console output on a terminal and JSON everywhere else, which
// suits the interactive menu and container logs alike.
//
// # Context Propagation
//
// HTTP middleware stores a request ID in the request context. Ctx reads it
// back and adds it to every entry:
//
//	{"level":"info","request_id":"3f0c...","message":"popularity request"}
//
// # slog Bridge
//
// NewSlogLogger adapts the global logger to log/slog so the suture
// supervisor, which logs through sutureslog, shares the same output.
package logging
