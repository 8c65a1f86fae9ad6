// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

// Package recommend serves movie recommendations over an in-memory catalog.
//
// # Strategies
//
// Two independent strategies are exposed through small interfaces so the
// engine does not depend on their implementations:
//
//   - PopularityRanker: mean rating within a genre, with a minimum rating count
//   - ContentMatcher: cosine similarity of binary genre vectors
//
// The implementations live in the algorithms subpackage and are wired in by
// the caller.
//
// # Request/Response Interface
//
// Engine turns structured requests into structured responses. It applies the
// configured default and maximum limits, rejects bad parameters before any
// computation, attaches request metadata, and counts outcomes. The console
// menu and the HTTP API are both thin consumers of this interface.
//
// # Errors
//
// An empty result is a valid outcome and is returned as an empty, non-nil
// slice. NotFoundError and InvalidParameterError can be matched with
// errors.Is against ErrNotFound and ErrInvalidParameter.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cfg, cat,
//	    algorithms.NewPopularity(),
//	    algorithms.NewContentMatcher(algorithms.WithIndexCache(ic)),
//	    logger)
//
//	resp, err := engine.Popular(ctx, recommend.PopularRequest{
//	    Genre: "Comedy",
//	    Limit: 5,
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. The catalog snapshot is swapped
// atomically by SetCatalog; in-flight requests finish on the snapshot they
// started with.
package recommend
