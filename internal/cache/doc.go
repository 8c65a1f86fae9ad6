// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

// Package cache provides a generic, thread-safe LRU cache with TTL expiration.
//
// The recommendation engine uses it to keep genre indexes keyed by catalog
// fingerprint, so reloading an unchanged catalog does not rebuild vectors.
//
//	c := cache.NewLRU[uint64, *Index](4, 30*time.Minute)
//	c.Add(fp, idx)
//	if idx, ok := c.Get(fp); ok {
//	    ...
//	}
package cache
