// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

// Package algorithms implements the two recommendation strategies served by
// the recommend engine.
//
// # Strategies
//
// Popularity ranks the movies of a genre by their mean rating:
//
//  1. Select movies with a genre token containing the filter (case-insensitive).
//  2. Aggregate every rating event of each selected movie into a mean and a count.
//  3. Drop movies with fewer ratings than the minimum count.
//  4. Sort by mean descending; ties keep catalog order.
//  5. Return the first Limit entries.
//
// ContentMatcher ranks movies by how many genres they share with a query movie:
//
//  1. Build the genre vocabulary in first-seen catalog order.
//  2. Encode every movie as a binary presence vector over the vocabulary.
//  3. Find the query movie by exact title.
//  4. Score every other movie by cosine similarity with the query vector.
//  5. Sort by similarity descending; ties keep catalog order.
//  6. Return the first Limit entries.
//
// # Vector Representation
//
// Genre vectors are binary, so they are stored sparsely as the ascending list
// of set dimensions. The dot product of two vectors is the size of the
// intersection of their lists and the squared norm is the list length, which
// keeps cosine similarity exact: identical genre sets score 1.0.
//
// # Caching
//
// Building a GenreIndex is linear in the catalog size. An IndexCache keeps
// indexes keyed by catalog fingerprint and collapses concurrent builds for the
// same catalog into one. Without a cache the index is rebuilt on every call.
//
// # Thread Safety
//
// Both strategies hold no per-query state and may be shared between
// goroutines. The catalog they read is immutable.
package algorithms
