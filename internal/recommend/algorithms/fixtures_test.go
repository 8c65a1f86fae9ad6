// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package algorithms

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/tomtom215/mynextmovie/internal/catalog"
)

// exampleCatalog is the three-movie catalog used in the worked examples.
func exampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Movie{
			catalog.NewMovie(1, "A", "Comedy|Drama"),
			catalog.NewMovie(2, "B", "Comedy"),
			catalog.NewMovie(3, "C", "Drama"),
		},
		[]catalog.RatingEvent{
			{MovieID: 1, Score: 4.0},
			{MovieID: 1, Score: 5.0},
			{MovieID: 2, Score: 3.0},
			{MovieID: 3, Score: 2.0},
		},
	)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

var testGenres = []string{"Action", "Adventure", "Comedy", "Drama", "Horror", "Romance", "Sci-Fi", "Thriller"}

// randomCatalog builds a deterministic pseudo-random catalog for property tests.
func randomCatalog(t *testing.T, seed int64, movies, ratings int) *catalog.Catalog {
	t.Helper()
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test data

	ms := make([]catalog.Movie, movies)
	for i := range ms {
		n := rng.Intn(4)
		parts := make([]string, 0, n)
		for j := 0; j < n; j++ {
			parts = append(parts, testGenres[rng.Intn(len(testGenres))])
		}
		ms[i] = catalog.NewMovie(i+1, fmt.Sprintf("Movie %d", i+1), strings.Join(parts, "|"))
	}

	rs := make([]catalog.RatingEvent, ratings)
	for i := range rs {
		rs[i] = catalog.RatingEvent{
			MovieID: rng.Intn(movies+5) + 1, // a few orphans
			Score:   float64(rng.Intn(10)+1) / 2,
		}
	}

	c, err := catalog.New(ms, rs)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}
