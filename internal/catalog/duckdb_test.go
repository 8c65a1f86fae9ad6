// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestLoadDuckDB_MatchesCSV(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DuckDB loader in short mode")
	}
	mp, rp := writeFixtures(t, testMoviesCSV, testRatingsCSV)

	fromCSV, _, err := LoadCSV(context.Background(), mp, rp)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	fromDuck, stats, err := Load(context.Background(), Source{MoviesPath: mp, RatingsPath: rp, Backend: BackendDuckDB})
	if err != nil {
		t.Fatalf("LoadDuckDB() error = %v", err)
	}

	if stats.Backend != BackendDuckDB {
		t.Errorf("Backend = %q, want duckdb", stats.Backend)
	}
	if stats.SkippedMovies != 1 || stats.SkippedRatings != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if fromDuck.Fingerprint() != fromCSV.Fingerprint() {
		t.Errorf("fingerprint = %s, want %s", fromDuck.FingerprintHex(), fromCSV.FingerprintHex())
	}
}

func TestLoadDuckDB_MissingColumn(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DuckDB loader in short mode")
	}
	mp, rp := writeFixtures(t, "movieId,title\n1,A\n", testRatingsCSV)

	_, _, err := LoadDuckDB(context.Background(), mp, rp)
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("error = %v, want ErrMissingColumn", err)
	}
}
