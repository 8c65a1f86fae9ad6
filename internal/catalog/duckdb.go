// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver
)

// LoadDuckDB reads movies and ratings through an in-memory DuckDB instance.
// Every column is scanned as text and parsed with the same rules as LoadCSV,
// so both back ends produce identical catalogs for well-formed input.
func LoadDuckDB(ctx context.Context, moviesPath, ratingsPath string) (*Catalog, LoadStats, error) {
	start := time.Now()
	stats := LoadStats{Backend: BackendDuckDB}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, stats, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return nil, stats, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	movies, skipped, err := duckMovies(ctx, db, moviesPath)
	if err != nil {
		return nil, stats, fmt.Errorf("read %s: %w", moviesPath, err)
	}
	stats.MoviesRead = len(movies)
	stats.SkippedMovies = skipped

	ratings, skipped, err := duckRatings(ctx, db, ratingsPath)
	if err != nil {
		return nil, stats, fmt.Errorf("read %s: %w", ratingsPath, err)
	}
	stats.RatingsRead = len(ratings)
	stats.SkippedRatings = skipped

	c, err := New(movies, ratings)
	if err != nil {
		return nil, stats, fmt.Errorf("build catalog: %w", err)
	}
	stats.Duration = time.Since(start)
	return c, stats, nil
}

func duckMovies(ctx context.Context, db *sql.DB, path string) ([]Movie, int, error) {
	src := csvSource(path)
	if _, err := duckColumns(ctx, db, src, ColMovieID, ColTitle, ColGenres); err != nil {
		return nil, 0, err
	}

	//nolint:gosec // src is a quoted literal built by csvSource
	query := fmt.Sprintf(`SELECT %s, %s, COALESCE(%s, '') FROM %s`,
		quoteIdent(ColMovieID), quoteIdent(ColTitle), quoteIdent(ColGenres), src)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("query movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var movies []Movie
	skipped := 0
	for rows.Next() {
		var rawID, title sql.NullString
		var genres string
		if err := rows.Scan(&rawID, &title, &genres); err != nil {
			return nil, skipped, fmt.Errorf("scan movie: %w", err)
		}
		id, ok := parseID(rawID.String)
		if !rawID.Valid || !ok {
			skipped++
			continue
		}
		movies = append(movies, NewMovie(id, title.String, genres))
	}
	if err := rows.Err(); err != nil {
		return nil, skipped, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, skipped, nil
}

func duckRatings(ctx context.Context, db *sql.DB, path string) ([]RatingEvent, int, error) {
	src := csvSource(path)
	cols, err := duckColumns(ctx, db, src, ColMovieID, ColRating)
	if err != nil {
		return nil, 0, err
	}

	userExpr, tsExpr := "NULL", "NULL"
	if _, ok := cols[ColUserID]; ok {
		userExpr = quoteIdent(ColUserID)
	}
	if _, ok := cols[ColTimestamp]; ok {
		tsExpr = quoteIdent(ColTimestamp)
	}

	//nolint:gosec // identifiers are constants and src is a quoted literal
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s`,
		quoteIdent(ColMovieID), quoteIdent(ColRating), userExpr, tsExpr, src)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("query ratings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ratings []RatingEvent
	skipped := 0
	for rows.Next() {
		var rawID, rawScore, rawUser, rawTS sql.NullString
		if err := rows.Scan(&rawID, &rawScore, &rawUser, &rawTS); err != nil {
			return nil, skipped, fmt.Errorf("scan rating: %w", err)
		}
		id, ok := parseID(rawID.String)
		if !ok {
			skipped++
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(rawScore.String), 64)
		if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
			skipped++
			continue
		}
		ev := RatingEvent{MovieID: id, Score: score}
		if rawUser.Valid {
			ev.UserID, _ = parseID(rawUser.String)
		}
		if rawTS.Valid {
			ev.Timestamp, _ = strconv.ParseInt(strings.TrimSpace(rawTS.String), 10, 64)
		}
		ratings = append(ratings, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, skipped, fmt.Errorf("iterate ratings: %w", err)
	}
	return ratings, skipped, nil
}

// duckColumns returns the header of src and fails if a required column is absent.
func duckColumns(ctx context.Context, db *sql.DB, src string, required ...string) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+src+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("describe: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	cols := make(map[string]struct{}, len(names))
	for _, n := range names {
		cols[n] = struct{}{}
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

// csvSource builds a read_csv_auto call that scans every column as text.
func csvSource(path string) string {
	return fmt.Sprintf("read_csv_auto('%s', header=true, all_varchar=true)", strings.ReplaceAll(path, "'", "''"))
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
