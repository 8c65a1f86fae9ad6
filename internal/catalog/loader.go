// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend selects how catalog files are read.
type Backend string

const (
	// BackendCSV streams the files with encoding/csv.
	BackendCSV Backend = "csv"
	// BackendDuckDB scans the files with DuckDB's CSV reader.
	BackendDuckDB Backend = "duckdb"
)

// Column names expected in the file headers.
const (
	ColMovieID   = "movieId"
	ColTitle     = "title"
	ColGenres    = "genres"
	ColUserID    = "userId"
	ColRating    = "rating"
	ColTimestamp = "timestamp"
)

// ctxCheckInterval is how many rows are read between cancellation checks.
const ctxCheckInterval = 4096

var (
	// ErrMissingColumn is returned when a required header column is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrUnknownBackend is returned by Load for an unrecognized Backend.
	ErrUnknownBackend = errors.New("unknown catalog backend")
)

// Source names the file pair and the reader back end.
type Source struct {
	MoviesPath  string
	RatingsPath string
	Backend     Backend
}

// LoadStats reports what a loader read and skipped.
type LoadStats struct {
	Backend        Backend       `json:"backend"`
	MoviesRead     int           `json:"movies_read"`
	RatingsRead    int           `json:"ratings_read"`
	SkippedMovies  int           `json:"skipped_movies"`
	SkippedRatings int           `json:"skipped_ratings"`
	Duration       time.Duration `json:"duration"`
}

// Load reads a catalog with the back end named by src.Backend.
// An empty Backend selects BackendCSV.
func Load(ctx context.Context, src Source) (*Catalog, LoadStats, error) {
	switch src.Backend {
	case "", BackendCSV:
		return LoadCSV(ctx, src.MoviesPath, src.RatingsPath)
	case BackendDuckDB:
		return LoadDuckDB(ctx, src.MoviesPath, src.RatingsPath)
	default:
		return nil, LoadStats{}, fmt.Errorf("%w: %q", ErrUnknownBackend, src.Backend)
	}
}

// LoadCSV reads movies and ratings from two CSV files.
func LoadCSV(ctx context.Context, moviesPath, ratingsPath string) (*Catalog, LoadStats, error) {
	start := time.Now()
	stats := LoadStats{Backend: BackendCSV}

	movies, skipped, err := readFile(moviesPath, func(r io.Reader) ([]Movie, int, error) {
		return ReadMovies(ctx, r)
	})
	if err != nil {
		return nil, stats, err
	}
	stats.MoviesRead = len(movies)
	stats.SkippedMovies = skipped

	ratings, skipped, err := readFile(ratingsPath, func(r io.Reader) ([]RatingEvent, int, error) {
		return ReadRatings(ctx, r)
	})
	if err != nil {
		return nil, stats, err
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

func readFile[T any](path string, read func(io.Reader) ([]T, int, error)) ([]T, int, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	rows, skipped, err := read(f)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, skipped, nil
}

// ReadMovies parses a movies table with movieId, title and genres columns.
// Rows with a non-integer movieId are skipped and counted.
func ReadMovies(ctx context.Context, r io.Reader) ([]Movie, int, error) {
	cr := newReader(r)
	cols, err := readHeader(cr, ColMovieID, ColTitle, ColGenres)
	if err != nil {
		return nil, 0, err
	}

	var movies []Movie
	skipped := 0
	for row := 1; ; row++ {
		if row%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, skipped, err
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("line %d: %w", row+1, err)
		}

		id, ok := parseID(field(rec, cols[ColMovieID]))
		if !ok {
			skipped++
			continue
		}
		movies = append(movies, NewMovie(id, field(rec, cols[ColTitle]), field(rec, cols[ColGenres])))
	}
	return movies, skipped, nil
}

// ReadRatings parses a ratings table. movieId and rating are required; userId
// and timestamp are read when the header has them. Rows with an unparsable
// movieId or a non-finite rating are skipped and counted.
func ReadRatings(ctx context.Context, r io.Reader) ([]RatingEvent, int, error) {
	cr := newReader(r)
	cols, err := readHeader(cr, ColMovieID, ColRating)
	if err != nil {
		return nil, 0, err
	}
	userCol, hasUser := cols[ColUserID]
	tsCol, hasTS := cols[ColTimestamp]

	var ratings []RatingEvent
	skipped := 0
	for row := 1; ; row++ {
		if row%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, skipped, err
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("line %d: %w", row+1, err)
		}

		id, ok := parseID(field(rec, cols[ColMovieID]))
		if !ok {
			skipped++
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(field(rec, cols[ColRating])), 64)
		if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
			skipped++
			continue
		}

		ev := RatingEvent{MovieID: id, Score: score}
		if hasUser {
			ev.UserID, _ = parseID(field(rec, userCol))
		}
		if hasTS {
			ev.Timestamp, _ = strconv.ParseInt(strings.TrimSpace(field(rec, tsCol)), 10, 64)
		}
		ratings = append(ratings, ev)
	}
	return ratings, skipped, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return cr
}

// readHeader maps column names to positions and checks that required ones exist.
func readHeader(cr *csv.Reader, required ...string) (map[string]int, error) {
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file, want header with %s", ErrMissingColumn, strings.Join(required, ","))
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return id, true
}
