// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package catalog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ErrDuplicateMovieID is returned by New when two movies share an id.
var ErrDuplicateMovieID = errors.New("duplicate movie id")

// Catalog is an immutable, ordered collection of movies and their rating events.
//
// Slices returned by Movies and Ratings are shared with the Catalog and must
// not be modified by callers.
type Catalog struct {
	movies   []Movie
	ratings  []RatingEvent
	byID     map[int]int
	orphans  int
	hash     uint64
	loadedAt time.Time
}

// Stats summarizes a catalog for status reporting.
type Stats struct {
	Movies        int       `json:"movies"`
	Ratings       int       `json:"ratings"`
	OrphanRatings int       `json:"orphan_ratings"`
	Fingerprint   string    `json:"fingerprint"`
	LoadedAt      time.Time `json:"loaded_at"`
}

// New builds a Catalog from movies and ratings, keeping both in the order given.
// Ratings that reference an unknown movie are kept but counted as orphans and
// never joined to a movie.
func New(movies []Movie, ratings []RatingEvent) (*Catalog, error) {
	c := &Catalog{
		movies:   make([]Movie, len(movies)),
		ratings:  make([]RatingEvent, len(ratings)),
		byID:     make(map[int]int, len(movies)),
		loadedAt: time.Now().UTC(),
	}
	copy(c.movies, movies)
	copy(c.ratings, ratings)

	for i, m := range c.movies {
		if prev, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: %d (rows %d and %d)", ErrDuplicateMovieID, m.ID, prev, i)
		}
		c.byID[m.ID] = i
	}
	for _, r := range c.ratings {
		if _, ok := c.byID[r.MovieID]; !ok {
			c.orphans++
		}
	}

	c.hash = fingerprint(c.movies, c.ratings)
	return c, nil
}

// MustNew is New for fixtures; it panics on error.
func MustNew(movies []Movie, ratings []RatingEvent) *Catalog {
	c, err := New(movies, ratings)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of movies. It is safe on a nil Catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.movies)
}

// Empty reports whether the catalog has no movies.
func (c *Catalog) Empty() bool {
	return c.Len() == 0
}

// Movies returns the movies in catalog order.
func (c *Catalog) Movies() []Movie {
	if c == nil {
		return nil
	}
	return c.movies
}

// Ratings returns the rating events in load order.
func (c *Catalog) Ratings() []RatingEvent {
	if c == nil {
		return nil
	}
	return c.ratings
}

// IndexOf returns the catalog position of the movie with the given id.
func (c *Catalog) IndexOf(id int) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.byID[id]
	return i, ok
}

// MovieByID looks up a movie by id.
func (c *Catalog) MovieByID(id int) (Movie, bool) {
	i, ok := c.IndexOf(id)
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// FindByTitle returns the first movie, in catalog order, whose title equals
// title exactly. Matching is case-sensitive.
func (c *Catalog) FindByTitle(title string) (Movie, int, bool) {
	for i, m := range c.Movies() {
		if m.Title == title {
			return m, i, true
		}
	}
	return Movie{}, -1, false
}

// SearchTitles returns up to limit movies whose title contains query,
// ignoring case, in catalog order. A non-positive limit means no limit.
func (c *Catalog) SearchTitles(query string, limit int) []Movie {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]Movie, 0)
	if needle == "" {
		return out
	}
	for _, m := range c.Movies() {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			out = append(out, m)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}

// SampleTitles returns the first n titles in catalog order.
func (c *Catalog) SampleTitles(n int) []string {
	movies := c.Movies()
	if n < 0 {
		n = 0
	}
	if n > len(movies) {
		n = len(movies)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = movies[i].Title
	}
	return out
}

// Genres returns the distinct genre tokens of all movies in first-seen
// catalog order.
func (c *Catalog) Genres() []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, m := range c.Movies() {
		for _, g := range m.Genres {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	return out
}

// OrphanRatings returns the number of ratings whose movie id is not in the catalog.
func (c *Catalog) OrphanRatings() int {
	if c == nil {
		return 0
	}
	return c.orphans
}

// Fingerprint returns the content hash of the catalog.
func (c *Catalog) Fingerprint() uint64 {
	if c == nil {
		return 0
	}
	return c.hash
}

// FingerprintHex returns Fingerprint as a fixed-width hex string.
func (c *Catalog) FingerprintHex() string {
	return fmt.Sprintf("%016x", c.Fingerprint())
}

// LoadedAt returns when the catalog was constructed.
func (c *Catalog) LoadedAt() time.Time {
	if c == nil {
		return time.Time{}
	}
	return c.loadedAt
}

// Stats returns size and identity information about the catalog.
func (c *Catalog) Stats() Stats {
	return Stats{
		Movies:        c.Len(),
		Ratings:       len(c.Ratings()),
		OrphanRatings: c.OrphanRatings(),
		Fingerprint:   c.FingerprintHex(),
		LoadedAt:      c.LoadedAt(),
	}
}

// fingerprint hashes the fields that affect recommendations. UserID and
// Timestamp are left out because no ranking reads them.
func fingerprint(movies []Movie, ratings []RatingEvent) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)

	buf = strconv.AppendInt(buf[:0], int64(len(movies)), 10)
	_, _ = d.Write(buf)
	for _, m := range movies {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(int64(m.ID))) //nolint:gosec // bit pattern only
		_, _ = d.Write(buf)
		_, _ = d.WriteString(m.Title)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strings.Join(m.Genres, GenreSeparator))
		_, _ = d.WriteString("\x00")
	}

	buf = strconv.AppendInt(buf[:0], int64(len(ratings)), 10)
	_, _ = d.Write(buf)
	for _, r := range ratings {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(int64(r.MovieID))) //nolint:gosec // bit pattern only
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(r.Score))
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
