// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package catalog

import "strings"

// GenreSeparator delimits genre tokens in the raw genres field.
const GenreSeparator = "|"

// Movie is a single catalog entry.
type Movie struct {
	ID        int      `json:"movie_id"`
	Title     string   `json:"title"`
	Genres    []string `json:"genres"`
	RawGenres string   `json:"raw_genres"`
}

// RatingEvent is one user's score for one movie.
// UserID and Timestamp are carried from the source file when present and are
// not used by any ranking.
type RatingEvent struct {
	MovieID   int     `json:"movie_id"`
	Score     float64 `json:"score"`
	UserID    int     `json:"user_id,omitempty"`
	Timestamp int64   `json:"timestamp,omitempty"`
}

// NewMovie builds a Movie from its raw genres field.
func NewMovie(id int, title, rawGenres string) Movie {
	return Movie{
		ID:        id,
		Title:     title,
		Genres:    ParseGenres(rawGenres),
		RawGenres: rawGenres,
	}
}

// ParseGenres splits a pipe-delimited genre field into distinct tokens in
// first-seen order. An empty or all-separator field yields nil.
func ParseGenres(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, GenreSeparator)
	tokens := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		tok := strings.TrimSpace(p)
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// MatchesGenre reports whether any genre token contains filter, ignoring case.
// An empty filter matches every movie that has at least one genre.
func (m Movie) MatchesGenre(filter string) bool {
	if filter == "" {
		return m.HasGenres()
	}
	needle := strings.ToLower(filter)
	for _, g := range m.Genres {
		if strings.Contains(strings.ToLower(g), needle) {
			return true
		}
	}
	return false
}

// HasGenres reports whether the movie carries at least one genre token.
func (m Movie) HasGenres() bool {
	return len(m.Genres) > 0
}
