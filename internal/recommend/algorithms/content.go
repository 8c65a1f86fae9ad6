// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package algorithms

import (
	"context"
	"sort"

	"github.com/tomtom215/mynextmovie/internal/catalog"
	"github.com/tomtom215/mynextmovie/internal/recommend"
)

// GenreIndex holds the genre vocabulary of one catalog and the binary genre
// vector of each of its movies. It is immutable once built.
type GenreIndex struct {
	fingerprint uint64
	vocabulary  []string
	dims        map[string]int

	// vectors[i] lists the set dimensions of movie i in ascending order.
	vectors [][]int
}

// BuildGenreIndex encodes every movie of c as a genre vector. Vocabulary
// order is first-seen catalog order. An empty catalog or a catalog without
// any genre token is an InvalidParameterError.
func BuildGenreIndex(ctx context.Context, c *catalog.Catalog) (*GenreIndex, error) {
	if c.Empty() {
		return nil, recommend.NewInvalidParameter("catalog", nil, "must contain at least one movie")
	}

	vocab := c.Genres()
	if len(vocab) == 0 {
		return nil, recommend.NewInvalidParameter("catalog", nil, "genre vocabulary is empty")
	}

	dims := make(map[string]int, len(vocab))
	for i, g := range vocab {
		dims[g] = i
	}

	movies := c.Movies()
	vectors := make([][]int, len(movies))
	for i := range movies {
		if err := checkContext(ctx, i); err != nil {
			return nil, err
		}
		vec := make([]int, 0, len(movies[i].Genres))
		for _, g := range movies[i].Genres {
			vec = append(vec, dims[g])
		}
		sort.Ints(vec)
		vectors[i] = vec
	}

	return &GenreIndex{
		fingerprint: c.Fingerprint(),
		vocabulary:  vocab,
		dims:        dims,
		vectors:     vectors,
	}, nil
}

// Fingerprint returns the fingerprint of the catalog the index was built from.
func (g *GenreIndex) Fingerprint() uint64 {
	return g.fingerprint
}

// Vocabulary returns a copy of the genre tokens in dimension order.
func (g *GenreIndex) Vocabulary() []string {
	out := make([]string, len(g.vocabulary))
	copy(out, g.vocabulary)
	return out
}

// Len returns the number of encoded movies.
func (g *GenreIndex) Len() int {
	return len(g.vectors)
}

// Similarity returns the cosine similarity of movies i and j.
func (g *GenreIndex) Similarity(i, j int) float64 {
	return sparseCosine(g.vectors[i], g.vectors[j])
}

// ContentMatcher ranks movies by genre similarity to a query movie.
type ContentMatcher struct {
	BaseAlgorithm
	cache *IndexCache
}

// ContentOption configures a ContentMatcher.
type ContentOption func(*ContentMatcher)

// WithIndexCache reuses genre indexes across calls for the same catalog.
func WithIndexCache(ic *IndexCache) ContentOption {
	return func(m *ContentMatcher) {
		m.cache = ic
	}
}

// NewContentMatcher creates a content matcher.
func NewContentMatcher(opts ...ContentOption) *ContentMatcher {
	m := &ContentMatcher{BaseAlgorithm: NewBaseAlgorithm("content")}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Similar returns at most q.Limit movies ordered by cosine similarity to the
// first movie titled exactly q.Title. The query movie is excluded; ties keep
// catalog order. An unknown title is a NotFoundError.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (m *ContentMatcher) Similar(ctx context.Context, c *catalog.Catalog, q recommend.SimilarityQuery) ([]recommend.SimilarMovie, error) {
	if err := recommend.ValidateLimit(q.Limit); err != nil {
		return nil, err
	}

	idx, err := m.index(ctx, c)
	if err != nil {
		return nil, err
	}

	_, qi, ok := c.FindByTitle(q.Title)
	if !ok {
		return nil, &recommend.NotFoundError{Title: q.Title}
	}

	movies := c.Movies()
	results := make([]recommend.SimilarMovie, 0, len(movies)-1)
	for i := range movies {
		if err := checkContext(ctx, i); err != nil {
			return nil, err
		}
		if i == qi {
			continue
		}
		results = append(results, recommend.SimilarMovie{
			Movie:      movies[i],
			Similarity: idx.Similarity(qi, i),
		})
	}

	// Stable sort keeps catalog order among equal similarities
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > q.Limit {
		results = results[:q.Limit]
	}
	return results, nil
}

// IndexCacheStats reports the genre index cache counters. ok is false when
// the matcher builds a fresh index on every call.
func (m *ContentMatcher) IndexCacheStats() (recommend.IndexCacheStats, bool) {
	if m.cache == nil {
		return recommend.IndexCacheStats{}, false
	}
	s := m.cache.Stats()
	return recommend.IndexCacheStats{
		Size:      s.Size,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}, true
}

// PurgeIndexCache drops every cached genre index.
func (m *ContentMatcher) PurgeIndexCache() {
	if m.cache != nil {
		m.cache.Purge()
	}
}

// index returns the genre index for c, from the cache when one is configured.
func (m *ContentMatcher) index(ctx context.Context, c *catalog.Catalog) (*GenreIndex, error) {
	if m.cache == nil {
		return BuildGenreIndex(ctx, c)
	}
	idx, _, err := m.cache.GetOrBuild(ctx, c)
	return idx, err
}
