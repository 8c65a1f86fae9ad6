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

// Popularity ranks the movies of a genre by mean rating.
//
// Aggregates are recomputed on every call from the catalog's rating events;
// nothing is stored between calls.
type Popularity struct {
	BaseAlgorithm
}

// NewPopularity creates a popularity ranker.
func NewPopularity() *Popularity {
	return &Popularity{BaseAlgorithm: NewBaseAlgorithm("popularity")}
}

// ratingSummary accumulates the ratings of one movie.
type ratingSummary struct {
	sum   float64
	count int
}

// Rank returns at most q.Limit movies matching q.Genre with at least
// q.MinCount ratings, ordered by mean rating descending. Movies with equal
// means keep their catalog order. No match is an empty result, not an error.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (p *Popularity) Rank(ctx context.Context, c *catalog.Catalog, q recommend.PopularityQuery) ([]recommend.RankedMovie, error) {
	if err := recommend.ValidateLimit(q.Limit); err != nil {
		return nil, err
	}
	if err := recommend.ValidateMinCount(q.MinCount); err != nil {
		return nil, err
	}

	movies := c.Movies()
	selected := make([]bool, len(movies))
	matched := 0
	for i := range movies {
		if movies[i].MatchesGenre(q.Genre) {
			selected[i] = true
			matched++
		}
	}
	if matched == 0 {
		return []recommend.RankedMovie{}, nil
	}

	summaries := make([]ratingSummary, len(movies))
	for n, r := range c.Ratings() {
		if err := checkContext(ctx, n); err != nil {
			return nil, err
		}
		idx, ok := c.IndexOf(r.MovieID)
		if !ok || !selected[idx] {
			continue
		}
		summaries[idx].sum += r.Score
		summaries[idx].count++
	}

	ranked := make([]recommend.RankedMovie, 0, matched)
	for i := range movies {
		s := summaries[i]
		if !selected[i] || s.count == 0 || s.count < q.MinCount {
			continue
		}
		ranked = append(ranked, recommend.RankedMovie{
			Movie:         movies[i],
			AverageRating: s.sum / float64(s.count),
			Count:         s.count,
		})
	}

	// Stable sort keeps catalog order among equal means
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageRating > ranked[j].AverageRating
	})

	if len(ranked) > q.Limit {
		ranked = ranked[:q.Limit]
	}
	return ranked, nil
}
