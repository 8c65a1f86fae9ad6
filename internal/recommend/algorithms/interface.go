// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package algorithms

import (
	"context"
	"math"

	"github.com/tomtom215/mynextmovie/internal/recommend"
)

// ctxCheckInterval is how many loop iterations run between cancellation checks.
const ctxCheckInterval = 1024

// BaseAlgorithm provides common functionality for all strategies.
type BaseAlgorithm struct {
	name string
}

// NewBaseAlgorithm creates a new base algorithm with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{name: name}
}

// Name returns the strategy identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// checkContext returns ctx.Err() every ctxCheckInterval iterations.
func checkContext(ctx context.Context, i int) error {
	if i%ctxCheckInterval != 0 {
		return nil
	}
	return ctx.Err()
}

// sparseCosine computes cosine similarity of two binary vectors given as
// ascending lists of set dimensions. Returns 0 when either vector is empty.
func sparseCosine(a, b []int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	dot := 0
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] == b[j]:
			dot++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	if dot == 0 {
		return 0
	}

	sim := float64(dot) / math.Sqrt(float64(len(a))*float64(len(b)))
	if sim > 1 {
		sim = 1
	}
	return sim
}

// Ensure all strategies implement their interfaces.
var (
	_ recommend.PopularityRanker   = (*Popularity)(nil)
	_ recommend.ContentMatcher     = (*ContentMatcher)(nil)
	_ recommend.IndexCacheReporter = (*ContentMatcher)(nil)
)
