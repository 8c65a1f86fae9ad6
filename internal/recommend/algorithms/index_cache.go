// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package algorithms

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/mynextmovie/internal/cache"
	"github.com/tomtom215/mynextmovie/internal/catalog"
)

// IndexCache keeps genre indexes keyed by catalog fingerprint.
// Concurrent misses for the same catalog share one build.
type IndexCache struct {
	lru      *cache.LRU[uint64, *GenreIndex]
	group    singleflight.Group
	onLookup atomic.Pointer[func(hit bool)]
	build    func(context.Context, *catalog.Catalog) (*GenreIndex, error)
}

// NewIndexCache creates a cache holding indexes for up to maxEntries catalogs.
func NewIndexCache(maxEntries int, ttl time.Duration) *IndexCache {
	return &IndexCache{
		lru:   cache.NewLRU[uint64, *GenreIndex](maxEntries, ttl),
		build: BuildGenreIndex,
	}
}

// OnLookup registers a callback invoked after every lookup with whether the
// index came from the cache.
func (ic *IndexCache) OnLookup(fn func(hit bool)) {
	ic.onLookup.Store(&fn)
}

// GetOrBuild returns the index for c and whether it was already cached.
// A shared build is not tied to any one caller's context; each caller stops
// waiting when its own ctx is done.
func (ic *IndexCache) GetOrBuild(ctx context.Context, c *catalog.Catalog) (*GenreIndex, bool, error) {
	key := c.Fingerprint()
	if idx, ok := ic.lru.Get(key); ok {
		ic.notify(true)
		return idx, true, nil
	}

	buildCtx := context.WithoutCancel(ctx)
	ch := ic.group.DoChan(strconv.FormatUint(key, 16), func() (any, error) {
		if idx, ok := ic.lru.Get(key); ok {
			return idx, nil
		}
		idx, err := ic.build(buildCtx, c)
		if err != nil {
			return nil, err
		}
		ic.lru.Add(key, idx)
		return idx, nil
	})
	ic.notify(false)

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		return res.Val.(*GenreIndex), false, nil
	}
}

// Stats returns the underlying cache counters.
func (ic *IndexCache) Stats() cache.Stats {
	return ic.lru.Stats()
}

// Purge drops every cached index.
func (ic *IndexCache) Purge() {
	ic.lru.Clear()
}

func (ic *IndexCache) notify(hit bool) {
	if fn := ic.onLookup.Load(); fn != nil && *fn != nil {
		(*fn)(hit)
	}
}
