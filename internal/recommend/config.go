// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains request defaults and bounds.
	Limits LimitsConfig `json:"limits"`

	// IndexCache controls reuse of genre indexes across requests.
	IndexCache IndexCacheConfig `json:"index_cache"`

	// Demo holds the parameters of the demonstration run.
	Demo DemoConfig `json:"demo"`
}

// LimitsConfig contains request defaults and bounds.
type LimitsConfig struct {
	// DefaultLimit is the number of results when a request leaves Limit at zero.
	// Default: 10.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit is the largest Limit honoured; larger values are clamped.
	// Default: 100.
	MaxLimit int `json:"max_limit"`

	// DefaultMinRatings is the rating count threshold when a popularity
	// request omits MinCount.
	// Default: 10.
	DefaultMinRatings int `json:"default_min_ratings"`

	// SampleSize is how many titles SampleTitles returns by default.
	// Default: 10.
	SampleSize int `json:"sample_size"`

	// MaxSearchResults caps title search results.
	// Default: 25.
	MaxSearchResults int `json:"max_search_results"`
}

// IndexCacheConfig controls the genre index cache.
type IndexCacheConfig struct {
	// Enabled controls whether genre indexes are cached.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is how long a cached index is kept.
	// Default: 30m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the number of catalog snapshots whose index is kept.
	// Default: 4.
	MaxEntries int `json:"max_entries"`
}

// DemoConfig holds the parameters of the demonstration run.
type DemoConfig struct {
	// MinCount is the rating threshold for the popularity part.
	// Default: 10.
	MinCount int `json:"min_count"`

	// Limit is the number of results for each part.
	// Default: 3.
	Limit int `json:"limit"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultLimit:      10,
			MaxLimit:          100,
			DefaultMinRatings: 10,
			SampleSize:        10,
			MaxSearchResults:  25,
		},
		IndexCache: IndexCacheConfig{
			Enabled:    true,
			TTL:        30 * time.Minute,
			MaxEntries: 4,
		},
		Demo: DemoConfig{
			MinCount: 10,
			Limit:    3,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit (%d) must be >= limits.default_limit (%d)", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Limits.DefaultMinRatings < 0 {
		return fmt.Errorf("limits.default_min_ratings must be non-negative, got %d", c.Limits.DefaultMinRatings)
	}
	if c.Limits.SampleSize < 1 {
		return fmt.Errorf("limits.sample_size must be positive, got %d", c.Limits.SampleSize)
	}
	if c.Limits.MaxSearchResults < 1 {
		return fmt.Errorf("limits.max_search_results must be positive, got %d", c.Limits.MaxSearchResults)
	}

	if c.IndexCache.Enabled {
		if c.IndexCache.TTL <= 0 {
			return fmt.Errorf("index_cache.ttl must be positive, got %v", c.IndexCache.TTL)
		}
		if c.IndexCache.MaxEntries < 1 {
			return fmt.Errorf("index_cache.max_entries must be positive, got %d", c.IndexCache.MaxEntries)
		}
	}

	if c.Demo.MinCount < 0 {
		return fmt.Errorf("demo.min_count must be non-negative, got %d", c.Demo.MinCount)
	}
	if c.Demo.Limit < 1 {
		return fmt.Errorf("demo.limit must be positive, got %d", c.Demo.Limit)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs are value types
	return &Config{
		Limits:     c.Limits,
		IndexCache: c.IndexCache,
		Demo:       c.Demo,
	}
}

// MarshalJSON renders durations as strings.
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	return json.Marshal(&struct {
		*Alias
		IndexCache struct {
			Enabled    bool   `json:"enabled"`
			TTL        string `json:"ttl"`
			MaxEntries int    `json:"max_entries"`
		} `json:"index_cache"`
	}{
		Alias: (*Alias)(c),
		IndexCache: struct {
			Enabled    bool   `json:"enabled"`
			TTL        string `json:"ttl"`
			MaxEntries int    `json:"max_entries"`
		}{
			Enabled:    c.IndexCache.Enabled,
			TTL:        c.IndexCache.TTL.String(),
			MaxEntries: c.IndexCache.MaxEntries,
		},
	})
}
