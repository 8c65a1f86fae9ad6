// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/mynextmovie/internal/catalog"
	"github.com/tomtom215/mynextmovie/internal/logging"
	"github.com/tomtom215/mynextmovie/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Server    ServerConfig    `koanf:"server"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates the catalog files and selects the loader back end
type DataConfig struct {
	MoviesPath  string `koanf:"movies_path"`
	RatingsPath string `koanf:"ratings_path"`
	Loader      string `koanf:"loader"` // "csv" (default) or "duckdb"

	// ReloadInterval is how often the files are re-read while serving.
	// Zero disables reloading.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// RecommendConfig holds recommendation engine settings.
// It is flattened relative to recommend.Config so every key maps to one env var.
type RecommendConfig struct {
	DefaultLimit      int           `koanf:"default_limit"`
	MaxLimit          int           `koanf:"max_limit"`
	DefaultMinRatings int           `koanf:"default_min_ratings"`
	SampleSize        int           `koanf:"sample_size"`
	MaxSearchResults  int           `koanf:"max_search_results"`
	IndexCacheEnabled bool          `koanf:"index_cache_enabled"`
	IndexCacheTTL     time.Duration `koanf:"index_cache_ttl"`
	IndexCacheEntries int           `koanf:"index_cache_max_entries"`
	DemoMinCount      int           `koanf:"demo_min_count"`
	DemoLimit         int           `koanf:"demo_limit"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CatalogSource converts the data section into a catalog loader source.
func (c *Config) CatalogSource() catalog.Source {
	return catalog.Source{
		MoviesPath:  c.Data.MoviesPath,
		RatingsPath: c.Data.RatingsPath,
		Backend:     catalog.Backend(c.Data.Loader),
	}
}

// ToRecommendConfig converts the recommend section into engine configuration.
func (c *Config) ToRecommendConfig() *recommend.Config {
	r := c.Recommend
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultLimit:      r.DefaultLimit,
			MaxLimit:          r.MaxLimit,
			DefaultMinRatings: r.DefaultMinRatings,
			SampleSize:        r.SampleSize,
			MaxSearchResults:  r.MaxSearchResults,
		},
		IndexCache: recommend.IndexCacheConfig{
			Enabled:    r.IndexCacheEnabled,
			TTL:        r.IndexCacheTTL,
			MaxEntries: r.IndexCacheEntries,
		},
		Demo: recommend.DemoConfig{
			MinCount: r.DemoMinCount,
			Limit:    r.DemoLimit,
		},
	}
}

// ToLoggingConfig converts the logging section for logging.Init.
func (c *Config) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Caller: c.Logging.Caller,
	}
}
