// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mynextmovie/internal/catalog"
)

// CatalogTarget receives reloaded catalogs. Satisfied by *recommend.Engine.
type CatalogTarget interface {
	Catalog() *catalog.Catalog
	SetCatalog(c *catalog.Catalog)
}

// CatalogLoadFunc loads a fresh catalog snapshot.
type CatalogLoadFunc func(ctx context.Context) (*catalog.Catalog, error)

// maxConsecutiveReloadFailures is how many failed reloads in a row are
// tolerated before the service returns an error so suture restarts it.
const maxConsecutiveReloadFailures = 3

// CatalogReloadService re-reads the catalog on an interval and swaps it into
// the target when its fingerprint changed. A failed reload keeps the current
// snapshot.
type CatalogReloadService struct {
	target   CatalogTarget
	load     CatalogLoadFunc
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCatalogReloadService creates the service. A non-positive interval
// selects 5m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogReloadService(target CatalogTarget, load CatalogLoadFunc, interval time.Duration, logger zerolog.Logger) *CatalogReloadService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CatalogReloadService{
		target:   target,
		load:     load,
		interval: interval,
		timeout:  interval,
		logger:   logger.With().Str("service", "catalog-reload").Logger(),
		name:     "catalog-reload",
	}
}

// Serve implements suture.Service.
func (s *CatalogReloadService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("catalog reload service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog reload service shutting down")
			return ctx.Err()

		case <-ticker.C:
			swapped, err := s.reload(ctx)
			if err != nil {
				failures++
				s.logger.Warn().Err(err).Int("consecutive_failures", failures).Msg("catalog reload failed, keeping current catalog")
				if failures >= maxConsecutiveReloadFailures {
					return fmt.Errorf("catalog reload failed %d times: %w", failures, err)
				}
				continue
			}
			failures = 0
			if !swapped {
				s.logger.Debug().Msg("catalog unchanged")
			}
		}
	}
}

// reload loads one snapshot and reports whether it replaced the current one.
func (s *CatalogReloadService) reload(ctx context.Context) (bool, error) {
	loadCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	next, err := s.load(loadCtx)
	if err != nil {
		return false, err
	}

	current := s.target.Catalog()
	if current != nil && current.Fingerprint() == next.Fingerprint() {
		return false, nil
	}

	s.target.SetCatalog(next)
	s.logger.Info().
		Int("movies", next.Len()).
		Str("fingerprint", next.FingerprintHex()).
		Dur("duration", time.Since(start)).
		Msg("catalog reloaded")
	return true, nil
}

// String implements fmt.Stringer for suture's log messages.
func (s *CatalogReloadService) String() string {
	return s.name
}
