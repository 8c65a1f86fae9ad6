// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package services

import (
	"context"
	"time"

	"github.com/tomtom215/mynextmovie/internal/metrics"
)

// UptimeService refreshes the app_uptime_seconds gauge on an interval.
type UptimeService struct {
	started  time.Time
	interval time.Duration
	name     string
}

// NewUptimeService creates the service. A non-positive interval selects 15s.
func NewUptimeService(started time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{started: started, interval: interval, name: "uptime"}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	metrics.UpdateUptime(u.started)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			metrics.UpdateUptime(u.started)
		}
	}
}

// String implements fmt.Stringer for suture's log messages.
func (u *UptimeService) String() string {
	return u.name
}
