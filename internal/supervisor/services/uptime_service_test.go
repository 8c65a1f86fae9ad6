// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/mynextmovie/internal/metrics"
)

func TestUptimeService_Serve(t *testing.T) {
	started := time.Now().Add(-time.Hour)
	svc := NewUptimeService(started, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
	}
	if got := testutil.ToFloat64(metrics.AppUptime); got < 3600 {
		t.Errorf("app_uptime_seconds = %v, want >= 3600", got)
	}
}

func TestNewUptimeService_Defaults(t *testing.T) {
	svc := NewUptimeService(time.Now(), 0)
	if svc.interval != 15*time.Second {
		t.Errorf("interval = %v, want 15s", svc.interval)
	}
	if svc.String() != "uptime" {
		t.Errorf("String() = %q, want uptime", svc.String())
	}
}
