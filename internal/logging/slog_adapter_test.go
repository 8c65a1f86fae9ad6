// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	buf.Reset()
	return entry
}

func TestSlogHandler_Levels(t *testing.T) {
	restoreGlobal(t)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	tests := []struct {
		log  func(string, ...any)
		want string
	}{
		{logger.Debug, "debug"},
		{logger.Info, "info"},
		{logger.Warn, "warn"},
		{logger.Error, "error"},
	}
	for _, tt := range tests {
		tt.log("msg")
		if got := decodeLine(t, &buf)["level"]; got != tt.want {
			t.Errorf("level = %v, want %s", got, tt.want)
		}
	}
}

func TestSlogHandler_Attrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.Info("service event",
		"service", "http",
		"restarts", 3,
		"healthy", true,
		"ratio", 0.5,
		"backoff", 2*time.Second,
		"err", errors.New("boom"),
	)

	entry := decodeLine(t, &buf)
	if entry["message"] != "service event" || entry["service"] != "http" || entry["healthy"] != true {
		t.Errorf("entry = %v", entry)
	}
	if entry["restarts"] != float64(3) || entry["ratio"] != 0.5 {
		t.Errorf("numeric fields = %v %v", entry["restarts"], entry["ratio"])
	}
	if entry["err"] != "boom" {
		t.Errorf("err = %v, want boom", entry["err"])
	}
}

func TestSlogHandler_WithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	base.With("supervisor", "root").WithGroup("svc").Info("restart", "name", "api", slog.Group("cfg", "port", 8080))

	entry := decodeLine(t, &buf)
	if entry["supervisor"] != "root" {
		t.Errorf("supervisor = %v, want root", entry["supervisor"])
	}
	if entry["svc.supervisor"] != nil {
		t.Error("attrs added before WithGroup should not be prefixed by the later group")
	}
	if entry["svc.name"] != "api" || entry["svc.cfg.port"] != float64(8080) {
		t.Errorf("entry = %v", entry)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandler(NewTestLogger(&bytes.Buffer{}).Level(zerolog.WarnLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn logger")
	}
}

func TestNewSlogLogger_UsesGlobal(t *testing.T) {
	restoreGlobal(t)
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))

	NewSlogLogger().Info("via slog")
	if !strings.Contains(buf.String(), "via slog") {
		t.Errorf("output = %s", buf.String())
	}
}
