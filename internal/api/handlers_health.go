// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/mynextmovie/internal/models"
)

// HealthLive handles liveness probe requests.
// It returns 200 whenever the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests.
// It returns 200 once a non-empty catalog is loaded and 503 before that.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	snapshot := h.engine.Catalog()
	ready := !snapshot.Empty()

	statusCode := http.StatusOK
	health := "healthy"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		health = "degraded"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.HealthStatus{
			Status:             health,
			Version:            h.version,
			CatalogLoaded:      ready,
			Movies:             snapshot.Len(),
			CatalogFingerprint: snapshot.FingerprintHex(),
			Uptime:             time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
