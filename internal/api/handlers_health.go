// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package api

import (
	"net/http"
	"time"

	"github.com/buildsensei/buildsensei/internal/models"
)

// Health returns overall service health including catalog row counts.
// The service is degraded when the catalog database is unreachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	var counts map[string]int
	if dbConnected {
		if c, err := h.catalog.Counts(r.Context()); err == nil {
			counts = c
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:            status,
			Version:           models.Version,
			DatabaseConnected: dbConnected,
			CatalogCounts:     counts,
			UptimeSeconds:     time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive is the liveness probe. It answers 200 whenever the
// process is up, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":          true,
			"uptime_seconds": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady is the readiness probe. It answers 503 until the catalog
// database accepts queries.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil || h.db.Ping(r.Context()) != nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Catalog database is not reachable", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]interface{}{"ready": true},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
