// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/buildsensei/buildsensei/internal/database"
	"github.com/buildsensei/buildsensei/internal/models"
)

// ListCPUs returns the full CPU catalog, TTL-cached.
func (h *Handler) ListCPUs(w http.ResponseWriter, r *http.Request) {
	h.respondListing(w, r, "cpus", func(ctx context.Context) (interface{}, error) {
		return h.catalog.ListCPUs(ctx)
	})
}

// ListGPUs returns the full video card catalog, TTL-cached.
func (h *Handler) ListGPUs(w http.ResponseWriter, r *http.Request) {
	h.respondListing(w, r, "gpus", func(ctx context.Context) (interface{}, error) {
		return h.catalog.ListGPUs(ctx)
	})
}

// respondListing serves a catalog listing from the TTL cache, falling
// back to the database on a miss.
func (h *Handler) respondListing(w http.ResponseWriter, r *http.Request, key string, fetch func(context.Context) (interface{}, error)) {
	if cached, ok := h.listings.Get(key); ok {
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status:   "success",
			Data:     cached,
			Metadata: models.Metadata{Timestamp: time.Now(), Cached: true},
		})
		return
	}

	start := time.Now()
	data, err := fetch(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "CATALOG_ERROR", "Failed to read the component catalog", nil)
		return
	}
	h.listings.Set(key, data)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// ReloadCatalog re-ingests the CSV datasets and reports the new row
// counts. Reloads are throttled; hitting the throttle answers 429.
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if h.loader == nil {
		respondError(w, http.StatusNotImplemented, "RELOAD_UNAVAILABLE", "Catalog reloading is not configured", nil)
		return
	}

	if err := h.loader.Reload(r.Context()); err != nil {
		if errors.Is(err, database.ErrReloadThrottled) {
			respondError(w, http.StatusTooManyRequests, "RELOAD_THROTTLED", "Catalog was reloaded recently, try again later", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "RELOAD_FAILED", "Failed to reload the component catalog", nil)
		return
	}

	h.listings.Clear()

	counts, err := h.catalog.Counts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "CATALOG_ERROR", "Catalog reloaded but counting rows failed", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]interface{}{"reloaded": true, "counts": counts},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
