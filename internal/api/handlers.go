// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package api

import (
	"context"
	"time"

	"github.com/buildsensei/buildsensei/internal/cache"
	"github.com/buildsensei/buildsensei/internal/config"
	"github.com/buildsensei/buildsensei/internal/engine"
	"github.com/buildsensei/buildsensei/internal/models"
)

// ComponentLister is the catalog listing surface the handlers need.
// Satisfied by *database.CatalogProvider.
type ComponentLister interface {
	ListCPUs(ctx context.Context) ([]models.CPU, error)
	ListGPUs(ctx context.Context) ([]models.GPU, error)
	Counts(ctx context.Context) (map[string]int, error)
}

// CatalogReloader re-ingests the CSV datasets on demand.
// Satisfied by *database.Loader.
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// Pinger reports storage connectivity. Satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	catalog     ComponentLister
	evaluator   *engine.Evaluator
	recommender *engine.Recommender
	loader      CatalogReloader
	db          Pinger
	listings    *cache.Cache
	config      *config.Config
	startTime   time.Time
}

// NewHandler creates the HTTP handler set. The loader may be nil when
// catalog reloads are not wired (tests, read-only deployments).
func NewHandler(
	catalog ComponentLister,
	evaluator *engine.Evaluator,
	recommender *engine.Recommender,
	loader CatalogReloader,
	db Pinger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		catalog:     catalog,
		evaluator:   evaluator,
		recommender: recommender,
		loader:      loader,
		db:          db,
		listings:    cache.New("listings", cfg.Engine.CacheTTL),
		config:      cfg,
		startTime:   time.Now(),
	}
}

// Close releases handler-owned resources.
func (h *Handler) Close() {
	h.listings.Close()
}
