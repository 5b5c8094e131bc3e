// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package services

import (
	"context"
	"errors"
	"time"

	"github.com/buildsensei/buildsensei/internal/database"
	"github.com/buildsensei/buildsensei/internal/logging"
)

// Reloader re-ingests the catalog datasets. Satisfied by
// *database.Loader.
type Reloader interface {
	Reload(ctx context.Context) error
}

// CatalogRefreshService periodically reloads the CSV datasets so a
// long-running instance picks up refreshed price data without a
// restart. Reload failures are logged and retried on the next tick;
// a throttled reload is not a failure.
type CatalogRefreshService struct {
	loader   Reloader
	interval time.Duration
	name     string
}

// NewCatalogRefreshService creates the periodic refresh service.
func NewCatalogRefreshService(loader Reloader, interval time.Duration) *CatalogRefreshService {
	return &CatalogRefreshService{
		loader:   loader,
		interval: interval,
		name:     "catalog-refresh",
	}
}

// Serve implements suture.Service.
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.loader.Reload(ctx); err != nil {
				if errors.Is(err, database.ErrReloadThrottled) {
					continue
				}
				logging.Error().Err(err).Msg("Scheduled catalog refresh failed")
			}
		}
	}
}

// String implements fmt.Stringer for supervisor log messages.
func (s *CatalogRefreshService) String() string {
	return s.name
}
