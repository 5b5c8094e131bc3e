// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/buildsensei/buildsensei/internal/api"
	"github.com/buildsensei/buildsensei/internal/config"
	"github.com/buildsensei/buildsensei/internal/database"
	"github.com/buildsensei/buildsensei/internal/engine"
	"github.com/buildsensei/buildsensei/internal/logging"
	"github.com/buildsensei/buildsensei/internal/supervisor"
	"github.com/buildsensei/buildsensei/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "buildsensei: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close catalog database")
		}
	}()

	loader := database.NewLoader(db, &cfg.Catalog)
	if cfg.Catalog.LoadOnStartup {
		if err := loader.LoadIfEmpty(ctx); err != nil {
			return fmt.Errorf("failed to load catalog datasets: %w", err)
		}
	}

	catalog := database.NewCatalog(db)

	engCfg := engine.Config{
		TopN:                cfg.Engine.TopN,
		CPUDefaultPowerDraw: cfg.Engine.CPUDefaultPowerDraw,
		MinMemoryCapacityGB: cfg.Engine.MinMemoryCapacityGB,
	}
	if err := engCfg.Validate(); err != nil {
		return fmt.Errorf("invalid engine configuration: %w", err)
	}

	handler := api.NewHandler(
		catalog,
		engine.NewEvaluator(catalog, engCfg),
		engine.NewRecommender(catalog, engCfg),
		loader,
		db,
		cfg,
	)
	defer handler.Close()

	mw := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Server.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.API.RateLimitRequests,
		RateLimitWindow:    cfg.API.RateLimitWindow,
		RateLimitDisabled:  cfg.API.RateLimitDisabled,
	})

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           api.SetupChi(handler, mw),
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if cfg.Catalog.RefreshInterval > 0 {
		tree.AddCatalogService(services.NewCatalogRefreshService(loader, cfg.Catalog.RefreshInterval))
	}

	logging.Info().
		Str("addr", server.Addr).
		Str("database", cfg.Database.Path).
		Str("dataset_dir", cfg.Catalog.DatasetDir).
		Msg("Starting BuildSensei")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor exited: %w", err)
	}

	logging.Info().Msg("Shutdown complete")
	return nil
}
