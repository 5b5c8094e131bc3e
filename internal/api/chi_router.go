// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/buildsensei/buildsensei/internal/middleware"
)

// SetupChi builds the Chi router with the full middleware stack and
// every BuildSensei route mounted.
func SetupChi(handler *Handler, mw *ChiMiddleware) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5, "application/json"))
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(mw.CORS())
	r.Use(APISecurityHeaders())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(mw.RateLimitCustom(RateLimitHealth))
		r.Get("/", handler.Health)
		r.Get("/live", handler.HealthLive)
		r.Get("/ready", handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/components/cpus", handler.ListCPUs)
		r.Get("/components/gpus", handler.ListGPUs)

		r.Post("/evaluate", handler.Evaluate)

		r.Get("/recommendations", handler.Recommendations)
		r.Get("/recommendations/motherboards", handler.RecommendMotherboards)
		r.Get("/recommendations/memory", handler.RecommendMemory)
		r.Get("/recommendations/power-supplies", handler.RecommendPowerSupplies)

		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimitCustom(RateLimitReload))
			r.Post("/catalog/reload", handler.ReloadCatalog)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// chiMiddleware adapts HandlerFunc-style middleware to the
// http.Handler form Chi expects.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}
