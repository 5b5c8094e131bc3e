// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Catalog query performance (DuckDB)
// - API endpoint latency and throughput
// - Compatibility evaluations and recommendation requests
// - Listing cache efficiency

var (
	// Catalog / Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB catalog queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB catalog query errors",
		},
		[]string{"operation", "table"},
	)

	CatalogComponents = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_components",
			Help: "Number of component records loaded per catalog table",
		},
		[]string{"table"},
	)

	CatalogLoads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of CSV dataset loads into the catalog",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Engine Metrics
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_evaluations_total",
			Help: "Total number of compatibility evaluations by outcome",
		},
		[]string{"outcome"}, // "compatible", "incompatible", "not_found", "parse_failure"
	)

	BottleneckVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_bottleneck_verdicts_total",
			Help: "Total number of bottleneck verdicts by result",
		},
		[]string{"result"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_recommendations_total",
			Help: "Total number of recommendation requests by target kind",
		},
		[]string{"kind"}, // "motherboard", "memory", "power_supply", "build"
	)

	// Listing Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)
)

// RecordDBQuery records a catalog query metric.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEvaluation records a compatibility evaluation outcome.
func RecordEvaluation(outcome string) {
	EvaluationsTotal.WithLabelValues(outcome).Inc()
}

// RecordRecommendation records a recommendation request for a target kind.
func RecordRecommendation(kind string) {
	RecommendationsTotal.WithLabelValues(kind).Inc()
}
