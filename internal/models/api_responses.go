// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. Status is "success" or "error"; Error is populated only
// when Status is "error".
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"compatible": true, ...},
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z", "query_time_ms": 3}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields. QueryTimeMS is the
// catalog query time in milliseconds (0 when served from cache).
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError holds structured error details for failed requests.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Version is the service version reported by the health endpoint.
const Version = "1.0.0"

// HealthStatus is the payload of the main health endpoint.
type HealthStatus struct {
	Status            string         `json:"status"`
	Version           string         `json:"version"`
	DatabaseConnected bool           `json:"database_connected"`
	CatalogCounts     map[string]int `json:"catalog_counts,omitempty"`
	UptimeSeconds     float64        `json:"uptime_seconds"`
}
