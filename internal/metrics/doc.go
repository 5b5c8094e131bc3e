// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

// Package metrics defines the Prometheus metrics exposed at /metrics.
// All metrics are registered via promauto at package initialization.
package metrics
