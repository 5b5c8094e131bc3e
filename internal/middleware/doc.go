// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

// Package middleware provides HandlerFunc-style HTTP middleware:
// request ID propagation for log correlation and Prometheus request
// instrumentation. The api package adapts these to Chi's http.Handler
// middleware form.
package middleware
