// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

// Package api implements the HTTP surface of BuildSensei on the Chi
// router: catalog listings, compatibility evaluation, build
// recommendations, health probes, and the Prometheus endpoint.
//
// All responses use the models.APIResponse envelope. Handlers validate
// inputs before touching the engine and translate the engine's error
// taxonomy to HTTP status codes:
//
//   - engine.NotFoundError  -> 404 COMPONENT_NOT_FOUND
//   - engine.ParseError     -> 422 UNPARSABLE_COMPONENT_DATA
//   - validation failures   -> 400 VALIDATION_ERROR
//   - anything else         -> 500 INTERNAL_ERROR
package api
