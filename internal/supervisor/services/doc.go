// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

// Package services wraps BuildSensei's long-running components as
// suture.Service implementations: the HTTP server and the periodic
// catalog dataset refresh.
package services
