// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

// Command server runs the BuildSensei API: it loads configuration,
// opens the DuckDB component catalog (ingesting the CSV datasets when
// the catalog is empty), wires the inference engine, and serves the
// HTTP API under a suture supervision tree until SIGINT or SIGTERM.
package main
