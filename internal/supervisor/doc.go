// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

// Package supervisor builds the suture/v4 supervision tree that runs
// BuildSensei's long-lived services. Supervisor events are logged
// through sutureslog into the zerolog-backed slog adapter.
package supervisor
