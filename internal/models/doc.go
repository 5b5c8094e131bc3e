// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

// Package models defines the data structures shared between the catalog
// layer, the inference engine, and the HTTP API.
//
// Component records (CPU, GPU, Motherboard, Memory, PowerSupply) are
// read-only snapshots of catalog rows. The engine never mutates them;
// optional columns surface as pointer fields so "absent" and "zero" stay
// distinguishable.
package models
