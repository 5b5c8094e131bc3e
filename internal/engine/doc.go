// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

// Package engine implements the compatibility and recommendation
// inference engine.
//
// The engine is a pure function of catalog data to a decision record:
// given the user's chosen components it deduces the CPU socket from
// free-text microarchitecture labels, estimates power draw from model
// names, checks memory slot fit, sizes the power supply, detects
// CPU/GPU pairing imbalance, and ranks candidate motherboards, memory
// kits, and power supplies.
//
// The Catalog interface is the only collaborator. All heuristics are
// ordered rule lists evaluated top to bottom; rule order is load-bearing
// (more specific generations are checked before coarser ones) and must
// not be replaced with map lookups.
//
// Two independent power models exist on purpose: the TDP-table model
// used by the compatibility evaluator, and the coarser VRAM-tier model
// used for PSU recommendations. They produce different wattages and
// must not be merged.
package engine
