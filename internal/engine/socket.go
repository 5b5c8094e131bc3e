// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import "strings"

// socketRule maps microarchitecture substrings to a socket. A rule
// matches when any entry of anyOf is present, or when every entry of
// allOf is present. Rules are evaluated in order and the first match
// wins, so more specific generations must precede coarser ones
// ("zen 4" before bare "zen", Xeon digit rules before the generic
// Pentium/Celeron ones).
type socketRule struct {
	socket string
	anyOf  []string
	allOf  []string
}

var socketRules = []socketRule{
	// AMD desktop generations, newest first.
	{socket: "AM5", anyOf: []string{"zen 5", "zen 4"}},
	{socket: "AM4", anyOf: []string{"zen 3", "zen 2", "zen+", "zen"}},
	{socket: "AM3+", anyOf: []string{"piledriver", "steamroller", "excavator", "bulldozer"}},
	{socket: "AM2+", anyOf: []string{"k10", "lynx"}},
	{socket: "FP2", anyOf: []string{"jaguar", "puma+"}},

	// Intel desktop generations, newest first.
	{socket: "LGA1851", anyOf: []string{"arrow lake"}},
	{socket: "LGA1700", anyOf: []string{"raptor lake", "alder lake", "raptor"}},
	{socket: "LGA1200", anyOf: []string{"rocket lake", "comet lake"}},
	{socket: "LGA1151", anyOf: []string{"coffee lake", "kaby lake", "skylake"}},
	{socket: "LGA1150", anyOf: []string{"broadwell", "haswell"}},
	{socket: "LGA1155", anyOf: []string{"ivy bridge", "sandy bridge"}},
	{socket: "LGA1156", anyOf: []string{"nehalem", "westmere"}},

	// Xeon lines carry their own socket per generation digit. These
	// must run before the generic digit rules below, which would map
	// e5 to the wrong socket.
	{socket: "LGA1155", allOf: []string{"xeon", "e3"}},
	{socket: "LGA2011", allOf: []string{"xeon", "e5"}},
	{socket: "LGA1151", allOf: []string{"xeon", "e2"}},

	// Legacy Pentium/Celeron variants, resolved by the generation
	// digit embedded in the label.
	{socket: "LGA775", anyOf: []string{"e2", "e5", "e6"}},
	{socket: "LGA1155", anyOf: []string{"e3", "g3", "g4", "g5", "g6"}},

	// Oldest Intel names last; "core" is too generic to check earlier.
	{socket: "LGA775", anyOf: []string{"core", "wolfdale", "yorkfield"}},
}

// DeduceSocket infers a CPU socket from a free-text microarchitecture
// label. The label is lowercased and trimmed before matching. It
// returns ("", false) when the label is empty or matches no rule; the
// caller must treat that as "socket unknown" and surface a blocking
// issue rather than pass the check.
func DeduceSocket(microarchitecture string) (string, bool) {
	label := strings.ToLower(strings.TrimSpace(microarchitecture))
	if label == "" {
		return "", false
	}

	for _, rule := range socketRules {
		if rule.matches(label) {
			return rule.socket, true
		}
	}
	return "", false
}

func (r socketRule) matches(label string) bool {
	for _, sub := range r.anyOf {
		if strings.Contains(label, sub) {
			return true
		}
	}
	if len(r.allOf) == 0 {
		return false
	}
	for _, sub := range r.allOf {
		if !strings.Contains(label, sub) {
			return false
		}
	}
	return true
}
