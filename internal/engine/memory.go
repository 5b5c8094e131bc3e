// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import (
	"strconv"
	"strings"
)

// ParseModuleCount extracts the module count from a free-text memory
// descriptor such as "2 x 8GB", "2x8GB", or "1 X 16 GB". The text
// before the first case-insensitive "x" separator is trimmed, decimal
// commas converted to dots, and parsed as a number.
//
// An empty descriptor, a missing separator, or a non-numeric prefix
// returns a ParseError. Callers must treat that as an unrecoverable
// parse failure, never as zero modules.
func ParseModuleCount(descriptor string) (float64, error) {
	raw := strings.TrimSpace(descriptor)
	if raw == "" {
		return 0, &ParseError{Field: "module count", Raw: descriptor}
	}

	idx := strings.IndexAny(raw, "xX")
	if idx < 0 {
		return 0, &ParseError{Field: "module count", Raw: descriptor}
	}

	prefix := strings.TrimSpace(raw[:idx])
	prefix = strings.ReplaceAll(prefix, ",", ".")

	count, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, &ParseError{Field: "module count", Raw: descriptor}
	}
	return count, nil
}
