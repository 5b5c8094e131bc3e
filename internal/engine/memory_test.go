// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import (
	"errors"
	"testing"
)

func TestParseModuleCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		descriptor string
		want       float64
		wantErr    bool
	}{
		{"standard", "2 x 8GB", 2, false},
		{"no spaces", "2x8GB", 2, false},
		{"uppercase separator", "1 X 16 GB", 1, false},
		{"four modules", "4X4GB", 4, false},
		{"decimal comma", "2,5 x 8GB", 2.5, false},
		{"leading whitespace", "  2 x 8GB", 2, false},
		{"empty", "", 0, true},
		{"whitespace only", "   ", 0, true},
		{"no separator", "8GB", 0, true},
		{"non-numeric prefix", "two x 8GB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseModuleCount(tt.descriptor)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseModuleCount(%q) = %v, want error", tt.descriptor, got)
				}
				if !errors.Is(err, ErrUnparsableModules) {
					t.Errorf("ParseModuleCount(%q) error = %v, want ErrUnparsableModules", tt.descriptor, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseModuleCount(%q) unexpected error: %v", tt.descriptor, err)
			}
			if got != tt.want {
				t.Errorf("ParseModuleCount(%q) = %v, want %v", tt.descriptor, got, tt.want)
			}
		})
	}
}

func TestParseModuleCountErrorMentionsRawInput(t *testing.T) {
	t.Parallel()

	_, err := ParseModuleCount("bogus descriptor")
	if err == nil {
		t.Fatal("expected error for unparsable descriptor")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Raw != "bogus descriptor" {
		t.Errorf("ParseError.Raw = %q, want the offending input", parseErr.Raw)
	}
}
