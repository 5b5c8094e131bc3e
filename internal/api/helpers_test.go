// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package api

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateETagStable(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`{"status":"success"}`))
	b := generateETag([]byte(`{"status":"success"}`))
	c := generateETag([]byte(`{"status":"error"}`))

	if a != b {
		t.Errorf("same payload produced different ETags: %q vs %q", a, b)
	}
	if a == c {
		t.Error("different payloads produced the same ETag")
	}
	if !strings.HasPrefix(a, `W/"`) {
		t.Errorf("ETag %q is not weak-form", a)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "GeForce RTX 4070", "GeForce RTX 4070"},
		{"newline", "bad\nvalue", "bad\\nvalue"},
		{"carriage return", "bad\rvalue", "bad\\rvalue"},
		{"tab", "bad\tvalue", "bad\\tvalue"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeLogValueTruncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 500)
	got := sanitizeLogValue(long)
	if len(got) != 203 {
		t.Errorf("len = %d, want 203 (200 chars plus ellipsis)", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated value must end with an ellipsis")
	}
}

func TestGetFloatParam(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?cpu_tdp=105.5&bad=abc", nil)

	got, err := getFloatParam(r, "cpu_tdp", 125)
	if err != nil || got != 105.5 {
		t.Errorf("getFloatParam(cpu_tdp) = %v, %v; want 105.5, nil", got, err)
	}

	got, err = getFloatParam(r, "missing", 125)
	if err != nil || got != 125 {
		t.Errorf("getFloatParam(missing) = %v, %v; want fallback 125, nil", got, err)
	}

	if _, err = getFloatParam(r, "bad", 0); err == nil {
		t.Error("expected an error for a malformed float parameter")
	}
}
