// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/buildsensei/buildsensei/internal/logging"
	"github.com/buildsensei/buildsensei/internal/models"
	"github.com/buildsensei/buildsensei/internal/validation"
)

// maxRequestBodyBytes caps evaluate request bodies. Component names are
// short; anything near this limit is not a legitimate request.
const maxRequestBodyBytes = 64 * 1024

// respondJSON writes a JSON response with the given status code.
// Successful responses carry an ETag so clients can revalidate cached
// catalog listings cheaply.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"status":"error","error":{"code":"MARSHAL_ERROR","message":"Failed to encode response"}}`)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Vary", "Accept-Encoding")
	if status == http.StatusOK {
		w.Header().Set("ETag", generateETag(data))
	}
	w.WriteHeader(status)

	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write response")
	}
}

// generateETag computes a weak ETag from the response body using FNV-1a.
func generateETag(data []byte) string {
	var hash uint32 = 2166136261
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return fmt.Sprintf(`W/"%08x"`, hash)
}

// respondError writes a structured error response and logs it with
// sanitized values.
func respondError(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	logging.Warn().
		Int("status", status).
		Str("code", code).
		Str("message", sanitizeLogValue(message)).
		Msg("Request failed")

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// respondValidationError maps a validation failure onto the error envelope.
func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}

// sanitizeLogValue strips control characters that would allow log
// injection through attacker-controlled component names.
func sanitizeLogValue(value string) string {
	replacer := strings.NewReplacer(
		"\n", "\\n",
		"\r", "\\r",
		"\t", "\\t",
	)
	sanitized := replacer.Replace(value)
	if len(sanitized) > 200 {
		sanitized = sanitized[:200] + "..."
	}
	return sanitized
}

// decodeJSONBody decodes a size-limited JSON request body into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// getStringParam returns a trimmed query parameter value.
func getStringParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// getFloatParam parses a float query parameter, returning fallback when
// the parameter is absent. A present but malformed value is an error.
func getFloatParam(r *http.Request, name string, fallback float64) (float64, error) {
	raw := getStringParam(r, name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %s must be a number", name)
	}
	return v, nil
}
