// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/buildsensei/buildsensei/internal/engine"
	"github.com/buildsensei/buildsensei/internal/logging"
	"github.com/buildsensei/buildsensei/internal/models"
	"github.com/buildsensei/buildsensei/internal/validation"
)

// Evaluate checks a five-component build for compatibility.
//
// Request body:
//
//	{"cpu": "...", "gpu": "...", "motherboard": "...", "memory": "...", "power_supply": "..."}
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var sel engine.Selection
	if err := decodeJSONBody(w, r, &sel); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST_BODY", "Request body must be a JSON build selection", nil)
		return
	}

	if verr := validation.ValidateStruct(&sel); verr != nil {
		respondValidationError(w, verr)
		return
	}

	start := time.Now()
	result, err := h.evaluator.Evaluate(r.Context(), sel)
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondEngineError maps the engine error taxonomy to HTTP responses.
func (h *Handler) respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *engine.NotFoundError
	if errors.As(err, &notFound) {
		respondError(w, http.StatusNotFound, "COMPONENT_NOT_FOUND", notFound.Error(), map[string]interface{}{
			"kind": string(notFound.Kind),
			"name": notFound.Name,
		})
		return
	}

	var parseErr *engine.ParseError
	if errors.As(err, &parseErr) {
		respondError(w, http.StatusUnprocessableEntity, "UNPARSABLE_COMPONENT_DATA", parseErr.Error(), map[string]interface{}{
			"field": parseErr.Field,
			"raw":   parseErr.Raw,
		})
		return
	}

	logging.Ctx(r.Context()).Error().Err(err).Msg("Engine call failed")
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
