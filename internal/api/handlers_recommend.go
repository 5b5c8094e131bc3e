// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package api

import (
	"net/http"
	"time"

	"github.com/buildsensei/buildsensei/internal/engine"
	"github.com/buildsensei/buildsensei/internal/models"
)

// Recommendations builds a full parts list around a CPU and GPU:
// top motherboards for the deduced socket, top memory kits, adequately
// sized power supplies, and a benchmark URL for the GPU.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	cpu := getStringParam(r, "cpu")
	gpu := getStringParam(r, "gpu")
	if cpu == "" || gpu == "" {
		respondError(w, http.StatusBadRequest, "MISSING_PARAMETER", "Both cpu and gpu query parameters are required", nil)
		return
	}

	start := time.Now()
	recs, err := h.recommender.BuildRecommendations(r.Context(), cpu, gpu)
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   recs,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// RecommendMotherboards returns the top motherboards for a socket.
func (h *Handler) RecommendMotherboards(w http.ResponseWriter, r *http.Request) {
	socket := getStringParam(r, "socket")
	if socket == "" {
		respondError(w, http.StatusBadRequest, "MISSING_PARAMETER", "The socket query parameter is required", nil)
		return
	}

	boards, err := h.recommender.TopMotherboards(r.Context(), socket)
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]interface{}{"socket": socket, "motherboards": boards},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// RecommendMemory returns the top memory kits.
func (h *Handler) RecommendMemory(w http.ResponseWriter, r *http.Request) {
	kits, err := h.recommender.TopMemory(r.Context())
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]interface{}{"memory": kits},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// RecommendPowerSupplies sizes a PSU from the CPU TDP and GPU memory
// and returns the top units at or above that wattage. cpu_tdp defaults
// to the configured CPU power draw when omitted.
func (h *Handler) RecommendPowerSupplies(w http.ResponseWriter, r *http.Request) {
	cpuTDP, err := getFloatParam(r, "cpu_tdp", h.config.Engine.CPUDefaultPowerDraw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}
	gpuMemory, err := getFloatParam(r, "gpu_memory", 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}
	if gpuMemory <= 0 {
		respondError(w, http.StatusBadRequest, "MISSING_PARAMETER", "The gpu_memory query parameter is required and must be positive", nil)
		return
	}

	required := engine.EstimatePSURequirement(cpuTDP, gpuMemory)
	psus, err := h.recommender.TopPowerSupplies(r.Context(), float64(required))
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"required_wattage": required,
			"power_supplies":   psus,
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
