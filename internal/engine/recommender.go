// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/buildsensei/buildsensei/internal/logging"
	"github.com/buildsensei/buildsensei/internal/metrics"
	"github.com/buildsensei/buildsensei/internal/models"
)

// Recommender answers top-N candidate queries against the catalog.
// Ranking is delegated to the catalog's ordered queries, so reruns
// against an unchanged catalog return identical ordered results.
type Recommender struct {
	catalog Catalog
	cfg     Config
	logger  zerolog.Logger
}

// NewRecommender creates a recommender over the given catalog.
func NewRecommender(catalog Catalog, cfg Config) *Recommender {
	return &Recommender{
		catalog: catalog,
		cfg:     cfg,
		logger:  logging.With().Str("component", "recommender").Logger(),
	}
}

// TopMotherboards returns the cheapest motherboards with exactly the
// given socket.
func (r *Recommender) TopMotherboards(ctx context.Context, socket string) ([]models.Motherboard, error) {
	metrics.RecordRecommendation("motherboard")
	boards, err := r.catalog.MotherboardsBySocket(ctx, socket, r.cfg.TopN)
	if err != nil {
		return nil, fmt.Errorf("ranking motherboards for socket %q: %w", socket, err)
	}
	return boards, nil
}

// TopMemory returns memory kits ranked by speed, CAS latency, and
// price, honoring the configured minimum capacity filter.
func (r *Recommender) TopMemory(ctx context.Context) ([]models.Memory, error) {
	metrics.RecordRecommendation("memory")
	kits, err := r.catalog.MemoryRanked(ctx, r.cfg.MinMemoryCapacityGB, r.cfg.TopN)
	if err != nil {
		return nil, fmt.Errorf("ranking memory kits: %w", err)
	}
	return kits, nil
}

// TopPowerSupplies returns the smallest adequate power supplies for
// the given required wattage.
func (r *Recommender) TopPowerSupplies(ctx context.Context, requiredWattage float64) ([]models.PowerSupply, error) {
	metrics.RecordRecommendation("power_supply")
	psus, err := r.catalog.PowerSuppliesByWattage(ctx, requiredWattage, r.cfg.TopN)
	if err != nil {
		return nil, fmt.Errorf("ranking power supplies for %vW: %w", requiredWattage, err)
	}
	return psus, nil
}

// BuildRecommendations assembles a full build suggestion around a
// CPU/GPU pair: compatible motherboards, ranked memory kits, and
// adequately sized power supplies, plus the GPU's benchmark reference.
//
// A CPU whose socket cannot be deduced yields an empty motherboard
// list rather than an error; the PSU sizing uses the VRAM tier model
// with the configured default draw standing in for a missing CPU TDP.
func (r *Recommender) BuildRecommendations(ctx context.Context, cpuName, gpuName string) (*Recommendations, error) {
	metrics.RecordRecommendation("build")

	cpu, err := r.catalog.CPUByName(ctx, cpuName)
	if err != nil {
		if errors.Is(err, ErrComponentNotFound) {
			return nil, &NotFoundError{Kind: models.KindCPU, Name: cpuName}
		}
		return nil, fmt.Errorf("resolving cpu %q: %w", cpuName, err)
	}
	gpu, err := r.catalog.GPUByName(ctx, gpuName)
	if err != nil {
		if errors.Is(err, ErrComponentNotFound) {
			return nil, &NotFoundError{Kind: models.KindGPU, Name: gpuName}
		}
		return nil, fmt.Errorf("resolving gpu %q: %w", gpuName, err)
	}

	rec := &Recommendations{
		CPU:           cpu,
		GPU:           gpu,
		Motherboards:  []models.Motherboard{},
		Memory:        []models.Memory{},
		PowerSupplies: []models.PowerSupply{},
	}

	if socket, ok := DeduceSocket(cpu.Microarchitecture); ok {
		rec.Socket = socket
		boards, err := r.TopMotherboards(ctx, socket)
		if err != nil {
			return nil, err
		}
		rec.Motherboards = boards
	} else {
		r.logger.Warn().
			Str("cpu", cpu.Name).
			Str("microarchitecture", cpu.Microarchitecture).
			Msg("Socket undeterminable, skipping motherboard recommendations")
	}

	kits, err := r.TopMemory(ctx)
	if err != nil {
		return nil, err
	}
	rec.Memory = kits

	cpuTDP := r.cfg.CPUDefaultPowerDraw
	if cpu.TDP != nil {
		cpuTDP = *cpu.TDP
	}
	rec.RequiredWattage = EstimatePSURequirement(cpuTDP, gpu.MemoryGB)

	psus, err := r.TopPowerSupplies(ctx, float64(rec.RequiredWattage))
	if err != nil {
		return nil, err
	}
	rec.PowerSupplies = psus

	rec.GPUBenchmarkURL = LookupGPUBenchmarkURL(gpu.Chipset)

	return rec, nil
}
