// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import (
	"context"

	"github.com/buildsensei/buildsensei/internal/models"
)

// Catalog is the read-only component store the engine queries. It is
// implemented by the database layer; the interface lives here so the
// engine has no dependency on the storage package (and tests can supply
// an in-memory fake).
//
// Lookup methods return an error wrapping ErrComponentNotFound when the
// name does not resolve. List methods return rows in the stated order;
// an empty result is a valid, non-error outcome.
type Catalog interface {
	// CPUByName returns the CPU record with the given name.
	CPUByName(ctx context.Context, name string) (*models.CPU, error)

	// GPUByName returns the video card record with the given name.
	GPUByName(ctx context.Context, name string) (*models.GPU, error)

	// MotherboardByName returns the motherboard record with the given name.
	MotherboardByName(ctx context.Context, name string) (*models.Motherboard, error)

	// MemoryByName returns the memory kit record with the given name.
	MemoryByName(ctx context.Context, name string) (*models.Memory, error)

	// PowerSupplyByName returns the PSU record with the given name.
	PowerSupplyByName(ctx context.Context, name string) (*models.PowerSupply, error)

	// MotherboardsBySocket returns up to limit motherboards with exactly
	// the given socket value, cheapest first.
	MotherboardsBySocket(ctx context.Context, socket string, limit int) ([]models.Motherboard, error)

	// MemoryRanked returns up to limit memory kits ordered by speed
	// descending, CAS latency ascending, then price ascending. Kits with
	// total capacity below minCapacityGB are excluded when it is > 0.
	MemoryRanked(ctx context.Context, minCapacityGB, limit int) ([]models.Memory, error)

	// PowerSuppliesByWattage returns up to limit PSUs with wattage at
	// least minWattage, ordered by wattage ascending then price ascending.
	PowerSuppliesByWattage(ctx context.Context, minWattage float64, limit int) ([]models.PowerSupply, error)
}

// Selection names the five components of a build under evaluation.
type Selection struct {
	CPU         string `json:"cpu" validate:"required"`
	GPU         string `json:"gpu" validate:"required"`
	Motherboard string `json:"motherboard" validate:"required"`
	Memory      string `json:"memory" validate:"required"`
	PowerSupply string `json:"power_supply" validate:"required"`
}

// PowerEstimate is the power budget evidence attached to an evaluation.
// All wattages are truncated to integers for display; the analyzer
// compares the untruncated values internally.
type PowerEstimate struct {
	GPUPowerTDP    int `json:"gpu_power_tdp"`
	CPUPowerTDP    int `json:"cpu_power_tdp"`
	TotalEstimated int `json:"total_estimated"`
	PSUAvailable   int `json:"psu_available"`
	Margin         int `json:"margin"`
}

// MemorySlotCheck is the memory module vs motherboard slot comparison.
type MemorySlotCheck struct {
	Modules   int `json:"modules"`
	Slots     int `json:"slots"`
	SlotsFree int `json:"slots_free"`
}

// CompatibilityResult is the engine's primary output: one verdict with
// ordered blocking issues, non-blocking warnings, and the numeric
// evidence behind them.
//
// Invariant: Compatible == (len(Issues) == 0).
type CompatibilityResult struct {
	Compatible bool              `json:"compatible"`
	Message    string            `json:"message,omitempty"`
	Issues     []string          `json:"issues"`
	Warnings   []string          `json:"warnings"`
	Power      PowerEstimate     `json:"power"`
	Memory     MemorySlotCheck   `json:"memory"`
	Bottleneck BottleneckVerdict `json:"bottleneck"`
}

// Recommendations is the full build recommendation for a CPU/GPU pair,
// mirroring the shape of the catalog's top-3 ranking queries.
type Recommendations struct {
	CPU                *models.CPU          `json:"cpu"`
	GPU                *models.GPU          `json:"gpu"`
	Socket             string               `json:"socket,omitempty"`
	Motherboards       []models.Motherboard `json:"motherboard_top3"`
	Memory             []models.Memory      `json:"ram_top3"`
	PowerSupplies      []models.PowerSupply `json:"psu_top3"`
	RequiredWattage    int                  `json:"required_wattage"`
	GPUBenchmarkURL    string               `json:"gpu_benchmark_url,omitempty"`
}
