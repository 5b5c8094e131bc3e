// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buildsensei/buildsensei/internal/logging"
	"github.com/buildsensei/buildsensei/internal/metrics"
	"github.com/buildsensei/buildsensei/internal/models"
)

// Evaluator produces one compatibility verdict for a five-component
// selection. It is stateless between calls; concurrent evaluations are
// independent and share only the catalog.
type Evaluator struct {
	catalog Catalog
	cfg     Config
	logger  zerolog.Logger
}

// NewEvaluator creates an evaluator over the given catalog.
func NewEvaluator(catalog Catalog, cfg Config) *Evaluator {
	return &Evaluator{
		catalog: catalog,
		cfg:     cfg,
		logger:  logging.With().Str("component", "evaluator").Logger(),
	}
}

// Evaluate resolves the five selected components and runs the socket,
// memory slot, power budget, and bottleneck checks.
//
// An unresolved component name or an unparsable memory descriptor is
// terminal and returns an error. Everything else degrades to blocking
// issues or warnings inside a successful result; in particular an
// unrecognized microarchitecture becomes a blocking issue, not an
// error, so the remaining evidence is still reported.
func (e *Evaluator) Evaluate(ctx context.Context, sel Selection) (*CompatibilityResult, error) {
	cpu, err := e.catalog.CPUByName(ctx, sel.CPU)
	if err != nil {
		return nil, e.resolveError(models.KindCPU, sel.CPU, err)
	}
	gpu, err := e.catalog.GPUByName(ctx, sel.GPU)
	if err != nil {
		return nil, e.resolveError(models.KindGPU, sel.GPU, err)
	}
	mb, err := e.catalog.MotherboardByName(ctx, sel.Motherboard)
	if err != nil {
		return nil, e.resolveError(models.KindMotherboard, sel.Motherboard, err)
	}
	mem, err := e.catalog.MemoryByName(ctx, sel.Memory)
	if err != nil {
		return nil, e.resolveError(models.KindMemory, sel.Memory, err)
	}
	psu, err := e.catalog.PowerSupplyByName(ctx, sel.PowerSupply)
	if err != nil {
		return nil, e.resolveError(models.KindPowerSupply, sel.PowerSupply, err)
	}

	result := &CompatibilityResult{
		Issues:   []string{},
		Warnings: []string{},
	}

	// Socket check.
	socket, ok := DeduceSocket(cpu.Microarchitecture)
	if !ok {
		result.Issues = append(result.Issues, fmt.Sprintf(
			"cannot determine CPU socket from microarchitecture %q", cpu.Microarchitecture))
	} else if !strings.EqualFold(socket, mb.Socket) {
		result.Issues = append(result.Issues, fmt.Sprintf(
			"CPU socket %s does not match motherboard socket %s", socket, mb.Socket))
	}

	// Memory slot check. An unparsable module descriptor is terminal.
	moduleCount, err := ParseModuleCount(mem.Modules)
	if err != nil {
		metrics.RecordEvaluation("parse_failure")
		return nil, err
	}
	modules := int(moduleCount)
	free := mb.MemorySlots - modules
	result.Memory = MemorySlotCheck{
		Modules:   modules,
		Slots:     mb.MemorySlots,
		SlotsFree: free,
	}
	switch {
	case free < 0:
		result.Issues = append(result.Issues, fmt.Sprintf(
			"memory kit has %d modules but the motherboard only has %d slots", modules, mb.MemorySlots))
	case free == 0:
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"all %d memory slots are populated, no room to expand", mb.MemorySlots))
	case free == 1:
		result.Warnings = append(result.Warnings, "only one memory slot remains free")
	}

	// Power budget check. The CPU draw uses the configured default
	// constant; per-model CPU draw is not separately modeled here.
	gpuWatts := LookupGPUPower(gpu.Chipset)
	estimate, issue, warning := AnalyzePowerBudget(gpuWatts, e.cfg.CPUDefaultPowerDraw, psu.Wattage)
	result.Power = estimate
	if issue != "" {
		result.Issues = append(result.Issues, issue)
	}
	if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	// Bottleneck check, always attached and never blocking.
	cpuTDP := float64(0)
	if cpu.TDP != nil {
		cpuTDP = *cpu.TDP
	}
	result.Bottleneck = DetectBottleneck(cpu.CoreCount, cpu.BoostClock, cpuTDP, gpuWatts)
	metrics.BottleneckVerdicts.WithLabelValues(result.Bottleneck.Result).Inc()

	result.Compatible = len(result.Issues) == 0
	if result.Compatible {
		result.Message = "all selected components are compatible"
		metrics.RecordEvaluation("compatible")
	} else {
		metrics.RecordEvaluation("incompatible")
	}

	e.logger.Debug().
		Bool("compatible", result.Compatible).
		Int("issues", len(result.Issues)).
		Int("warnings", len(result.Warnings)).
		Str("bottleneck", result.Bottleneck.Result).
		Msg("Evaluation complete")

	return result, nil
}

// resolveError maps a catalog lookup failure to the engine's error
// taxonomy, distinguishing the slot that failed.
func (e *Evaluator) resolveError(kind models.ComponentKind, name string, err error) error {
	if errors.Is(err, ErrComponentNotFound) {
		metrics.RecordEvaluation("not_found")
		return &NotFoundError{Kind: kind, Name: name}
	}
	return fmt.Errorf("resolving %s %q: %w", kind, name, err)
}
