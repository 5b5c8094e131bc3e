// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import (
	"fmt"
	"math"
)

// Safety margins applied to estimated system draw. A PSU below the
// required margin is a blocking issue; one between required and
// comfortable is a warning.
const (
	requiredPSUMargin    = 1.25
	comfortablePSUMargin = 1.5
)

// psuRecommendationMargin is the scale factor of the coarser
// VRAM-tier PSU sizing model used for recommendations. It is a
// separate model from the TDP-based budget above and the two must not
// be conflated.
const psuRecommendationMargin = 1.30

// AnalyzePowerBudget compares estimated system draw against available
// PSU wattage. It returns the numeric estimate plus at most one
// blocking issue or one warning. Comparisons use the untruncated
// wattages; the returned PowerEstimate truncates for display.
func AnalyzePowerBudget(gpuWatts, cpuWatts, psuWatts float64) (PowerEstimate, string, string) {
	total := gpuWatts + cpuWatts
	required := total * requiredPSUMargin

	estimate := PowerEstimate{
		GPUPowerTDP:    int(gpuWatts),
		CPUPowerTDP:    int(cpuWatts),
		TotalEstimated: int(total),
		PSUAvailable:   int(psuWatts),
		Margin:         int(psuWatts - total),
	}

	if psuWatts < required {
		issue := fmt.Sprintf(
			"power supply wattage %dW is below the %dW required for an estimated %dW draw with a 25%% safety margin",
			estimate.PSUAvailable, int(math.Round(required)), estimate.TotalEstimated,
		)
		return estimate, issue, ""
	}

	if psuWatts < total*comfortablePSUMargin {
		warning := fmt.Sprintf(
			"power supply is tight: %dW available for an estimated %dW draw leaves only %dW of headroom",
			estimate.PSUAvailable, estimate.TotalEstimated, estimate.Margin,
		)
		return estimate, "", warning
	}

	return estimate, "", ""
}

// EstimatePSURequirement sizes a recommended PSU from CPU TDP and GPU
// VRAM capacity. GPU draw is read off a coarse VRAM tier table, summed
// with CPU TDP, and scaled by a 30% margin. The result is truncated to
// a whole wattage.
func EstimatePSURequirement(cpuTDP, gpuMemoryGB float64) int {
	var gpuWatts float64
	switch {
	case gpuMemoryGB <= 4:
		gpuWatts = 75
	case gpuMemoryGB <= 6:
		gpuWatts = 120
	case gpuMemoryGB <= 8:
		gpuWatts = 200
	case gpuMemoryGB <= 12:
		gpuWatts = 250
	case gpuMemoryGB <= 16:
		gpuWatts = 300
	case gpuMemoryGB <= 20:
		gpuWatts = 350
	default:
		gpuWatts = 400
	}

	return int((cpuTDP + gpuWatts) * psuRecommendationMargin)
}
