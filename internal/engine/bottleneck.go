// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import "fmt"

// Bottleneck result tags. Informational only; a bottleneck verdict
// never blocks compatibility.
const (
	BottleneckNone = "no_significant_bottleneck"
	BottleneckCPU  = "possible_cpu_bottleneck"
	BottleneckGPU  = "possible_gpu_bottleneck"
)

// BottleneckVerdict is the detector's output: a machine-readable tag,
// a human-readable summary, and the numeric evidence behind the call.
type BottleneckVerdict struct {
	Result  string             `json:"result"`
	Summary string             `json:"summary"`
	Details map[string]float64 `json:"details"`
}

// DetectBottleneck scores a CPU/GPU pairing for imbalance. The CPU
// score is core count times boost clock; the GPU score is its TDP.
// Rules run in a fixed order and the first match wins. Missing inputs
// score as zero so the detector never fails on absent data.
func DetectBottleneck(coreCount int, boostClockGHz, cpuTDP, gpuTDP float64) BottleneckVerdict {
	cpuScore := float64(coreCount) * boostClockGHz
	gpuScore := gpuTDP

	details := map[string]float64{
		"core_count":  float64(coreCount),
		"boost_clock": boostClockGHz,
		"cpu_tdp":     cpuTDP,
		"gpu_tdp":     gpuTDP,
		"cpu_score":   cpuScore,
		"gpu_score":   gpuScore,
	}

	verdict := func(result, summary string) BottleneckVerdict {
		return BottleneckVerdict{Result: result, Summary: summary, Details: details}
	}

	if cpuScore >= 80 && gpuScore >= 400 {
		return verdict(BottleneckNone, "high-end combination, both components are well matched")
	}

	if coreCount <= 4 && gpuTDP >= 300 {
		return verdict(BottleneckCPU, fmt.Sprintf(
			"CPU with %d cores may limit a demanding %.0fW GPU", coreCount, gpuTDP))
	}

	if boostClockGHz < 3.5 && gpuTDP >= 350 {
		return verdict(BottleneckCPU, fmt.Sprintf(
			"CPU boost clock of %.1fGHz may limit a demanding %.0fW GPU", boostClockGHz, gpuTDP))
	}

	if coreCount >= 10 && gpuTDP <= 200 {
		return verdict(BottleneckGPU, fmt.Sprintf(
			"GPU at %.0fW may hold back a strong %d-core CPU", gpuTDP, coreCount))
	}

	relative := cpuScore / max(1.0, gpuScore/50.0)
	details["relative_score"] = relative

	if relative > 12.0 {
		return verdict(BottleneckGPU, "CPU capacity well exceeds what the GPU can use")
	}
	if gpuScore > 0 && relative < 1.8 {
		return verdict(BottleneckCPU, "GPU demand well exceeds what the CPU can feed")
	}

	return verdict(BottleneckNone, "no significant bottleneck expected for this pairing")
}
