// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import "strings"

// benchmarkEntry pairs a canonical chipset model with its TechPowerUp
// specs page.
type benchmarkEntry struct {
	model string
	url   string
}

// gpuBenchmarkURLs is informational enrichment only; a miss never
// affects a compatibility verdict.
var gpuBenchmarkURLs = []benchmarkEntry{
	// NVIDIA RTX 50 series
	{"RTX 5090", "https://www.techpowerup.com/gpu-specs/geforce-rtx-5090.c4216"},
	{"RTX 5080", "https://www.techpowerup.com/gpu-specs/geforce-rtx-5080.c4217"},
	{"RTX 5070 Ti", "https://www.techpowerup.com/gpu-specs/geforce-rtx-5070-ti.c4243"},
	{"RTX 5070", "https://www.techpowerup.com/gpu-specs/geforce-rtx-5070.c4218"},
	{"RTX 5060 Ti", "https://www.techpowerup.com/gpu-specs/geforce-rtx-5060-ti-16-gb.c4292"},
	{"RTX 5060", "https://www.techpowerup.com/gpu-specs/geforce-rtx-5060.c4219"},

	// NVIDIA RTX 40 series
	{"RTX 4090", "https://www.techpowerup.com/gpu-specs/geforce-rtx-4090.c3889"},
	{"RTX 4080 SUPER", "https://www.techpowerup.com/gpu-specs/geforce-rtx-4080-super.c4182"},
	{"RTX 4080", "https://www.techpowerup.com/gpu-specs/geforce-rtx-4080.c3888"},
	{"RTX 4070 Ti SUPER", "https://www.techpowerup.com/gpu-specs/geforce-rtx-4070-ti-super.c4187"},
	{"RTX 4070 Ti", "https://www.techpowerup.com/gpu-specs/geforce-rtx-4070-ti.c3950"},
	{"RTX 4070 SUPER", "https://www.techpowerup.com/gpu-specs/geforce-rtx-4070-super.c4186"},
	{"RTX 4070", "https://www.techpowerup.com/gpu-specs/geforce-rtx-4070.c3924"},
	{"RTX 4060 Ti", "https://www.techpowerup.com/review/nvidia-geforce-rtx-4060-ti-16-gb/"},
	{"RTX 4060", "https://www.techpowerup.com/gpu-specs/geforce-rtx-4060.c4107"},

	// NVIDIA RTX 30 series
	{"RTX 3090", "https://www.techpowerup.com/gpu-specs/geforce-rtx-3090.c3622"},
	{"RTX 3080 Ti", "https://www.techpowerup.com/gpu-specs/geforce-rtx-3080-ti.c3735"},
	{"RTX 3080", "https://www.techpowerup.com/gpu-specs/geforce-rtx-3080.c3621"},
	{"RTX 3070", "https://www.techpowerup.com/gpu-specs/geforce-rtx-3070.c3675"},
	{"RTX 3060 Ti", "https://www.techpowerup.com/gpu-specs/geforce-rtx-3060-ti.c3681"},
	{"RTX 3060", "https://www.techpowerup.com/gpu-specs/geforce-rtx-3060.c3682"},
	{"RTX 3050", "https://www.techpowerup.com/gpu-specs/geforce-rtx-3050.c3858"},

	// AMD RX 9000 series
	{"RX 9070 XT", "https://www.techpowerup.com/gpu-specs/radeon-rx-9070-xt.c4229"},
	{"RX 9070", "https://www.techpowerup.com/gpu-specs/radeon-rx-9070.c4250"},
	{"RX 9060 XT", "https://www.techpowerup.com/gpu-specs/radeon-rx-9060-xt-16-gb.c4293"},
	{"RX 9060", "https://www.techpowerup.com/gpu-specs/radeon-rx-9060.c4326"},

	// AMD RX 7000 series
	{"RX 7900 XTX", "https://www.techpowerup.com/gpu-specs/radeon-rx-7900-xtx.c3941"},
	{"RX 7900 XT", "https://www.techpowerup.com/gpu-specs/radeon-rx-7900-xt.c3912"},
	{"RX 7900", "https://www.techpowerup.com/gpu-specs/radeon-rx-7900-gre.c4166"},
	{"RX 7800 XT", "https://www.techpowerup.com/gpu-specs/radeon-rx-7800-xt.c3839"},
	{"RX 7700 XT", "https://www.techpowerup.com/gpu-specs/radeon-rx-7700-xt.c3911"},
	{"RX 7700", "https://www.techpowerup.com/gpu-specs/radeon-rx-7700.c4159"},
	{"RX 7600 XT", "https://www.techpowerup.com/gpu-specs/radeon-rx-7600-xt.c4190"},
	{"RX 7600", "https://www.techpowerup.com/gpu-specs/radeon-rx-7600.c4153"},

	// AMD RX 6000 series
	{"RX 6800 XT", "https://www.techpowerup.com/gpu-specs/radeon-rx-6800-xt.c3694"},
	{"RX 6800", "https://www.techpowerup.com/gpu-specs/radeon-rx-6800.c3713"},
	{"RX 6750 XT", "https://www.techpowerup.com/gpu-specs/radeon-rx-6750-xt.c3879"},
	{"RX 6700 XT", "https://www.techpowerup.com/gpu-specs/radeon-rx-6700-xt.c3695"},
	{"RX 6700", "https://www.techpowerup.com/gpu-specs/radeon-rx-6700.c3716"},
	{"RX 6600 XT", "https://www.techpowerup.com/gpu-specs/radeon-rx-6600-xt.c3774"},
	{"RX 6600", "https://www.techpowerup.com/gpu-specs/radeon-rx-6600.c3696"},

	// Intel Arc
	{"Arc B580", "https://www.techpowerup.com/gpu-specs/arc-b580.c4244"},
	{"Arc A770", "https://www.techpowerup.com/gpu-specs/arc-a770.c3914"},
	{"Arc A750", "https://www.techpowerup.com/gpu-specs/arc-a750.c3929"},

	// NVIDIA legacy
	{"GTX 1660 SUPER", "https://www.techpowerup.com/gpu-specs/geforce-gtx-1660-super.c3458"},
	{"GTX 1660", "https://www.techpowerup.com/gpu-specs/geforce-gtx-1660.c3365"},
	{"GT 710", "https://www.techpowerup.com/gpu-specs/geforce-gt-710.c1990"},
}

// LookupGPUBenchmarkURL returns the TechPowerUp specs URL for a GPU
// chipset label. Matching follows the same policy as LookupGPUPower:
// exact case-insensitive match first, then the longest table model
// contained in the label. Returns "" when nothing matches or the label
// is empty.
func LookupGPUBenchmarkURL(chipset string) string {
	label := strings.ToUpper(strings.TrimSpace(chipset))
	if label == "" {
		return ""
	}

	for _, entry := range gpuBenchmarkURLs {
		if strings.ToUpper(entry.model) == label {
			return entry.url
		}
	}

	bestLen := 0
	bestURL := ""
	for _, entry := range gpuBenchmarkURLs {
		if strings.Contains(label, strings.ToUpper(entry.model)) && len(entry.model) > bestLen {
			bestLen = len(entry.model)
			bestURL = entry.url
		}
	}
	return bestURL
}
