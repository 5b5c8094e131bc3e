// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// defaultGPUPower is assumed when a chipset matches no table entry and
// no tier rule.
const defaultGPUPower = 150

// gpuPowerTable maps canonical chipset model strings to board power in
// watts. Values are vendor TDP/TBP figures for reference cards.
var gpuPowerTable = map[string]float64{
	// NVIDIA RTX 50 series
	"RTX 5090":    575,
	"RTX 5080":    360,
	"RTX 5070 TI": 300,
	"RTX 5070":    250,
	"RTX 5060 TI": 180,
	"RTX 5060":    145,

	// NVIDIA RTX 40 series
	"RTX 4090":          450,
	"RTX 4080 SUPER":    320,
	"RTX 4080":          320,
	"RTX 4070 TI SUPER": 285,
	"RTX 4070 TI":       285,
	"RTX 4070 SUPER":    220,
	"RTX 4070":          200,
	"RTX 4060 TI":       160,
	"RTX 4060":          115,

	// NVIDIA RTX 30 series
	"RTX 3090 TI": 450,
	"RTX 3090":    350,
	"RTX 3080 TI": 350,
	"RTX 3080":    320,
	"RTX 3070 TI": 290,
	"RTX 3070":    220,
	"RTX 3060 TI": 200,
	"RTX 3060":    170,
	"RTX 3050":    130,

	// AMD RX 9000 series
	"RX 9070 XT": 304,
	"RX 9070":    220,
	"RX 9060 XT": 160,
	"RX 9060":    150,

	// AMD RX 7000 series
	"RX 7900 XTX": 355,
	"RX 7900 XT":  315,
	"RX 7900":     260,
	"RX 7800 XT":  263,
	"RX 7700 XT":  245,
	"RX 7700":     230,
	"RX 7600 XT":  190,
	"RX 7600":     165,

	// AMD RX 6000 series
	"RX 6800 XT": 300,
	"RX 6800":    250,
	"RX 6750 XT": 250,
	"RX 6700 XT": 230,
	"RX 6700":    175,
	"RX 6600 XT": 160,
	"RX 6600":    132,

	// Intel Arc
	"ARC B580": 190,
	"ARC A770": 225,
	"ARC A750": 225,

	// NVIDIA legacy
	"GTX 1660 SUPER": 125,
	"GTX 1660":       120,
	"GT 710":         19,
}

var digitRun = regexp.MustCompile(`\d+`)

// LookupGPUPower estimates board power in watts for a GPU chipset
// label. Resolution order: exact case-insensitive match, then the
// longest table model contained in the label, then a coarse tier
// fallback on the model number (x90 class 450W, x80 class 320W, x70
// class 250W), then defaultGPUPower. An empty label returns 0.
//
// A miss at every stage is not an error; the estimate degrades
// silently.
func LookupGPUPower(chipset string) float64 {
	label := strings.ToUpper(strings.TrimSpace(chipset))
	if label == "" {
		return 0
	}

	if watts, ok := gpuPowerTable[label]; ok {
		return watts
	}

	// Longest contained model wins so "RTX 4080 SUPER" is not
	// shadowed by "RTX 4080".
	bestLen := 0
	bestWatts := float64(0)
	for model, watts := range gpuPowerTable {
		if strings.Contains(label, model) && len(model) > bestLen {
			bestLen = len(model)
			bestWatts = watts
		}
	}
	if bestLen > 0 {
		return bestWatts
	}

	for _, run := range digitRun.FindAllString(label, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		switch n % 100 {
		case 90:
			return 450
		case 80:
			return 320
		case 70:
			return 250
		}
	}

	return defaultGPUPower
}
