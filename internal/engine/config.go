// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import "fmt"

// Config tunes the engine's numeric knobs. Zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// TopN is how many candidates each recommendation query returns.
	TopN int

	// CPUDefaultPowerDraw is the wattage assumed for CPUs whose TDP
	// column is empty.
	CPUDefaultPowerDraw float64

	// MinMemoryCapacityGB excludes memory kits below this total capacity
	// from recommendations. Zero disables the filter.
	MinMemoryCapacityGB int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		TopN:                3,
		CPUDefaultPowerDraw: 125,
		MinMemoryCapacityGB: 0,
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1, got %d", c.TopN)
	}
	if c.CPUDefaultPowerDraw <= 0 {
		return fmt.Errorf("cpu_default_power_draw must be positive, got %v", c.CPUDefaultPowerDraw)
	}
	if c.MinMemoryCapacityGB < 0 {
		return fmt.Errorf("min_memory_capacity_gb must not be negative, got %d", c.MinMemoryCapacityGB)
	}
	return nil
}
