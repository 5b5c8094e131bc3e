// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package models

// ComponentKind identifies one of the five catalog tables.
type ComponentKind string

// Component kinds. The string values double as catalog table names,
// matching the CSV datasets the catalog is loaded from.
const (
	KindCPU         ComponentKind = "cpu"
	KindGPU         ComponentKind = "video_card"
	KindMotherboard ComponentKind = "motherboard"
	KindMemory      ComponentKind = "memory"
	KindPowerSupply ComponentKind = "power_supply"
)

// Valid reports whether k names a known component kind.
func (k ComponentKind) Valid() bool {
	switch k {
	case KindCPU, KindGPU, KindMotherboard, KindMemory, KindPowerSupply:
		return true
	default:
		return false
	}
}

// CPU is a processor catalog record.
//
// Microarchitecture is free text (e.g. "Zen 4", "Raptor Lake Refresh");
// the engine deduces the physical socket from it. TDP may be absent in
// the source dataset, in which case the engine substitutes its default
// CPU power draw.
type CPU struct {
	Name              string   `json:"name"`
	Price             *float64 `json:"price,omitempty"`
	Microarchitecture string   `json:"microarchitecture"`
	CoreCount         int      `json:"core_count"`
	CoreClock         *float64 `json:"core_clock,omitempty"`
	BoostClock        float64  `json:"boost_clock"`
	TDP               *float64 `json:"tdp,omitempty"`
	Graphics          string   `json:"graphics,omitempty"`
}

// GPU is a video card catalog record. Chipset is the canonical model
// label ("GeForce RTX 4070") used for power and benchmark lookups;
// MemoryGB is the declared VRAM size.
type GPU struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price,omitempty"`
	Chipset  string   `json:"chipset"`
	MemoryGB float64  `json:"memory"`
	Length   *float64 `json:"length,omitempty"`
}

// Motherboard is a motherboard catalog record.
type Motherboard struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price,omitempty"`
	Socket      string   `json:"socket"`
	FormFactor  string   `json:"form_factor,omitempty"`
	MaxMemoryGB int      `json:"max_memory"`
	MemorySlots int      `json:"memory_slots"`
}

// Memory is a RAM kit catalog record. Modules is a free-text descriptor
// like "2 x 8GB"; the engine parses the module count out of it.
type Memory struct {
	Name       string   `json:"name"`
	Price      *float64 `json:"price,omitempty"`
	SpeedMHz   *int     `json:"speed,omitempty"`
	Modules    string   `json:"modules"`
	CASLatency *float64 `json:"cas_latency,omitempty"`
}

// PowerSupply is a PSU catalog record.
type PowerSupply struct {
	Name       string   `json:"name"`
	Price      *float64 `json:"price,omitempty"`
	Efficiency string   `json:"efficiency,omitempty"`
	Wattage    float64  `json:"wattage"`
	Modular    string   `json:"modular,omitempty"`
}
