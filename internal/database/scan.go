// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package database

import (
	"database/sql"

	"github.com/buildsensei/buildsensei/internal/models"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// The CSV datasets leave many numeric columns empty (unpriced or
// unreleased parts); those scan through sql.Null types and surface as
// nil pointers or zero values on the models.

func scanCPUFrom(s scanner) (*models.CPU, error) {
	var cpu models.CPU
	var price, coreClock, boostClock, tdp sql.NullFloat64
	var coreCount sql.NullInt64
	var microarch, graphics sql.NullString

	err := s.Scan(&cpu.Name, &price, &coreCount, &coreClock, &boostClock, &microarch, &tdp, &graphics)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		cpu.Price = &price.Float64
	}
	if coreCount.Valid {
		cpu.CoreCount = int(coreCount.Int64)
	}
	if coreClock.Valid {
		cpu.CoreClock = &coreClock.Float64
	}
	if boostClock.Valid {
		cpu.BoostClock = boostClock.Float64
	}
	cpu.Microarchitecture = microarch.String
	cpu.Graphics = graphics.String
	if tdp.Valid {
		cpu.TDP = &tdp.Float64
	}

	return &cpu, nil
}

func scanCPU(row *sql.Row) (*models.CPU, error)       { return scanCPUFrom(row) }
func scanCPURows(rows *sql.Rows) (*models.CPU, error) { return scanCPUFrom(rows) }

func scanGPUFrom(s scanner) (*models.GPU, error) {
	var gpu models.GPU
	var price, memory, length sql.NullFloat64
	var chipset sql.NullString

	err := s.Scan(&gpu.Name, &price, &chipset, &memory, &length)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		gpu.Price = &price.Float64
	}
	gpu.Chipset = chipset.String
	if memory.Valid {
		gpu.MemoryGB = memory.Float64
	}
	if length.Valid {
		gpu.Length = &length.Float64
	}

	return &gpu, nil
}

func scanGPU(row *sql.Row) (*models.GPU, error)       { return scanGPUFrom(row) }
func scanGPURows(rows *sql.Rows) (*models.GPU, error) { return scanGPUFrom(rows) }

func scanMotherboardFrom(s scanner) (*models.Motherboard, error) {
	var mb models.Motherboard
	var price sql.NullFloat64
	var socket, formFactor sql.NullString
	var maxMemory, memorySlots sql.NullInt64

	err := s.Scan(&mb.Name, &price, &socket, &formFactor, &maxMemory, &memorySlots)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		mb.Price = &price.Float64
	}
	mb.Socket = socket.String
	mb.FormFactor = formFactor.String
	if maxMemory.Valid {
		mb.MaxMemoryGB = int(maxMemory.Int64)
	}
	if memorySlots.Valid {
		mb.MemorySlots = int(memorySlots.Int64)
	}

	return &mb, nil
}

func scanMotherboard(row *sql.Row) (*models.Motherboard, error)       { return scanMotherboardFrom(row) }
func scanMotherboardRows(rows *sql.Rows) (*models.Motherboard, error) { return scanMotherboardFrom(rows) }

func scanMemoryFrom(s scanner) (*models.Memory, error) {
	var mem models.Memory
	var price, casLatency sql.NullFloat64
	var speed sql.NullInt64
	var modules sql.NullString

	err := s.Scan(&mem.Name, &price, &speed, &modules, &casLatency)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		mem.Price = &price.Float64
	}
	if speed.Valid {
		v := int(speed.Int64)
		mem.SpeedMHz = &v
	}
	mem.Modules = modules.String
	if casLatency.Valid {
		mem.CASLatency = &casLatency.Float64
	}

	return &mem, nil
}

func scanMemory(row *sql.Row) (*models.Memory, error)       { return scanMemoryFrom(row) }
func scanMemoryRows(rows *sql.Rows) (*models.Memory, error) { return scanMemoryFrom(rows) }

func scanPowerSupplyFrom(s scanner) (*models.PowerSupply, error) {
	var psu models.PowerSupply
	var price, wattage sql.NullFloat64
	var efficiency, modular sql.NullString

	err := s.Scan(&psu.Name, &price, &efficiency, &wattage, &modular)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		psu.Price = &price.Float64
	}
	psu.Efficiency = efficiency.String
	if wattage.Valid {
		psu.Wattage = wattage.Float64
	}
	psu.Modular = modular.String

	return &psu, nil
}

func scanPowerSupply(row *sql.Row) (*models.PowerSupply, error)       { return scanPowerSupplyFrom(row) }
func scanPowerSupplyRows(rows *sql.Rows) (*models.PowerSupply, error) { return scanPowerSupplyFrom(rows) }
