// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/buildsensei/buildsensei/internal/engine"
	"github.com/buildsensei/buildsensei/internal/metrics"
	"github.com/buildsensei/buildsensei/internal/models"
)

// CatalogProvider adapts the DuckDB catalog to the engine.Catalog
// interface. All methods are safe for concurrent use.
type CatalogProvider struct {
	db *DB
}

// NewCatalog creates the engine-facing catalog adapter.
func NewCatalog(db *DB) *CatalogProvider {
	return &CatalogProvider{db: db}
}

// CPUByName returns the CPU record with the given name.
func (c *CatalogProvider) CPUByName(ctx context.Context, name string) (*models.CPU, error) {
	start := time.Now()
	query := `SELECT name, price, core_count, core_clock, boost_clock, microarchitecture, tdp, graphics
		FROM cpu WHERE name = ? LIMIT 1`

	row := c.db.conn.QueryRowContext(ctx, query, name)
	cpu, err := scanCPU(row)
	metrics.RecordDBQuery("select", "cpu", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cpu %q: %w", name, engine.ErrComponentNotFound)
		}
		return nil, fmt.Errorf("failed to query cpu: %w", err)
	}
	return cpu, nil
}

// GPUByName returns the video card record with the given name.
func (c *CatalogProvider) GPUByName(ctx context.Context, name string) (*models.GPU, error) {
	start := time.Now()
	query := `SELECT name, price, chipset, memory, length
		FROM video_card WHERE name = ? LIMIT 1`

	row := c.db.conn.QueryRowContext(ctx, query, name)
	gpu, err := scanGPU(row)
	metrics.RecordDBQuery("select", "video_card", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("video card %q: %w", name, engine.ErrComponentNotFound)
		}
		return nil, fmt.Errorf("failed to query video card: %w", err)
	}
	return gpu, nil
}

// MotherboardByName returns the motherboard record with the given name.
func (c *CatalogProvider) MotherboardByName(ctx context.Context, name string) (*models.Motherboard, error) {
	start := time.Now()
	query := `SELECT name, price, socket, form_factor, max_memory, memory_slots
		FROM motherboard WHERE name = ? LIMIT 1`

	row := c.db.conn.QueryRowContext(ctx, query, name)
	mb, err := scanMotherboard(row)
	metrics.RecordDBQuery("select", "motherboard", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("motherboard %q: %w", name, engine.ErrComponentNotFound)
		}
		return nil, fmt.Errorf("failed to query motherboard: %w", err)
	}
	return mb, nil
}

// MemoryByName returns the memory kit record with the given name.
func (c *CatalogProvider) MemoryByName(ctx context.Context, name string) (*models.Memory, error) {
	start := time.Now()
	query := `SELECT name, price, speed, modules, cas_latency
		FROM memory WHERE name = ? LIMIT 1`

	row := c.db.conn.QueryRowContext(ctx, query, name)
	mem, err := scanMemory(row)
	metrics.RecordDBQuery("select", "memory", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("memory %q: %w", name, engine.ErrComponentNotFound)
		}
		return nil, fmt.Errorf("failed to query memory: %w", err)
	}
	return mem, nil
}

// PowerSupplyByName returns the PSU record with the given name.
func (c *CatalogProvider) PowerSupplyByName(ctx context.Context, name string) (*models.PowerSupply, error) {
	start := time.Now()
	query := `SELECT name, price, efficiency, wattage, modular
		FROM power_supply WHERE name = ? LIMIT 1`

	row := c.db.conn.QueryRowContext(ctx, query, name)
	psu, err := scanPowerSupply(row)
	metrics.RecordDBQuery("select", "power_supply", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("power supply %q: %w", name, engine.ErrComponentNotFound)
		}
		return nil, fmt.Errorf("failed to query power supply: %w", err)
	}
	return psu, nil
}

// MotherboardsBySocket returns up to limit motherboards with exactly
// the given socket, cheapest first. Unpriced boards sort last.
func (c *CatalogProvider) MotherboardsBySocket(ctx context.Context, socket string, limit int) ([]models.Motherboard, error) {
	start := time.Now()
	query := `SELECT name, price, socket, form_factor, max_memory, memory_slots
		FROM motherboard
		WHERE socket = ?
		ORDER BY price ASC NULLS LAST
		LIMIT ?`

	rows, err := c.db.conn.QueryContext(ctx, query, socket, limit)
	metrics.RecordDBQuery("rank", "motherboard", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to rank motherboards: %w", err)
	}
	defer rows.Close()

	boards := make([]models.Motherboard, 0, limit)
	for rows.Next() {
		mb, err := scanMotherboardRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan motherboard: %w", err)
		}
		boards = append(boards, *mb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating motherboards: %w", err)
	}
	return boards, nil
}

// kitCapacityPattern extracts module count and per-module size from a
// descriptor like "2 x 8GB".
var kitCapacityPattern = regexp.MustCompile(`(?i)^\s*(\d+)\s*x\s*(\d+)`)

// kitCapacityGB returns the total capacity of a memory kit descriptor,
// or 0 when the descriptor is unparsable.
func kitCapacityGB(modules string) int {
	m := kitCapacityPattern.FindStringSubmatch(modules)
	if m == nil {
		return 0
	}
	count, err1 := strconv.Atoi(m[1])
	size, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return 0
	}
	return count * size
}

// MemoryRanked returns up to limit memory kits ordered by speed
// descending, CAS latency ascending, then price ascending. When
// minCapacityGB > 0, kits below that total capacity (or with an
// unparsable descriptor) are excluded. Capacity lives inside the
// free-text modules column, so the filter runs after the SQL ranking.
func (c *CatalogProvider) MemoryRanked(ctx context.Context, minCapacityGB, limit int) ([]models.Memory, error) {
	start := time.Now()
	query := `SELECT name, price, speed, modules, cas_latency
		FROM memory
		WHERE speed IS NOT NULL
		ORDER BY speed DESC, cas_latency ASC NULLS LAST, price ASC NULLS LAST`

	rows, err := c.db.conn.QueryContext(ctx, query)
	metrics.RecordDBQuery("rank", "memory", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to rank memory: %w", err)
	}
	defer rows.Close()

	kits := make([]models.Memory, 0, limit)
	for rows.Next() {
		mem, err := scanMemoryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}
		if minCapacityGB > 0 && kitCapacityGB(mem.Modules) < minCapacityGB {
			continue
		}
		kits = append(kits, *mem)
		if len(kits) == limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memory: %w", err)
	}
	return kits, nil
}

// PowerSuppliesByWattage returns up to limit PSUs with wattage at
// least minWattage, smallest adequate unit first.
func (c *CatalogProvider) PowerSuppliesByWattage(ctx context.Context, minWattage float64, limit int) ([]models.PowerSupply, error) {
	start := time.Now()
	query := `SELECT name, price, efficiency, wattage, modular
		FROM power_supply
		WHERE wattage >= ?
		ORDER BY wattage ASC, price ASC NULLS LAST
		LIMIT ?`

	rows, err := c.db.conn.QueryContext(ctx, query, minWattage, limit)
	metrics.RecordDBQuery("rank", "power_supply", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to rank power supplies: %w", err)
	}
	defer rows.Close()

	psus := make([]models.PowerSupply, 0, limit)
	for rows.Next() {
		psu, err := scanPowerSupplyRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan power supply: %w", err)
		}
		psus = append(psus, *psu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating power supplies: %w", err)
	}
	return psus, nil
}

// ListCPUs returns all CPU records ordered by name.
func (c *CatalogProvider) ListCPUs(ctx context.Context) ([]models.CPU, error) {
	start := time.Now()
	query := `SELECT name, price, core_count, core_clock, boost_clock, microarchitecture, tdp, graphics
		FROM cpu ORDER BY name ASC`

	rows, err := c.db.conn.QueryContext(ctx, query)
	metrics.RecordDBQuery("list", "cpu", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list cpus: %w", err)
	}
	defer rows.Close()

	cpus := make([]models.CPU, 0)
	for rows.Next() {
		cpu, err := scanCPURows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cpu: %w", err)
		}
		cpus = append(cpus, *cpu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cpus: %w", err)
	}
	return cpus, nil
}

// ListGPUs returns all video card records ordered by name.
func (c *CatalogProvider) ListGPUs(ctx context.Context) ([]models.GPU, error) {
	start := time.Now()
	query := `SELECT name, price, chipset, memory, length
		FROM video_card ORDER BY name ASC`

	rows, err := c.db.conn.QueryContext(ctx, query)
	metrics.RecordDBQuery("list", "video_card", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list video cards: %w", err)
	}
	defer rows.Close()

	gpus := make([]models.GPU, 0)
	for rows.Next() {
		gpu, err := scanGPURows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video card: %w", err)
		}
		gpus = append(gpus, *gpu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video cards: %w", err)
	}
	return gpus, nil
}

// Counts returns the number of records per catalog table.
func (c *CatalogProvider) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(datasets))
	for _, ds := range datasets {
		var count int
		if err := c.db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+ds.table).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s rows: %w", ds.table, err)
		}
		counts[ds.table] = count
	}
	return counts, nil
}
