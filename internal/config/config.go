// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Engine   EngineConfig   `koanf:"engine"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - SERVER_HOST: Bind address (default: 0.0.0.0)
//   - SERVER_PORT: Listen port (default: 8484)
//   - SERVER_TIMEOUT: Read/write timeout (default: 30s)
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// DatabaseConfig holds DuckDB catalog store settings.
//
// Environment Variables:
//   - DATABASE_PATH: DuckDB file path, empty for in-memory (default: /data/buildsensei.duckdb)
//   - DATABASE_MAX_MEMORY: DuckDB memory limit (default: 1GB)
//   - DATABASE_THREADS: DuckDB thread count, 0 = runtime.NumCPU()
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// CatalogConfig controls CSV dataset ingestion into the catalog tables.
//
// DatasetDir must contain the per-kind CSV files (cpu.csv, video-card.csv,
// motherboard.csv, memory.csv, power-supply.csv). LoadOnStartup ingests
// them when the catalog tables are empty; ReloadMinInterval throttles
// explicit reloads.
type CatalogConfig struct {
	DatasetDir        string        `koanf:"dataset_dir"`
	LoadOnStartup     bool          `koanf:"load_on_startup"`
	ReloadMinInterval time.Duration `koanf:"reload_min_interval"`

	// RefreshInterval schedules periodic dataset re-ingestion.
	// 0 disables the scheduler.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// EngineConfig holds inference engine policy knobs. The defaults match
// the canonical heuristics; they are exposed here so deployments can
// tighten the memory-capacity filter or the recommendation count without
// a rebuild.
type EngineConfig struct {
	// TopN is the number of candidates each ranker returns.
	TopN int `koanf:"top_n"`

	// CPUDefaultPowerDraw is the wattage assumed for the CPU in the
	// compatibility power check when CPU draw is not separately modeled.
	CPUDefaultPowerDraw float64 `koanf:"cpu_default_power_draw"`

	// MinMemoryCapacityGB filters memory recommendations to kits of at
	// least this total capacity. 0 disables the filter.
	MinMemoryCapacityGB int `koanf:"min_memory_capacity_gb"`

	// CacheTTL is how long catalog listing responses are cached.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for invalid values. It is called by
// Load() so a misconfigured process fails at startup, not on first request.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d: must be 1-65535", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("invalid server timeout %s: must be positive", c.Server.Timeout)
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("invalid database threads %d: must be >= 0", c.Database.Threads)
	}
	if c.Engine.TopN < 1 {
		return fmt.Errorf("invalid engine top_n %d: must be >= 1", c.Engine.TopN)
	}
	if c.Engine.CPUDefaultPowerDraw <= 0 {
		return fmt.Errorf("invalid cpu_default_power_draw %.1f: must be positive", c.Engine.CPUDefaultPowerDraw)
	}
	if c.Engine.MinMemoryCapacityGB < 0 {
		return fmt.Errorf("invalid min_memory_capacity_gb %d: must be >= 0", c.Engine.MinMemoryCapacityGB)
	}
	if c.Catalog.LoadOnStartup && c.Catalog.DatasetDir == "" {
		return fmt.Errorf("catalog.load_on_startup requires catalog.dataset_dir")
	}
	if c.Catalog.RefreshInterval < 0 {
		return fmt.Errorf("invalid catalog refresh_interval %s: must be >= 0", c.Catalog.RefreshInterval)
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitRequests < 1 {
			return fmt.Errorf("invalid rate_limit_requests %d: must be >= 1", c.API.RateLimitRequests)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("invalid rate_limit_window %s: must be positive", c.API.RateLimitWindow)
		}
	}
	return nil
}
