// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/buildsensei/buildsensei/internal/config"
	"github.com/buildsensei/buildsensei/internal/logging"
	"github.com/buildsensei/buildsensei/internal/metrics"
)

// ErrReloadThrottled is returned when a reload is requested before the
// configured minimum interval has elapsed.
var ErrReloadThrottled = errors.New("catalog reload throttled")

// datasetSpec ties a catalog table to its CSV file and column list.
type datasetSpec struct {
	table   string
	file    string
	columns []string
}

var datasets = []datasetSpec{
	{
		table:   "cpu",
		file:    "cpu.csv",
		columns: []string{"name", "price", "core_count", "core_clock", "boost_clock", "microarchitecture", "tdp", "graphics"},
	},
	{
		table:   "video_card",
		file:    "video-card.csv",
		columns: []string{"name", "price", "chipset", "memory", "length"},
	},
	{
		table:   "motherboard",
		file:    "motherboard.csv",
		columns: []string{"name", "price", "socket", "form_factor", "max_memory", "memory_slots"},
	},
	{
		table:   "memory",
		file:    "memory.csv",
		columns: []string{"name", "price", "speed", "modules", "cas_latency"},
	},
	{
		table:   "power_supply",
		file:    "power-supply.csv",
		columns: []string{"name", "price", "efficiency", "wattage", "modular"},
	},
}

// Loader ingests the CSV datasets into the catalog tables.
type Loader struct {
	db      *DB
	cfg     *config.CatalogConfig
	limiter *rate.Limiter
}

// NewLoader creates a dataset loader. Reloads are throttled to at most
// one per the configured minimum interval; the first call is always
// allowed.
func NewLoader(db *DB, cfg *config.CatalogConfig) *Loader {
	interval := cfg.ReloadMinInterval
	if interval <= 0 {
		interval = time.Minute
	}
	return &Loader{
		db:      db,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// LoadIfEmpty ingests all datasets when the cpu table has no rows.
// Called at startup so restarts against a populated database file do
// not re-ingest.
func (l *Loader) LoadIfEmpty(ctx context.Context) error {
	var count int
	if err := l.db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM cpu").Scan(&count); err != nil {
		return fmt.Errorf("failed to count cpu rows: %w", err)
	}
	if count > 0 {
		logging.Info().Int("cpus", count).Msg("Catalog already populated, skipping dataset load")
		l.refreshGauges(ctx)
		return nil
	}
	return l.LoadAll(ctx)
}

// Reload re-ingests all datasets, subject to the reload throttle.
func (l *Loader) Reload(ctx context.Context) error {
	if !l.limiter.Allow() {
		return ErrReloadThrottled
	}
	return l.LoadAll(ctx)
}

// LoadAll rewrites every catalog table from its CSV dataset. Each
// table is truncated and re-inserted in one transaction, so readers
// never observe a half-loaded table.
func (l *Loader) LoadAll(ctx context.Context) error {
	start := time.Now()

	for _, ds := range datasets {
		if err := l.loadDataset(ctx, ds); err != nil {
			return fmt.Errorf("loading %s: %w", ds.table, err)
		}
	}

	metrics.CatalogLoads.Inc()
	l.refreshGauges(ctx)

	logging.Info().
		Str("dataset_dir", l.cfg.DatasetDir).
		Dur("duration", time.Since(start)).
		Msg("Catalog datasets loaded")

	return nil
}

// loadDataset replaces one table's rows from its CSV file using
// DuckDB's read_csv_auto.
func (l *Loader) loadDataset(ctx context.Context, ds datasetSpec) error {
	path := filepath.Join(l.cfg.DatasetDir, ds.file)

	tx, err := l.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+ds.table); err != nil {
		return fmt.Errorf("failed to truncate: %w", err)
	}

	cols := strings.Join(ds.columns, ", ")
	// Single quotes in the path are doubled; DuckDB has no parameter
	// binding inside read_csv_auto.
	quoted := strings.ReplaceAll(path, "'", "''")
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) SELECT %s FROM read_csv_auto('%s', header=true)",
		ds.table, cols, cols, quoted,
	)
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ingest %s: %w", path, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

// refreshGauges updates the per-table component count gauges.
func (l *Loader) refreshGauges(ctx context.Context) {
	for _, ds := range datasets {
		var count int
		err := l.db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+ds.table).Scan(&count)
		if err != nil {
			logging.Warn().Err(err).Str("table", ds.table).Msg("Failed to count catalog rows")
			continue
		}
		metrics.CatalogComponents.WithLabelValues(ds.table).Set(float64(count))
	}
}
