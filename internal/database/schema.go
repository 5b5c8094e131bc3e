// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package database

import "fmt"

// Table columns mirror the PCPartPicker CSV headers so the loader can
// insert straight from read_csv_auto without renaming.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS cpu (
		name VARCHAR NOT NULL,
		price DOUBLE,
		core_count INTEGER,
		core_clock DOUBLE,
		boost_clock DOUBLE,
		microarchitecture VARCHAR,
		tdp DOUBLE,
		graphics VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS video_card (
		name VARCHAR NOT NULL,
		price DOUBLE,
		chipset VARCHAR,
		memory DOUBLE,
		length DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS motherboard (
		name VARCHAR NOT NULL,
		price DOUBLE,
		socket VARCHAR,
		form_factor VARCHAR,
		max_memory INTEGER,
		memory_slots INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS memory (
		name VARCHAR NOT NULL,
		price DOUBLE,
		speed INTEGER,
		modules VARCHAR,
		cas_latency DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS power_supply (
		name VARCHAR NOT NULL,
		price DOUBLE,
		efficiency VARCHAR,
		wattage DOUBLE,
		modular VARCHAR
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cpu_name ON cpu(name)`,
	`CREATE INDEX IF NOT EXISTS idx_video_card_name ON video_card(name)`,
	`CREATE INDEX IF NOT EXISTS idx_motherboard_socket ON motherboard(socket)`,
	`CREATE INDEX IF NOT EXISTS idx_power_supply_wattage ON power_supply(wattage)`,
}

// createSchema creates the five catalog tables and their indexes.
func (db *DB) createSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
