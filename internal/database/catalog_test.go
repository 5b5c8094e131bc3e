// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package database

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/buildsensei/buildsensei/internal/engine"
)

// seedCatalog inserts a small fixed dataset used by the catalog tests.
func seedCatalog(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	stmts := []string{
		`INSERT INTO cpu VALUES
			('AMD Ryzen 7 7800X3D', 399.99, 8, 4.2, 5.0, 'Zen 4', 120, 'Radeon'),
			('AMD Ryzen 5 5600', 129.99, 6, 3.5, 4.4, 'Zen 3', 65, NULL),
			('Intel Core i5-12400F', 149.99, 6, 2.5, 4.4, 'Alder Lake', 65, NULL)`,
		`INSERT INTO video_card VALUES
			('MSI GeForce RTX 4070 Ventus', 549.99, 'GeForce RTX 4070', 12, 242),
			('Sapphire Pulse RX 7800 XT', 499.99, 'Radeon RX 7800 XT', 16, 280)`,
		`INSERT INTO motherboard VALUES
			('MSI PRO B650-P', 179.99, 'AM5', 'ATX', 128, 4),
			('ASRock B650M-H', 109.99, 'AM5', 'Micro ATX', 96, 2),
			('Gigabyte X670 AORUS', 259.99, 'AM5', 'ATX', 192, 4),
			('Priceless AM5 Board', NULL, 'AM5', 'ATX', 128, 4),
			('Gigabyte B550M DS3H', 99.99, 'AM4', 'Micro ATX', 128, 4)`,
		`INSERT INTO memory VALUES
			('Corsair Vengeance 32GB', 104.99, 6000, '2 x 16GB', 30),
			('G.Skill Trident Z5 32GB', 119.99, 6400, '2 x 16GB', 32),
			('Kingston Fury 16GB', 54.99, 6000, '2 x 8GB', 36),
			('Crucial Classic 8GB', 24.99, 3200, '1 x 8GB', 22),
			('Unspeeded Kit', 19.99, NULL, '2 x 4GB', 18)`,
		`INSERT INTO power_supply VALUES
			('Corsair RM850x', 139.99, '80+ Gold', 850, 'Full'),
			('EVGA 600 BR', 49.99, '80+ Bronze', 600, 'No'),
			('Seasonic Focus 650', 89.99, '80+ Gold', 650, 'Full'),
			('Thermaltake Smart 600', 44.99, '80+', 600, 'No')`,
	}
	for _, stmt := range stmts {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("Failed to seed catalog: %v", err)
		}
	}
}

func TestCPUByName(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	cpu, err := catalog.CPUByName(context.Background(), "AMD Ryzen 7 7800X3D")
	if err != nil {
		t.Fatalf("CPUByName() unexpected error: %v", err)
	}
	if cpu.Microarchitecture != "Zen 4" {
		t.Errorf("Microarchitecture = %q, want Zen 4", cpu.Microarchitecture)
	}
	if cpu.CoreCount != 8 || cpu.BoostClock != 5.0 {
		t.Errorf("unexpected cpu record: %+v", cpu)
	}
	if cpu.TDP == nil || *cpu.TDP != 120 {
		t.Errorf("TDP = %v, want 120", cpu.TDP)
	}
}

func TestCPUByNameNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	_, err := catalog.CPUByName(context.Background(), "Nonexistent CPU")
	if err == nil {
		t.Fatal("expected error for unknown cpu")
	}
	if !errors.Is(err, engine.ErrComponentNotFound) {
		t.Errorf("error = %v, want engine.ErrComponentNotFound", err)
	}
}

func TestGPUByNameHandlesNullables(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	gpu, err := catalog.GPUByName(context.Background(), "Sapphire Pulse RX 7800 XT")
	if err != nil {
		t.Fatalf("GPUByName() unexpected error: %v", err)
	}
	if gpu.Chipset != "Radeon RX 7800 XT" {
		t.Errorf("Chipset = %q", gpu.Chipset)
	}
	if gpu.MemoryGB != 16 {
		t.Errorf("MemoryGB = %v, want 16", gpu.MemoryGB)
	}
}

func TestMotherboardsBySocketOrdersByPrice(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	boards, err := catalog.MotherboardsBySocket(context.Background(), "AM5", 3)
	if err != nil {
		t.Fatalf("MotherboardsBySocket() unexpected error: %v", err)
	}

	wantNames := []string{"ASRock B650M-H", "MSI PRO B650-P", "Gigabyte X670 AORUS"}
	if len(boards) != len(wantNames) {
		t.Fatalf("got %d boards, want %d", len(boards), len(wantNames))
	}
	for i, want := range wantNames {
		if boards[i].Name != want {
			t.Errorf("boards[%d] = %q, want %q", i, boards[i].Name, want)
		}
	}
}

func TestMotherboardsBySocketExactMatchOnly(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	boards, err := catalog.MotherboardsBySocket(context.Background(), "AM4", 3)
	if err != nil {
		t.Fatalf("MotherboardsBySocket() unexpected error: %v", err)
	}
	if len(boards) != 1 || boards[0].Name != "Gigabyte B550M DS3H" {
		t.Errorf("unexpected AM4 boards: %+v", boards)
	}
}

func TestMemoryRanked(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	kits, err := catalog.MemoryRanked(context.Background(), 0, 3)
	if err != nil {
		t.Fatalf("MemoryRanked() unexpected error: %v", err)
	}

	// Speed DESC, then CAS ASC for the two 6000MHz kits. The kit with
	// NULL speed is excluded entirely.
	wantNames := []string{"G.Skill Trident Z5 32GB", "Corsair Vengeance 32GB", "Kingston Fury 16GB"}
	if len(kits) != len(wantNames) {
		t.Fatalf("got %d kits, want %d", len(kits), len(wantNames))
	}
	for i, want := range wantNames {
		if kits[i].Name != want {
			t.Errorf("kits[%d] = %q, want %q", i, kits[i].Name, want)
		}
	}
}

func TestMemoryRankedMinCapacityFilter(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	kits, err := catalog.MemoryRanked(context.Background(), 32, 3)
	if err != nil {
		t.Fatalf("MemoryRanked() unexpected error: %v", err)
	}

	for _, kit := range kits {
		if kitCapacityGB(kit.Modules) < 32 {
			t.Errorf("kit %q below capacity filter (%s)", kit.Name, kit.Modules)
		}
	}
	if len(kits) != 2 {
		t.Errorf("got %d kits, want the two 32GB kits", len(kits))
	}
}

func TestPowerSuppliesByWattage(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	psus, err := catalog.PowerSuppliesByWattage(context.Background(), 600, 3)
	if err != nil {
		t.Fatalf("PowerSuppliesByWattage() unexpected error: %v", err)
	}

	// Wattage ASC with price breaking the 600W tie.
	wantNames := []string{"Thermaltake Smart 600", "EVGA 600 BR", "Seasonic Focus 650"}
	if len(psus) != len(wantNames) {
		t.Fatalf("got %d psus, want %d", len(psus), len(wantNames))
	}
	for i, want := range wantNames {
		if psus[i].Name != want {
			t.Errorf("psus[%d] = %q, want %q", i, psus[i].Name, want)
		}
	}
}

func TestRankingIsDeterministic(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)
	ctx := context.Background()

	first, err := catalog.MotherboardsBySocket(ctx, "AM5", 3)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := catalog.MotherboardsBySocket(ctx, "AM5", 3)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical ranking queries must return identical ordered results")
	}
}

func TestListCPUs(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	cpus, err := catalog.ListCPUs(context.Background())
	if err != nil {
		t.Fatalf("ListCPUs() unexpected error: %v", err)
	}
	if len(cpus) != 3 {
		t.Errorf("got %d cpus, want 3", len(cpus))
	}
}

func TestCounts(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	counts, err := catalog.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts() unexpected error: %v", err)
	}
	if counts["cpu"] != 3 || counts["motherboard"] != 5 || counts["power_supply"] != 4 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestKitCapacityGB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		modules string
		want    int
	}{
		{"2 x 16GB", 32},
		{"2x8GB", 16},
		{"1 X 8 GB", 8},
		{"4 x 32GB", 128},
		{"bogus", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := kitCapacityGB(tt.modules); got != tt.want {
			t.Errorf("kitCapacityGB(%q) = %d, want %d", tt.modules, got, tt.want)
		}
	}
}
