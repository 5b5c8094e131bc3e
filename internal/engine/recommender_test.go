// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func newTestRecommender() *Recommender {
	return NewRecommender(testCatalog(), DefaultConfig())
}

func TestBuildRecommendations(t *testing.T) {
	t.Parallel()

	rec := newTestRecommender()
	got, err := rec.BuildRecommendations(context.Background(), "AMD Ryzen 7 7800X3D", "MSI GeForce RTX 4070 Ventus")
	if err != nil {
		t.Fatalf("BuildRecommendations() unexpected error: %v", err)
	}

	if got.Socket != "AM5" {
		t.Errorf("Socket = %q, want AM5", got.Socket)
	}
	if len(got.Motherboards) != 2 {
		t.Fatalf("expected 2 AM5 motherboards, got %d", len(got.Motherboards))
	}
	for _, mb := range got.Motherboards {
		if mb.Socket != "AM5" {
			t.Errorf("recommended motherboard %q has socket %q", mb.Name, mb.Socket)
		}
	}

	// 120W CPU TDP with a 12GB GPU: (120+250)*1.30 truncated.
	if got.RequiredWattage != 481 {
		t.Errorf("RequiredWattage = %d, want 481", got.RequiredWattage)
	}
	for _, psu := range got.PowerSupplies {
		if psu.Wattage < float64(got.RequiredWattage) {
			t.Errorf("recommended PSU %q below required wattage", psu.Name)
		}
	}

	if len(got.Memory) == 0 {
		t.Error("expected memory recommendations")
	}
	if !strings.Contains(got.GPUBenchmarkURL, "techpowerup.com") {
		t.Errorf("GPUBenchmarkURL = %q, want a TechPowerUp link", got.GPUBenchmarkURL)
	}
}

func TestBuildRecommendationsUnknownSocket(t *testing.T) {
	t.Parallel()

	rec := newTestRecommender()
	got, err := rec.BuildRecommendations(context.Background(), "Mystery CPU", "MSI GeForce RTX 4070 Ventus")
	if err != nil {
		t.Fatalf("BuildRecommendations() unexpected error: %v", err)
	}

	if got.Socket != "" {
		t.Errorf("Socket = %q, want empty for unknown microarchitecture", got.Socket)
	}
	if len(got.Motherboards) != 0 {
		t.Errorf("expected no motherboards for unknown socket, got %d", len(got.Motherboards))
	}
	// PSU sizing falls back to the default CPU draw: (125+250)*1.30.
	if got.RequiredWattage != 487 {
		t.Errorf("RequiredWattage = %d, want 487", got.RequiredWattage)
	}
}

func TestBuildRecommendationsUnknownComponent(t *testing.T) {
	t.Parallel()

	rec := newTestRecommender()
	_, err := rec.BuildRecommendations(context.Background(), "AMD Ryzen 7 7800X3D", "No Such GPU")
	if err == nil {
		t.Fatal("expected error for unknown GPU")
	}
	if !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("error = %v, want ErrComponentNotFound", err)
	}
}

func TestRecommendationsAreDeterministic(t *testing.T) {
	t.Parallel()

	rec := newTestRecommender()

	first, err := rec.BuildRecommendations(context.Background(), "AMD Ryzen 5 3600", "MSI GeForce RTX 4070 Ventus")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := rec.BuildRecommendations(context.Background(), "AMD Ryzen 5 3600", "MSI GeForce RTX 4070 Ventus")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical queries against an unchanged catalog must return identical results")
	}
}

func TestTopMotherboardsEmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()

	rec := newTestRecommender()
	boards, err := rec.TopMotherboards(context.Background(), "LGA9999")
	if err != nil {
		t.Fatalf("TopMotherboards() unexpected error: %v", err)
	}
	if len(boards) != 0 {
		t.Errorf("expected empty result, got %d boards", len(boards))
	}
}
