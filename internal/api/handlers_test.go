// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/buildsensei/buildsensei/internal/config"
	"github.com/buildsensei/buildsensei/internal/database"
	"github.com/buildsensei/buildsensei/internal/engine"
	"github.com/buildsensei/buildsensei/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

// fakeCatalog is an in-memory engine.Catalog plus listing surface.
type fakeCatalog struct {
	cpus         []models.CPU
	gpus         []models.GPU
	motherboards []models.Motherboard
	memory       []models.Memory
	powerSupps   []models.PowerSupply
}

func (f *fakeCatalog) CPUByName(_ context.Context, name string) (*models.CPU, error) {
	for i := range f.cpus {
		if f.cpus[i].Name == name {
			return &f.cpus[i], nil
		}
	}
	return nil, fmt.Errorf("cpu %q: %w", name, engine.ErrComponentNotFound)
}

func (f *fakeCatalog) GPUByName(_ context.Context, name string) (*models.GPU, error) {
	for i := range f.gpus {
		if f.gpus[i].Name == name {
			return &f.gpus[i], nil
		}
	}
	return nil, fmt.Errorf("video card %q: %w", name, engine.ErrComponentNotFound)
}

func (f *fakeCatalog) MotherboardByName(_ context.Context, name string) (*models.Motherboard, error) {
	for i := range f.motherboards {
		if f.motherboards[i].Name == name {
			return &f.motherboards[i], nil
		}
	}
	return nil, fmt.Errorf("motherboard %q: %w", name, engine.ErrComponentNotFound)
}

func (f *fakeCatalog) MemoryByName(_ context.Context, name string) (*models.Memory, error) {
	for i := range f.memory {
		if f.memory[i].Name == name {
			return &f.memory[i], nil
		}
	}
	return nil, fmt.Errorf("memory %q: %w", name, engine.ErrComponentNotFound)
}

func (f *fakeCatalog) PowerSupplyByName(_ context.Context, name string) (*models.PowerSupply, error) {
	for i := range f.powerSupps {
		if f.powerSupps[i].Name == name {
			return &f.powerSupps[i], nil
		}
	}
	return nil, fmt.Errorf("power supply %q: %w", name, engine.ErrComponentNotFound)
}

func (f *fakeCatalog) MotherboardsBySocket(_ context.Context, socket string, limit int) ([]models.Motherboard, error) {
	var out []models.Motherboard
	for _, mb := range f.motherboards {
		if mb.Socket == socket && len(out) < limit {
			out = append(out, mb)
		}
	}
	return out, nil
}

func (f *fakeCatalog) MemoryRanked(_ context.Context, _, limit int) ([]models.Memory, error) {
	if len(f.memory) > limit {
		return f.memory[:limit], nil
	}
	return f.memory, nil
}

func (f *fakeCatalog) PowerSuppliesByWattage(_ context.Context, minWattage float64, limit int) ([]models.PowerSupply, error) {
	var out []models.PowerSupply
	for _, psu := range f.powerSupps {
		if psu.Wattage >= minWattage && len(out) < limit {
			out = append(out, psu)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListCPUs(_ context.Context) ([]models.CPU, error) { return f.cpus, nil }
func (f *fakeCatalog) ListGPUs(_ context.Context) ([]models.GPU, error) { return f.gpus, nil }

func (f *fakeCatalog) Counts(_ context.Context) (map[string]int, error) {
	return map[string]int{
		"cpu":          len(f.cpus),
		"video_card":   len(f.gpus),
		"motherboard":  len(f.motherboards),
		"memory":       len(f.memory),
		"power_supply": len(f.powerSupps),
	}, nil
}

type fakeLoader struct {
	err   error
	calls int
}

func (f *fakeLoader) Reload(_ context.Context) error {
	f.calls++
	return f.err
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error { return f.err }

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		cpus: []models.CPU{
			{Name: "AMD Ryzen 7 7800X3D", Price: floatPtr(399.99), Microarchitecture: "Zen 4", CoreCount: 8, BoostClock: 5.0, TDP: floatPtr(120)},
			{Name: "AMD Ryzen 5 5600", Price: floatPtr(129.99), Microarchitecture: "Zen 3", CoreCount: 6, BoostClock: 4.4, TDP: floatPtr(65)},
		},
		gpus: []models.GPU{
			{Name: "MSI GeForce RTX 4070 Ventus", Price: floatPtr(549.99), Chipset: "GeForce RTX 4070", MemoryGB: 12},
		},
		motherboards: []models.Motherboard{
			{Name: "ASRock B650M-H", Price: floatPtr(109.99), Socket: "AM5", FormFactor: "Micro ATX", MaxMemoryGB: 96, MemorySlots: 4},
			{Name: "MSI PRO B650-P", Price: floatPtr(179.99), Socket: "AM5", FormFactor: "ATX", MaxMemoryGB: 128, MemorySlots: 4},
		},
		memory: []models.Memory{
			{Name: "Corsair Vengeance 32GB", Price: floatPtr(104.99), Modules: "2 x 16GB"},
			{Name: "Broken Kit", Price: floatPtr(9.99), Modules: "bogus"},
		},
		powerSupps: []models.PowerSupply{
			{Name: "Corsair RM850x", Price: floatPtr(139.99), Wattage: 850},
		},
	}
}

// newTestServer builds the full router around fakes, with rate
// limiting disabled so tests never trip the limiter.
func newTestServer(t *testing.T, catalog *fakeCatalog, loader *fakeLoader, pinger *fakePinger) *testServer {
	t.Helper()

	cfg := &config.Config{
		Engine: config.EngineConfig{
			TopN:                3,
			CPUDefaultPowerDraw: 125,
			CacheTTL:            time.Minute,
		},
	}
	engCfg := engine.Config{
		TopN:                cfg.Engine.TopN,
		CPUDefaultPowerDraw: cfg.Engine.CPUDefaultPowerDraw,
	}

	handler := NewHandler(
		catalog,
		engine.NewEvaluator(catalog, engCfg),
		engine.NewRecommender(catalog, engCfg),
		loader,
		pinger,
		cfg,
	)
	t.Cleanup(handler.Close)

	router := SetupChi(handler, NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true}))
	return &testServer{router: router}
}

type testServer struct {
	router http.Handler
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()

	var envelope models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return envelope
}

func TestHealthLive(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	rec := srv.do(t, http.MethodGet, "/api/v1/health/live", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Status != "success" {
		t.Errorf("status field = %q, want success", envelope.Status)
	}
}

func TestHealthReadyWhenDatabaseDown(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{err: errors.New("connection refused")})

	rec := srv.do(t, http.MethodGet, "/api/v1/health/ready", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHealthReportsCatalogCounts(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	rec := srv.do(t, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"database_connected":true`) {
		t.Errorf("body missing database_connected: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"cpu":2`) {
		t.Errorf("body missing catalog counts: %s", rec.Body.String())
	}
}

func TestListCPUsCachesSecondCall(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	first := srv.do(t, http.MethodGet, "/api/v1/components/cpus", "")
	if first.Code != http.StatusOK {
		t.Fatalf("first call status = %d, want 200", first.Code)
	}
	if strings.Contains(first.Body.String(), `"cached":true`) {
		t.Error("first call must not be served from cache")
	}

	second := srv.do(t, http.MethodGet, "/api/v1/components/cpus", "")
	if second.Code != http.StatusOK {
		t.Fatalf("second call status = %d, want 200", second.Code)
	}
	if !strings.Contains(second.Body.String(), `"cached":true`) {
		t.Errorf("second call must be served from cache: %s", second.Body.String())
	}
	if !strings.Contains(second.Body.String(), "AMD Ryzen 7 7800X3D") {
		t.Error("cached response lost the listing data")
	}
}

func TestEvaluateCompatibleBuild(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	body := `{
		"cpu": "AMD Ryzen 7 7800X3D",
		"gpu": "MSI GeForce RTX 4070 Ventus",
		"motherboard": "MSI PRO B650-P",
		"memory": "Corsair Vengeance 32GB",
		"power_supply": "Corsair RM850x"
	}`
	rec := srv.do(t, http.MethodPost, "/api/v1/evaluate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"compatible":true`) {
		t.Errorf("expected a compatible verdict: %s", rec.Body.String())
	}
}

func TestEvaluateMissingFieldFailsValidation(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	body := `{"cpu": "AMD Ryzen 7 7800X3D", "gpu": "MSI GeForce RTX 4070 Ventus"}`
	rec := srv.do(t, http.MethodPost, "/api/v1/evaluate", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "VALIDATION_ERROR") {
		t.Errorf("expected a validation error: %s", rec.Body.String())
	}
}

func TestEvaluateUnknownComponentIs404(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	body := `{
		"cpu": "Nonexistent CPU",
		"gpu": "MSI GeForce RTX 4070 Ventus",
		"motherboard": "MSI PRO B650-P",
		"memory": "Corsair Vengeance 32GB",
		"power_supply": "Corsair RM850x"
	}`
	rec := srv.do(t, http.MethodPost, "/api/v1/evaluate", body)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "COMPONENT_NOT_FOUND") {
		t.Errorf("expected COMPONENT_NOT_FOUND: %s", rec.Body.String())
	}
}

func TestEvaluateUnparsableMemoryIs422(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	body := `{
		"cpu": "AMD Ryzen 7 7800X3D",
		"gpu": "MSI GeForce RTX 4070 Ventus",
		"motherboard": "MSI PRO B650-P",
		"memory": "Broken Kit",
		"power_supply": "Corsair RM850x"
	}`
	rec := srv.do(t, http.MethodPost, "/api/v1/evaluate", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "UNPARSABLE_COMPONENT_DATA") {
		t.Errorf("expected UNPARSABLE_COMPONENT_DATA: %s", rec.Body.String())
	}
}

func TestEvaluateRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	rec := srv.do(t, http.MethodPost, "/api/v1/evaluate", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRecommendationsFullBuild(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	rec := srv.do(t, http.MethodGet, "/api/v1/recommendations?cpu=AMD+Ryzen+7+7800X3D&gpu=MSI+GeForce+RTX+4070+Ventus", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"socket":"AM5"`) {
		t.Errorf("expected deduced socket AM5: %s", body)
	}
	if !strings.Contains(body, "motherboard_top3") || !strings.Contains(body, "psu_top3") {
		t.Errorf("expected top-3 lists: %s", body)
	}
	if !strings.Contains(body, "techpowerup.com") {
		t.Errorf("expected a benchmark URL: %s", body)
	}
}

func TestRecommendationsMissingParams(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	rec := srv.do(t, http.MethodGet, "/api/v1/recommendations?cpu=AMD+Ryzen+7+7800X3D", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRecommendMotherboardsRequiresSocket(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	rec := srv.do(t, http.MethodGet, "/api/v1/recommendations/motherboards", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRecommendPowerSupplies(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	// 12GB VRAM maps to a 250W class card; (125 + 250) * 1.30 = 487.
	rec := srv.do(t, http.MethodGet, "/api/v1/recommendations/power-supplies?gpu_memory=12", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"required_wattage":487`) {
		t.Errorf("expected required_wattage 487: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Corsair RM850x") {
		t.Errorf("expected the 850W unit: %s", rec.Body.String())
	}
}

func TestRecommendPowerSuppliesRequiresGPUMemory(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	rec := srv.do(t, http.MethodGet, "/api/v1/recommendations/power-supplies", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReloadCatalog(t *testing.T) {
	loader := &fakeLoader{}
	srv := newTestServer(t, testCatalog(), loader, &fakePinger{})

	rec := srv.do(t, http.MethodPost, "/api/v1/catalog/reload", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if loader.calls != 1 {
		t.Errorf("loader called %d times, want 1", loader.calls)
	}
}

func TestReloadCatalogThrottled(t *testing.T) {
	loader := &fakeLoader{err: database.ErrReloadThrottled}
	srv := newTestServer(t, testCatalog(), loader, &fakePinger{})

	rec := srv.do(t, http.MethodPost, "/api/v1/catalog/reload", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "RELOAD_THROTTLED") {
		t.Errorf("expected RELOAD_THROTTLED: %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, testCatalog(), &fakeLoader{}, &fakePinger{})

	rec := srv.do(t, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
