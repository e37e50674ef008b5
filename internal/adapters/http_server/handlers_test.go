package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	httpserver "relief_ai/internal/adapters/http_server"
	"relief_ai/internal/app"
	"relief_ai/internal/domain"
	"relief_ai/internal/shared"
)

type stubRepo struct {
	inventory []domain.InventoryItem
	plans     []domain.PlanRecord
	stats     domain.DashboardStats
}

func (f *stubRepo) UpsertInventory(ctx context.Context, items []domain.InventoryItem) error {
	return nil
}
func (f *stubRepo) UpsertDemands(ctx context.Context, ds []domain.DemandSignal) error    { return nil }
func (f *stubRepo) UpsertVehicles(ctx context.Context, vs []domain.Vehicle) error        { return nil }
func (f *stubRepo) UpsertStorage(ctx context.Context, fs []domain.StorageFacility) error { return nil }
func (f *stubRepo) UpsertFarmers(ctx context.Context, fs []domain.Farmer) error          { return nil }
func (f *stubRepo) InsertPlan(ctx context.Context, p domain.PlanRecord) error {
	f.plans = append(f.plans, p)
	return nil
}
func (f *stubRepo) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return f.inventory, nil
}
func (f *stubRepo) ListDemands(ctx context.Context) ([]domain.DemandSignal, error)    { return nil, nil }
func (f *stubRepo) ListVehicles(ctx context.Context) ([]domain.Vehicle, error)        { return nil, nil }
func (f *stubRepo) ListStorage(ctx context.Context) ([]domain.StorageFacility, error) { return nil, nil }
func (f *stubRepo) ListFarmers(ctx context.Context) ([]domain.Farmer, error)          { return nil, nil }
func (f *stubRepo) ListPlans(ctx context.Context, limit int) ([]domain.PlanRecord, error) {
	if limit < len(f.plans) {
		return f.plans[:limit], nil
	}
	return f.plans, nil
}
func (f *stubRepo) Stats(ctx context.Context) (domain.DashboardStats, error) { return f.stats, nil }

func newTestServer(repo *stubRepo) (*httpserver.Server, *stubRepo) {
	if repo == nil {
		repo = &stubRepo{}
	}
	gw := app.NewGateway(nil, zerolog.Nop()) // nil generator: every gateway call falls back
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Q:         app.NewQueryService(repo, nil, time.Minute),
		G:         gw,
		P:         app.NewPlanService(gw, repo, nil, zerolog.Nop()),
		PlanLimit: 20,
	})
	return srv, repo
}

func TestGeneratePlan_FallbackPathStillSucceeds(t *testing.T) {
	srv, repo := newTestServer(nil)

	body := `{"raw_report": "80kg potatoes at Warehouse A", "priority_focus": "hunger_relief"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/waste/plan", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var res domain.Result[domain.PlanOutput]
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Source != domain.SourceFallback {
		t.Fatalf("want fallback, got %s", res.Source)
	}
	if res.Value.EstimatedImpact.FoodSavedKg != 80 {
		t.Fatalf("unexpected impact: %+v", res.Value.EstimatedImpact)
	}
	if len(repo.plans) != 1 || repo.plans[0].Focus != "hunger_relief" {
		t.Fatalf("plan not persisted: %+v", repo.plans)
	}
}

func TestGeneratePlan_RejectsBadBody(t *testing.T) {
	srv, _ := newTestServer(nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/waste/plan", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestDemoPlan_IdenticalAcrossCalls(t *testing.T) {
	srv, _ := newTestServer(nil)

	get := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/waste/plan/demo", nil))
		return rec
	}
	a, b := get(), get()
	if a.Code != http.StatusOK || b.Code != http.StatusOK {
		t.Fatalf("status %d/%d", a.Code, b.Code)
	}
	if !bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
		t.Fatalf("demo plan not stable:\n%s\n%s", a.Body.String(), b.Body.String())
	}

	// Stable body means a stable ETag, so revalidation short-circuits.
	req := httptest.NewRequest(http.MethodGet, "/v1/waste/plan/demo", nil)
	req.Header.Set("If-None-Match", a.Header().Get("ETag"))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Fatalf("want 304, got %d", rec.Code)
	}
}

func TestTriage_AlwaysReturnsAssessment(t *testing.T) {
	srv, _ := newTestServer(nil)
	body := `{"age": 34, "symptoms": ["fever", "cough"], "history": "asthma"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/patients/triage", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var res domain.Result[domain.TriageAssessment]
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Source != domain.SourceFallback || res.Value.Severity == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestInventory_ServedWithETag(t *testing.T) {
	srv, _ := newTestServer(&stubRepo{inventory: shared.SeedInventory})

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/inventory", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Header().Get("ETag") == "" {
		t.Fatal("missing ETag")
	}
	var items []domain.InventoryItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("unexpected inventory: %+v", items)
	}
}

func TestListPlans_EmptyIsArray(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/waste/plans", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("want [], got %s", got)
	}
}

func TestListPlans_SurfacesStoredImpact(t *testing.T) {
	srv, _ := newTestServer(nil)

	body := `{"raw_report": "60kg rice at Warehouse C"}`
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/waste/plan", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("plan status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/waste/plans", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status %d", rec.Code)
	}
	var plans []domain.PlanRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &plans); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("unexpected plans: %+v", plans)
	}
	var impact domain.Impact
	if err := json.Unmarshal(plans[0].ImpactJSON, &impact); err != nil {
		t.Fatalf("impact not exposed as JSON: %v", err)
	}
	if impact.FoodSavedKg != 60 || impact.PeopleServed != 20 {
		t.Fatalf("unexpected impact: %+v", impact)
	}
}

func TestListPlans_InvalidLimit(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/waste/plans?limit=0", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestDashboardInsights_FallbackBrief(t *testing.T) {
	srv, _ := newTestServer(&stubRepo{stats: domain.DashboardStats{TotalInventoryKg: 1000}})
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/insights", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var res domain.Result[domain.DashboardBrief]
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Source != domain.SourceFallback || res.Value.RiskLevel == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected health response: %d %q", rec.Code, rec.Body.String())
	}
}
