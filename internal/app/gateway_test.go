package app

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"

	"relief_ai/internal/domain"
)

type fakeGen struct {
	text  string
	err   error
	calls int
}

func (f *fakeGen) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.text, f.err
}

func newTestGateway(gen domain.Generator) *Gateway {
	return NewGateway(gen, zerolog.Nop())
}

func TestRecommendHospitals_LiveCompletion(t *testing.T) {
	body, _ := json.Marshal(fallbackHospitals)
	gen := &fakeGen{text: "Here you go:\n" + string(body) + "\nHope that helps."}
	g := newTestGateway(gen)

	res := g.RecommendHospitals(context.Background(), "Chennai", []string{"emergency"})
	if res.Source != domain.SourceLive {
		t.Fatalf("want live, got %s", res.Source)
	}
	if len(res.Value.Hospitals) != 2 || res.Value.Hospitals[0].Name != "Chennai General Hospital" {
		t.Fatalf("unexpected payload: %+v", res.Value)
	}
	if gen.calls != 1 {
		t.Fatalf("want exactly 1 generation, got %d", gen.calls)
	}
}

func TestRecommendHospitals_GenerationError(t *testing.T) {
	gen := &fakeGen{err: errors.New("quota exhausted")}
	g := newTestGateway(gen)

	res := g.RecommendHospitals(context.Background(), "Chennai", nil)
	if res.Source != domain.SourceFallback {
		t.Fatalf("want fallback, got %s", res.Source)
	}
	if !reflect.DeepEqual(res.Value, fallbackHospitals) {
		t.Fatalf("fallback not served verbatim: %+v", res.Value)
	}
	if gen.calls != 1 {
		t.Fatalf("want exactly 1 generation, got %d", gen.calls)
	}
}

func TestTriagePatient_UnusableCompletionFallsBack(t *testing.T) {
	for name, text := range map[string]string{
		"no_json":    "I cannot assess this patient.",
		"malformed":  `{"severity": "urgent",`,
		"bad_schema": `{"severity": "catastrophic", "recommended_ward": "ICU", "immediate_actions": [], "summary": "x"}`,
	} {
		t.Run(name, func(t *testing.T) {
			g := newTestGateway(&fakeGen{text: text})
			res := g.TriagePatient(context.Background(), domain.TriageReport{Age: 40, Symptoms: []string{"fever"}})
			if res.Source != domain.SourceFallback {
				t.Fatalf("want fallback, got %s", res.Source)
			}
			if !reflect.DeepEqual(res.Value, fallbackTriage) {
				t.Fatalf("fallback not served verbatim: %+v", res.Value)
			}
		})
	}
}

func TestGateway_NilGeneratorServesFallbacks(t *testing.T) {
	g := newTestGateway(nil)
	res := g.MatchDoctors(context.Background(), "pediatrics", "Chennai")
	if res.Source != domain.SourceFallback || !reflect.DeepEqual(res.Value, fallbackDoctors) {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGeneratePlan_LiveDraftKeepsLocalImpact(t *testing.T) {
	gen := &fakeGen{text: `{"allocation_plan": "Route tomatoes to Northside Shelter.", "human_summary": "Tomatoes to shelter."}`}
	g := newTestGateway(gen)

	res := g.GeneratePlan(context.Background(), domain.PlanRequest{
		RawReport:     "90kg tomatoes near expiry",
		PriorityFocus: "hunger_relief",
	})
	if res.Source != domain.SourceLive {
		t.Fatalf("want live, got %s", res.Source)
	}
	if res.Value.AllocationPlan != "Route tomatoes to Northside Shelter." {
		t.Fatalf("unexpected plan: %+v", res.Value)
	}
	// Impact is computed locally even on the live path.
	if res.Value.EstimatedImpact.FoodSavedKg != 90 || res.Value.EstimatedImpact.PeopleServed != 30 {
		t.Fatalf("unexpected impact: %+v", res.Value.EstimatedImpact)
	}
}

func TestGeneratePlan_FallbackSharesImpactWithLivePath(t *testing.T) {
	req := domain.PlanRequest{RawReport: "90kg tomatoes near expiry", PriorityFocus: "farmer_support"}
	g := newTestGateway(&fakeGen{err: errors.New("down")})

	res := g.GeneratePlan(context.Background(), req)
	if res.Source != domain.SourceFallback {
		t.Fatalf("want fallback, got %s", res.Source)
	}
	if res.Value.EstimatedImpact.FoodSavedKg != 90 {
		t.Fatalf("unexpected impact: %+v", res.Value.EstimatedImpact)
	}
	if !strings.Contains(res.Value.AllocationPlan, "farmer") && !strings.Contains(res.Value.AllocationPlan, "Farmer") {
		t.Fatalf("focus not reflected in plan:\n%s", res.Value.AllocationPlan)
	}
}

func TestGeneratePlan_EmptyFocusNormalizedToAll(t *testing.T) {
	g := newTestGateway(&fakeGen{err: errors.New("down")})
	res := g.GeneratePlan(context.Background(), domain.PlanRequest{RawReport: "nothing itemized"})
	if !strings.Contains(res.Value.AllocationPlan, "Priority Focus: all") {
		t.Fatalf("focus not normalized:\n%s", res.Value.AllocationPlan)
	}
	if res.Value.EstimatedImpact.PeopleServed != 50 || res.Value.EstimatedImpact.FoodSavedKg != 200 {
		t.Fatalf("unexpected default impact: %+v", res.Value.EstimatedImpact)
	}
}

// Every fallback must satisfy the same schema the live path enforces, so
// both paths present one key set to callers.
func TestFallbacks_MatchSchemas(t *testing.T) {
	cases := []struct {
		name     string
		schema   *gojsonschema.Schema
		fallback any
	}{
		{"hospitals", hospitalSchema, fallbackHospitals},
		{"doctors", doctorSchema, fallbackDoctors},
		{"triage", triageSchema, fallbackTriage},
		{"shelters", shelterSchema, fallbackShelters},
		{"dashboard", dashboardSchema, fallbackDashboard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.fallback)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			res, err := tc.schema.Validate(gojsonschema.NewBytesLoader(b))
			if err != nil {
				t.Fatalf("validate: %v", err)
			}
			if !res.Valid() {
				t.Fatalf("fallback violates schema: %v", res.Errors())
			}
		})
	}
}
