package app

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"

	"relief_ai/internal/adapters/observability"
	"relief_ai/internal/domain"
)

// Gateway fronts the external completion service. Every method makes at
// most one external call and always returns a usable payload: if the call
// fails, or the completion carries no schema-valid JSON object, the
// method's static fallback is substituted and tagged as such.
type Gateway struct {
	gen domain.Generator
	log zerolog.Logger
}

func NewGateway(gen domain.Generator, log zerolog.Logger) *Gateway {
	return &Gateway{gen: gen, log: log}
}

// resolve runs the single live attempt for a gateway method and falls
// back on any failure. Fallback substitution is total: a payload is
// either fully live or fully static, never a mix.
func resolve[T any](ctx context.Context, g *Gateway, method, prompt string, schema *gojsonschema.Schema, fallback T) domain.Result[T] {
	if g.gen == nil {
		observability.ObserveGateway(method, string(domain.SourceFallback))
		return domain.Result[T]{Source: domain.SourceFallback, Value: fallback}
	}
	text, err := g.gen.Generate(ctx, prompt)
	if err != nil {
		g.log.Warn().Err(err).Str("method", method).Msg("generation failed, serving fallback")
		observability.ObserveGateway(method, string(domain.SourceFallback))
		return domain.Result[T]{Source: domain.SourceFallback, Value: fallback}
	}
	var v T
	if err := ExtractJSON(text, schema, &v); err != nil {
		g.log.Warn().Err(err).Str("method", method).Msg("unusable completion, serving fallback")
		observability.ObserveGateway(method, string(domain.SourceFallback))
		return domain.Result[T]{Source: domain.SourceFallback, Value: fallback}
	}
	observability.ObserveGateway(method, string(domain.SourceLive))
	return domain.Result[T]{Source: domain.SourceLive, Value: v}
}

func (g *Gateway) RecommendHospitals(ctx context.Context, region string, needs []string) domain.Result[domain.HospitalAdvice] {
	return resolve(ctx, g, "recommend_hospitals", hospitalPrompt(region, needs), hospitalSchema, fallbackHospitals)
}

func (g *Gateway) MatchDoctors(ctx context.Context, specialty, region string) domain.Result[domain.DoctorMatches] {
	return resolve(ctx, g, "match_doctors", doctorPrompt(specialty, region), doctorSchema, fallbackDoctors)
}

func (g *Gateway) TriagePatient(ctx context.Context, report domain.TriageReport) domain.Result[domain.TriageAssessment] {
	return resolve(ctx, g, "triage_patient", triagePrompt(report), triageSchema, fallbackTriage)
}

func (g *Gateway) AllocateShelters(ctx context.Context, req domain.ShelterRequest) domain.Result[domain.ShelterPlan] {
	return resolve(ctx, g, "allocate_shelters", shelterPrompt(req), shelterSchema, fallbackShelters)
}

func (g *Gateway) DashboardInsights(ctx context.Context, stats domain.DashboardStats) domain.Result[domain.DashboardBrief] {
	return resolve(ctx, g, "dashboard_insights", dashboardPrompt(stats), dashboardSchema, fallbackDashboard)
}

// planDraft is the live-path plan shape; the impact block is always
// computed locally, never taken from the completion.
type planDraft struct {
	AllocationPlan string `json:"allocation_plan"`
	HumanSummary   string `json:"human_summary"`
}

// GeneratePlan builds a distribution plan for a surplus/demand report.
// Impact metrics come from local extraction on both paths, so live and
// fallback plans for the same report carry identical numbers.
func (g *Gateway) GeneratePlan(ctx context.Context, req domain.PlanRequest) domain.Result[domain.PlanOutput] {
	focus := req.PriorityFocus
	if focus == "" {
		focus = "all"
	}
	items := ExtractFoodItems(req.RawReport)
	impact := EstimateImpact(items)

	draft := resolve(ctx, g, "generate_plan", planPrompt(req.RawReport, focus), planSchema, planDraft{})
	if draft.Source == domain.SourceLive {
		return domain.Result[domain.PlanOutput]{
			Source: domain.SourceLive,
			Value: domain.PlanOutput{
				AllocationPlan:  draft.Value.AllocationPlan,
				HumanSummary:    draft.Value.HumanSummary,
				EstimatedImpact: impact,
			},
		}
	}
	return domain.Result[domain.PlanOutput]{
		Source: domain.SourceFallback,
		Value:  BuildFallbackPlan(focus, items, impact),
	}
}
