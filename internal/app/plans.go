package app

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"relief_ai/internal/domain"
)

// PlanService wraps plan generation with persistence. Generated plans are
// recorded best-effort: a storage failure is logged, never surfaced, so
// the caller still gets their plan.
type PlanService struct {
	gw    *Gateway
	repo  domain.ReliefRepository
	cache domain.Cache
	log   zerolog.Logger
}

func NewPlanService(gw *Gateway, repo domain.ReliefRepository, cache domain.Cache, log zerolog.Logger) *PlanService {
	return &PlanService{gw: gw, repo: repo, cache: cache, log: log}
}

func (s *PlanService) Generate(ctx context.Context, req domain.PlanRequest) domain.Result[domain.PlanOutput] {
	res := s.gw.GeneratePlan(ctx, req)

	focus := req.PriorityFocus
	if focus == "" {
		focus = "all"
	}
	impactJSON, _ := json.Marshal(res.Value.EstimatedImpact)
	rec := domain.PlanRecord{
		ID:         uuid.NewString(),
		Focus:      focus,
		RawReport:  req.RawReport,
		PlanText:   res.Value.AllocationPlan,
		Summary:    res.Value.HumanSummary,
		Source:     string(res.Source),
		ImpactJSON: impactJSON,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.InsertPlan(ctx, rec); err != nil {
		s.log.Warn().Err(err).Str("plan_id", rec.ID).Msg("plan persistence failed")
	} else if s.cache != nil {
		_ = s.cache.Del(ctx, "plans:recent")
		_ = s.cache.Del(ctx, "dashboard:stats")
	}
	return res
}

// Recent lists the latest persisted plans, newest first.
func (s *PlanService) Recent(ctx context.Context, limit int) ([]domain.PlanRecord, error) {
	key := "plans:recent"
	var out []domain.PlanRecord
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}
	out, err := s.repo.ListPlans(ctx, limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, 60)
	}
	return out, nil
}
