package app

import (
	"context"
	"time"

	"relief_ai/internal/domain"
	"relief_ai/internal/shared"
)

// QueryService serves the read side: reference tables and dashboard
// aggregates, cache-aside over the repository. Chart series are static
// in this release and bypass both cache and repository.
type QueryService struct {
	repo     domain.ReliefRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.ReliefRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func cached[T any](ctx context.Context, s *QueryService, key string, load func(context.Context) (T, error)) (T, error) {
	var out T
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}
	out, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *QueryService) Inventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return cached(ctx, s, "inventory", s.repo.ListInventory)
}

func (s *QueryService) Demands(ctx context.Context) ([]domain.DemandSignal, error) {
	return cached(ctx, s, "demands", s.repo.ListDemands)
}

func (s *QueryService) Logistics(ctx context.Context) ([]domain.Vehicle, error) {
	return cached(ctx, s, "logistics", s.repo.ListVehicles)
}

func (s *QueryService) Storage(ctx context.Context) ([]domain.StorageFacility, error) {
	return cached(ctx, s, "storage", s.repo.ListStorage)
}

func (s *QueryService) Farmers(ctx context.Context) ([]domain.Farmer, error) {
	return cached(ctx, s, "farmers", s.repo.ListFarmers)
}

func (s *QueryService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	return cached(ctx, s, "dashboard:stats", s.repo.Stats)
}

func (s *QueryService) InventoryFlow() domain.InventoryFlow   { return shared.WeeklyInventoryFlow }
func (s *QueryService) NetworkStatus() domain.NetworkStatus   { return shared.FoodBankNetwork }
func (s *QueryService) WasteReduction() domain.WasteReduction { return shared.WasteByCategory }
