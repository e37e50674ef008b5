package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("relief: not found")

// Generator is the external text-completion service. One call, one
// completion; the gateway layer decides what to do with failures.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ReliefRepository interface {
	// Write paths (seeder + plan persistence)
	UpsertInventory(ctx context.Context, items []InventoryItem) error
	UpsertDemands(ctx context.Context, ds []DemandSignal) error
	UpsertVehicles(ctx context.Context, vs []Vehicle) error
	UpsertStorage(ctx context.Context, fs []StorageFacility) error
	UpsertFarmers(ctx context.Context, fs []Farmer) error
	InsertPlan(ctx context.Context, p PlanRecord) error

	// Read paths
	ListInventory(ctx context.Context) ([]InventoryItem, error)
	ListDemands(ctx context.Context) ([]DemandSignal, error)
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	ListStorage(ctx context.Context) ([]StorageFacility, error)
	ListFarmers(ctx context.Context) ([]Farmer, error)
	ListPlans(ctx context.Context, limit int) ([]PlanRecord, error)
	Stats(ctx context.Context) (DashboardStats, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
