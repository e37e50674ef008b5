package domain

import (
	"encoding/json"
	"time"
)

// Reference data for the relief network. Seeded once, read-mostly.

type InventoryItem struct {
	ID            int64   `json:"id"`
	Location      string  `json:"location"`
	Item          string  `json:"item"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"` // kg|L
	Perishability string  `json:"perishability"`
	PricePerUnit  float64 `json:"price_per_unit"`
	FarmerID      string  `json:"farmer_id"`
}

type DemandSignal struct {
	ID               int64    `json:"id"`
	Location         string   `json:"location"`
	Needs            []string `json:"needs"`
	Urgency          string   `json:"urgency"` // high|medium|low
	CapacityKg       int      `json:"capacity_kg"`
	PopulationServed int      `json:"population_served"`
	LastDelivery     string   `json:"last_delivery"`
}

type Vehicle struct {
	ID          int64   `json:"id"`
	VehicleType string  `json:"vehicle_type"`
	CapacityKg  int     `json:"capacity_kg"`
	Location    string  `json:"location"`
	Status      string  `json:"status"` // available|maintenance
	CostPerKm   float64 `json:"cost_per_km"`
	CO2PerKm    float64 `json:"co2_per_km"`
}

type StorageFacility struct {
	ID              int64   `json:"id"`
	Location        string  `json:"location"`
	CapacityKg      int     `json:"capacity_kg"`
	AvailableKg     int     `json:"available_kg"`
	Temperature     string  `json:"temperature"`
	CostPerDayPerKg float64 `json:"cost_per_day_per_kg"`
}

type Farmer struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	YearsFarming    int    `json:"years_farming"`
	EconomicStatus  string `json:"economic_status"`
	LastMonthIncome int    `json:"last_month_income"`
}

// PlanRecord is a persisted allocation plan, live or fallback.
type PlanRecord struct {
	ID         string          `json:"id"`
	Focus      string          `json:"focus"`
	RawReport  string          `json:"raw_report"`
	PlanText   string          `json:"plan_text"`
	Summary    string          `json:"summary"`
	Source     string          `json:"source"` // live|fallback
	ImpactJSON json.RawMessage `json:"impact,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// DashboardStats is computed from the reference tables.
type DashboardStats struct {
	TotalInventoryKg    float64   `json:"total_inventory_kg"`
	TotalDemandCapacity int       `json:"total_demand_capacity"`
	UtilizationRate     float64   `json:"utilization_rate"`
	AvailableVehicles   int       `json:"available_vehicles"`
	TotalVehicles       int       `json:"total_vehicles"`
	AvailableStorageKg  int       `json:"available_storage_kg"`
	TotalStorageKg      int       `json:"total_storage_capacity"`
	LastUpdated         time.Time `json:"last_updated"`
}

// Weekly chart series for the dashboard. Static in this release.

type InventoryFlow struct {
	Days    []string `json:"days"`
	FoodIn  []int    `json:"food_in"`
	FoodOut []int    `json:"food_out"`
	Waste   []int    `json:"waste"`
}

type NetworkStatus struct {
	Locations         []string `json:"locations"`
	CurrentInventory  []int    `json:"current_inventory"`
	DailyDistribution []int    `json:"daily_distribution"`
	SurplusAvailable  []int    `json:"surplus_available"`
}

type WasteReduction struct {
	Categories  []string `json:"categories"`
	WasteBefore []int    `json:"waste_before"`
	WasteAfter  []int    `json:"waste_after"`
}
