package shared

import "relief_ai/internal/domain"

// Reference fixtures for the relief network. The seeder upserts these;
// the dashboard chart series are served as-is.

var SeedInventory = []domain.InventoryItem{
	{ID: 1, Location: "Farm Co. (Chennai)", Item: "Tomatoes", Quantity: 200, Unit: "kg", Perishability: "high", PricePerUnit: 15, FarmerID: "F1001"},
	{ID: 2, Location: "Dairy Central (Chennai)", Item: "Milk", Quantity: 150, Unit: "L", Perishability: "high", PricePerUnit: 40, FarmerID: "D2001"},
	{ID: 3, Location: "Warehouse A (Chennai)", Item: "Potatoes", Quantity: 500, Unit: "kg", Perishability: "low", PricePerUnit: 20, FarmerID: "F1002"},
	{ID: 4, Location: "Urban Market (Chennai)", Item: "Apples", Quantity: 50, Unit: "kg", Perishability: "medium", PricePerUnit: 80, FarmerID: "F1003"},
	{ID: 5, Location: "Fishery Port (Chennai)", Item: "Fresh Fish", Quantity: 100, Unit: "kg", Perishability: "very_high", PricePerUnit: 120, FarmerID: "F3001"},
}

var SeedDemands = []domain.DemandSignal{
	{ID: 1, Location: "Downtown Kitchen (Chennai)", Needs: []string{"Fresh produce", "dairy"}, Urgency: "high", CapacityKg: 300, PopulationServed: 200, LastDelivery: "2023-09-23"},
	{ID: 2, Location: "Northside Shelter (Chennai)", Needs: []string{"Any food"}, Urgency: "medium", CapacityKg: 500, PopulationServed: 150, LastDelivery: "2023-09-20"},
	{ID: 3, Location: "Community Center B (Chennai)", Needs: []string{"Non-perishable goods"}, Urgency: "low", CapacityKg: 200, PopulationServed: 100, LastDelivery: "2023-09-25"},
	{ID: 4, Location: "Rural School Program (Kanchipuram)", Needs: []string{"Nutritious food", "fruits"}, Urgency: "high", CapacityKg: 150, PopulationServed: 120, LastDelivery: "2023-09-18"},
}

var SeedVehicles = []domain.Vehicle{
	{ID: 1, VehicleType: "Refrigerated Truck", CapacityKg: 1000, Location: "Chennai Central", Status: "available", CostPerKm: 15, CO2PerKm: 0.8},
	{ID: 2, VehicleType: "Small Van", CapacityKg: 300, Location: "North Chennai", Status: "available", CostPerKm: 8, CO2PerKm: 0.4},
	{ID: 3, VehicleType: "Refrigerated Truck", CapacityKg: 1200, Location: "South Chennai", Status: "maintenance", CostPerKm: 18, CO2PerKm: 0.9},
	{ID: 4, VehicleType: "Pickup Truck", CapacityKg: 500, Location: "West Chennai", Status: "available", CostPerKm: 10, CO2PerKm: 0.5},
}

var SeedStorage = []domain.StorageFacility{
	{ID: 1, Location: "Cold Storage A (Chennai)", CapacityKg: 2000, AvailableKg: 800, Temperature: "2C", CostPerDayPerKg: 0.5},
	{ID: 2, Location: "Cold Storage B (Chennai)", CapacityKg: 1500, AvailableKg: 1200, Temperature: "4C", CostPerDayPerKg: 0.4},
	{ID: 3, Location: "Warehouse C (Chennai)", CapacityKg: 3000, AvailableKg: 2000, Temperature: "ambient", CostPerDayPerKg: 0.2},
}

var SeedFarmers = []domain.Farmer{
	{ID: "F1001", Name: "Raj Kumar", Location: "Chennai", YearsFarming: 12, EconomicStatus: "struggling", LastMonthIncome: 15000},
	{ID: "F1002", Name: "Vijay Singh", Location: "Kanchipuram", YearsFarming: 8, EconomicStatus: "moderate", LastMonthIncome: 25000},
	{ID: "F1003", Name: "Priya Patel", Location: "Vellore", YearsFarming: 5, EconomicStatus: "struggling", LastMonthIncome: 12000},
	{ID: "D2001", Name: "Milk Cooperative", Location: "Chennai", YearsFarming: 20, EconomicStatus: "stable", LastMonthIncome: 80000},
	{ID: "F3001", Name: "Fisherman Cooperative", Location: "Chennai Coast", YearsFarming: 15, EconomicStatus: "moderate", LastMonthIncome: 45000},
}

var WeeklyInventoryFlow = domain.InventoryFlow{
	Days:    []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	FoodIn:  []int{2500, 3200, 2800, 3500, 4000, 1800, 2200},
	FoodOut: []int{2200, 2800, 2600, 3000, 3500, 1600, 2000},
	Waste:   []int{150, 200, 120, 180, 220, 100, 130},
}

var FoodBankNetwork = domain.NetworkStatus{
	Locations:         []string{"Central Food Bank", "North Branch", "South Hub", "East Center", "West Station"},
	CurrentInventory:  []int{2500, 1800, 2200, 1600, 2000},
	DailyDistribution: []int{800, 600, 700, 500, 650},
	SurplusAvailable:  []int{300, 200, 250, 150, 180},
}

var WasteByCategory = domain.WasteReduction{
	Categories:  []string{"Vegetables", "Fruits", "Dairy", "Meat", "Bakery", "Prepared Meals"},
	WasteBefore: []int{150, 120, 80, 60, 90, 110},
	WasteAfter:  []int{45, 36, 24, 18, 27, 33},
}
