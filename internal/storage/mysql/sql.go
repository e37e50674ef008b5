package mysql

const upsertInventorySQL = `
INSERT INTO inventory_items
  (id, location, item, quantity, unit, perishability, price_per_unit, farmer_id)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  location       = VALUES(location),
  item           = VALUES(item),
  quantity       = VALUES(quantity),
  unit           = VALUES(unit),
  perishability  = VALUES(perishability),
  price_per_unit = VALUES(price_per_unit),
  farmer_id      = VALUES(farmer_id),
  updated_at     = CURRENT_TIMESTAMP
`

const upsertDemandSQL = `
INSERT INTO demand_signals
  (id, location, needs, urgency, capacity_kg, population_served, last_delivery)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  location          = VALUES(location),
  needs             = VALUES(needs),
  urgency           = VALUES(urgency),
  capacity_kg       = VALUES(capacity_kg),
  population_served = VALUES(population_served),
  last_delivery     = VALUES(last_delivery),
  updated_at        = CURRENT_TIMESTAMP
`

const upsertVehicleSQL = `
INSERT INTO vehicles
  (id, vehicle_type, capacity_kg, location, status, cost_per_km, co2_per_km)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  vehicle_type = VALUES(vehicle_type),
  capacity_kg  = VALUES(capacity_kg),
  location     = VALUES(location),
  status       = VALUES(status),
  cost_per_km  = VALUES(cost_per_km),
  co2_per_km   = VALUES(co2_per_km),
  updated_at   = CURRENT_TIMESTAMP
`

const upsertStorageSQL = `
INSERT INTO storage_facilities
  (id, location, capacity_kg, available_kg, temperature, cost_per_day_per_kg)
VALUES
  (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  location            = VALUES(location),
  capacity_kg         = VALUES(capacity_kg),
  available_kg        = VALUES(available_kg),
  temperature         = VALUES(temperature),
  cost_per_day_per_kg = VALUES(cost_per_day_per_kg),
  updated_at          = CURRENT_TIMESTAMP
`

const upsertFarmerSQL = `
INSERT INTO farmers
  (id, name, location, years_farming, economic_status, last_month_income)
VALUES
  (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name              = VALUES(name),
  location          = VALUES(location),
  years_farming     = VALUES(years_farming),
  economic_status   = VALUES(economic_status),
  last_month_income = VALUES(last_month_income),
  updated_at        = CURRENT_TIMESTAMP
`

const insertPlanSQL = `
INSERT INTO allocation_plans
  (id, focus, raw_report, plan_text, summary, source, impact, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listInventorySQL = `
SELECT id, location, item, quantity, unit, perishability, price_per_unit, farmer_id
FROM inventory_items
ORDER BY id
`

const listDemandsSQL = `
SELECT id, location, needs, urgency, capacity_kg, population_served, last_delivery
FROM demand_signals
ORDER BY id
`

const listVehiclesSQL = `
SELECT id, vehicle_type, capacity_kg, location, status, cost_per_km, co2_per_km
FROM vehicles
ORDER BY id
`

const listStorageSQL = `
SELECT id, location, capacity_kg, available_kg, temperature, cost_per_day_per_kg
FROM storage_facilities
ORDER BY id
`

const listFarmersSQL = `
SELECT id, name, location, years_farming, economic_status, last_month_income
FROM farmers
ORDER BY id
`

const listPlansSQL = `
SELECT id, focus, raw_report, plan_text, summary, source, impact, created_at
FROM allocation_plans
ORDER BY created_at DESC, id DESC
LIMIT ?
`

// Aggregates for the dashboard, one round trip each. Milk liters count as
// kg here, matching how the fixtures were sized.
const statsInventorySQL = `SELECT COALESCE(SUM(quantity), 0) FROM inventory_items`
const statsDemandSQL = `SELECT COALESCE(SUM(capacity_kg), 0) FROM demand_signals`
const statsVehiclesSQL = `
SELECT COUNT(*), COALESCE(SUM(status = 'available'), 0) FROM vehicles
`
const statsStorageSQL = `
SELECT COALESCE(SUM(capacity_kg), 0), COALESCE(SUM(available_kg), 0) FROM storage_facilities
`
