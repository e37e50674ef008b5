package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"time"

	"relief_ai/internal/domain"
)

func nowUTC() time.Time { return time.Now().UTC() }

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// execEach runs one upsert per row inside a transaction so a partial
// seed never becomes visible.
func (r *Repo) execEach(ctx context.Context, query string, n int, args func(i int) []any) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for i := 0; i < n; i++ {
		if _, err := tx.ExecContext(ctx, query, args(i)...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repo) UpsertInventory(ctx context.Context, items []domain.InventoryItem) error {
	return r.execEach(ctx, upsertInventorySQL, len(items), func(i int) []any {
		it := items[i]
		return []any{it.ID, it.Location, it.Item, it.Quantity, it.Unit, it.Perishability, it.PricePerUnit, it.FarmerID}
	})
}

func (r *Repo) UpsertDemands(ctx context.Context, ds []domain.DemandSignal) error {
	return r.execEach(ctx, upsertDemandSQL, len(ds), func(i int) []any {
		d := ds[i]
		needs, _ := json.Marshal(d.Needs)
		return []any{d.ID, d.Location, string(needs), d.Urgency, d.CapacityKg, d.PopulationServed, d.LastDelivery}
	})
}

func (r *Repo) UpsertVehicles(ctx context.Context, vs []domain.Vehicle) error {
	return r.execEach(ctx, upsertVehicleSQL, len(vs), func(i int) []any {
		v := vs[i]
		return []any{v.ID, v.VehicleType, v.CapacityKg, v.Location, v.Status, v.CostPerKm, v.CO2PerKm}
	})
}

func (r *Repo) UpsertStorage(ctx context.Context, fs []domain.StorageFacility) error {
	return r.execEach(ctx, upsertStorageSQL, len(fs), func(i int) []any {
		f := fs[i]
		return []any{f.ID, f.Location, f.CapacityKg, f.AvailableKg, f.Temperature, f.CostPerDayPerKg}
	})
}

func (r *Repo) UpsertFarmers(ctx context.Context, fs []domain.Farmer) error {
	return r.execEach(ctx, upsertFarmerSQL, len(fs), func(i int) []any {
		f := fs[i]
		return []any{f.ID, f.Name, f.Location, f.YearsFarming, f.EconomicStatus, f.LastMonthIncome}
	})
}

func (r *Repo) InsertPlan(ctx context.Context, p domain.PlanRecord) error {
	impact := p.ImpactJSON
	if len(impact) == 0 {
		impact = []byte("{}")
	}
	_, err := r.db.ExecContext(ctx, insertPlanSQL,
		p.ID, p.Focus, p.RawReport, p.PlanText, p.Summary, p.Source, string(impact), p.CreatedAt,
	)
	return err
}

func (r *Repo) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, listInventorySQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.InventoryItem
	for rows.Next() {
		var it domain.InventoryItem
		if err := rows.Scan(&it.ID, &it.Location, &it.Item, &it.Quantity, &it.Unit, &it.Perishability, &it.PricePerUnit, &it.FarmerID); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) ListDemands(ctx context.Context) ([]domain.DemandSignal, error) {
	rows, err := r.db.QueryContext(ctx, listDemandsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DemandSignal
	for rows.Next() {
		var d domain.DemandSignal
		var needsJSON []byte
		if err := rows.Scan(&d.ID, &d.Location, &needsJSON, &d.Urgency, &d.CapacityKg, &d.PopulationServed, &d.LastDelivery); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(needsJSON, &d.Needs)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repo) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, listVehiclesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.VehicleType, &v.CapacityKg, &v.Location, &v.Status, &v.CostPerKm, &v.CO2PerKm); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *Repo) ListStorage(ctx context.Context) ([]domain.StorageFacility, error) {
	rows, err := r.db.QueryContext(ctx, listStorageSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StorageFacility
	for rows.Next() {
		var f domain.StorageFacility
		if err := rows.Scan(&f.ID, &f.Location, &f.CapacityKg, &f.AvailableKg, &f.Temperature, &f.CostPerDayPerKg); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *Repo) ListFarmers(ctx context.Context) ([]domain.Farmer, error) {
	rows, err := r.db.QueryContext(ctx, listFarmersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Farmer
	for rows.Next() {
		var f domain.Farmer
		if err := rows.Scan(&f.ID, &f.Name, &f.Location, &f.YearsFarming, &f.EconomicStatus, &f.LastMonthIncome); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *Repo) ListPlans(ctx context.Context, limit int) ([]domain.PlanRecord, error) {
	rows, err := r.db.QueryContext(ctx, listPlansSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PlanRecord
	for rows.Next() {
		var p domain.PlanRecord
		var impact sql.RawBytes
		if err := rows.Scan(&p.ID, &p.Focus, &p.RawReport, &p.PlanText, &p.Summary, &p.Source, &impact, &p.CreatedAt); err != nil {
			return nil, err
		}
		if len(impact) > 0 {
			p.ImpactJSON = append([]byte(nil), impact...)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var s domain.DashboardStats
	if err := r.db.QueryRowContext(ctx, statsInventorySQL).Scan(&s.TotalInventoryKg); err != nil {
		return domain.DashboardStats{}, err
	}
	if err := r.db.QueryRowContext(ctx, statsDemandSQL).Scan(&s.TotalDemandCapacity); err != nil {
		return domain.DashboardStats{}, err
	}
	if err := r.db.QueryRowContext(ctx, statsVehiclesSQL).Scan(&s.TotalVehicles, &s.AvailableVehicles); err != nil {
		return domain.DashboardStats{}, err
	}
	if err := r.db.QueryRowContext(ctx, statsStorageSQL).Scan(&s.TotalStorageKg, &s.AvailableStorageKg); err != nil {
		return domain.DashboardStats{}, err
	}
	if s.TotalDemandCapacity > 0 {
		// Percentage, two decimals.
		pct := s.TotalInventoryKg / float64(s.TotalDemandCapacity) * 100
		s.UtilizationRate = math.Round(pct*100) / 100
	}
	s.LastUpdated = nowUTC()
	return s, nil
}
