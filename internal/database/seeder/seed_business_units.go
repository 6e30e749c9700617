package seeder

import (
	"context"
	"encoding/json"

	"talent-match/internal/database"
	"talent-match/internal/domain/business"
)

// BusinessUnitsSeeder inserts the built-in unit policies. Existing rows are
// left alone so operator edits survive restarts.
type BusinessUnitsSeeder struct{}

func (BusinessUnitsSeeder) Name() string { return "business_units" }

func (BusinessUnitsSeeder) Run(ctx context.Context, db database.DB) error {
	kinds := []business.UnitKind{
		business.UnitExecutive,
		business.UnitGeneral,
		business.UnitStudent,
		business.UnitEntryLevel,
	}

	for _, kind := range kinds {
		cfg, ok := business.DefaultConfig(kind)
		if !ok {
			continue
		}

		offices, err := json.Marshal(cfg.Offices)
		if err != nil {
			return err
		}
		modes, err := json.Marshal(cfg.AllowedModes)
		if err != nil {
			return err
		}

		_, err = db.Exec(
			ctx,
			`INSERT INTO business_units
			 (id, kind, offices, cost_per_km, max_commute_tolerance_min, stress_threshold,
			  cost_sensitivity, location_weight, allowed_modes, flexibility_preference)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (id) DO NOTHING`,
			cfg.ID, string(cfg.Kind), offices, cfg.CostPerKm, cfg.MaxCommuteToleranceMin,
			cfg.StressThreshold, cfg.CostSensitivity, cfg.LocationWeight, modes,
			string(cfg.FlexibilityPreference),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
