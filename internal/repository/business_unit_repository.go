package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"talent-match/internal/database"
	"talent-match/internal/domain/business"

	"github.com/jackc/pgx/v5"
)

// PostgresUnitRegistry resolves business-unit configuration. Units without a
// row fall back to the built-in defaults when the id names a known unit kind;
// anything else is business.ErrUnknownUnit, which is fatal for the request.
type PostgresUnitRegistry struct {
	db database.DB
}

func NewPostgresUnitRegistry(db database.DB) *PostgresUnitRegistry {
	return &PostgresUnitRegistry{db: db}
}

func (r *PostgresUnitRegistry) Get(ctx context.Context, unitID string) (business.UnitConfig, error) {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return business.UnitConfig{}, business.ErrUnknownUnit
	}

	var (
		kind        string
		offices     []byte
		costPerKm   float64
		tolerance   float64
		stress      float64
		sensitivity float64
		locWeight   float64
		modes       []byte
		flexibility string
	)
	err := r.db.QueryRow(ctx,
		`SELECT kind, offices, cost_per_km, max_commute_tolerance_min, stress_threshold,
		        cost_sensitivity, location_weight, allowed_modes, flexibility_preference
		 FROM business_units WHERE id = $1`,
		unitID,
	).Scan(&kind, &offices, &costPerKm, &tolerance, &stress, &sensitivity, &locWeight, &modes, &flexibility)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if cfg, ok := business.DefaultConfig(business.UnitKind(unitID)); ok {
				return cfg, nil
			}
			return business.UnitConfig{}, business.ErrUnknownUnit
		}
		return business.UnitConfig{}, err
	}

	cfg := business.UnitConfig{
		ID:                     unitID,
		Kind:                   business.UnitKind(kind),
		CostPerKm:              costPerKm,
		MaxCommuteToleranceMin: tolerance,
		StressThreshold:        stress,
		CostSensitivity:        sensitivity,
		LocationWeight:         locWeight,
		FlexibilityPreference:  business.FlexibilityOption(flexibility),
	}
	if len(offices) > 0 {
		if err := json.Unmarshal(offices, &cfg.Offices); err != nil {
			return business.UnitConfig{}, err
		}
	}
	if len(modes) > 0 {
		if err := json.Unmarshal(modes, &cfg.AllowedModes); err != nil {
			return business.UnitConfig{}, err
		}
	}
	return cfg, nil
}

var _ business.Registry = (*PostgresUnitRegistry)(nil)
