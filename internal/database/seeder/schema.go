package seeder

import (
	"context"

	"talent-match/internal/database"
)

// SchemaSeeder creates the tables the repositories expect. Statements are
// idempotent so the seeder can run on every bootstrap.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id UUID PRIMARY KEY,
		profile JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_requisitions (
		id UUID PRIMARY KEY,
		requisition JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS business_units (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		offices JSONB NOT NULL DEFAULT '[]',
		cost_per_km DOUBLE PRECISION NOT NULL,
		max_commute_tolerance_min DOUBLE PRECISION NOT NULL,
		stress_threshold DOUBLE PRECISION NOT NULL,
		cost_sensitivity DOUBLE PRECISION NOT NULL,
		location_weight DOUBLE PRECISION NOT NULL,
		allowed_modes JSONB NOT NULL DEFAULT '[]',
		flexibility_preference TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS match_records (
		id UUID PRIMARY KEY,
		candidate_id UUID NOT NULL,
		job_id UUID NOT NULL,
		overall_score DOUBLE PRECISION NOT NULL,
		adjusted_score DOUBLE PRECISION NOT NULL,
		result JSONB NOT NULL,
		evaluated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (candidate_id, job_id)
	)`,
}

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
