package repository

import (
	"context"
	"encoding/json"
	"errors"

	"talent-match/internal/database"
	"talent-match/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (job.Requisition, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Requisition, error) {
	if id == uuid.Nil {
		return job.Requisition{}, ErrJobNotFound
	}

	var payload []byte
	err := r.db.QueryRow(ctx,
		`SELECT requisition FROM job_requisitions WHERE id = $1`,
		id,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Requisition{}, ErrJobNotFound
		}
		return job.Requisition{}, err
	}

	var j job.Requisition
	if err := json.Unmarshal(payload, &j); err != nil {
		return job.Requisition{}, err
	}
	j.ID = id
	return j, nil
}

var _ JobRepository = (*PostgresJobRepository)(nil)
