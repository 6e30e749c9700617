package repository

import (
	"context"
	"encoding/json"
	"errors"

	"talent-match/internal/database"
	"talent-match/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	if id == uuid.Nil {
		return candidate.Profile{}, ErrCandidateNotFound
	}

	var payload []byte
	err := r.db.QueryRow(ctx,
		`SELECT profile FROM candidates WHERE id = $1`,
		id,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, err
	}

	var p candidate.Profile
	if err := json.Unmarshal(payload, &p); err != nil {
		return candidate.Profile{}, err
	}
	p.ID = id
	return p, nil
}

var _ CandidateRepository = (*PostgresCandidateRepository)(nil)
