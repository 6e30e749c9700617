package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrMatchNotFound = errors.New("match record not found")

type MatchRecordRepository interface {
	Upsert(ctx context.Context, res match.Result) error
	Find(ctx context.Context, candidateID, jobID uuid.UUID) (match.Result, error)
}

type PostgresMatchRecordRepository struct {
	db database.DB
}

func NewPostgresMatchRecordRepository(db database.DB) *PostgresMatchRecordRepository {
	return &PostgresMatchRecordRepository{db: db}
}

func (r *PostgresMatchRecordRepository) Upsert(ctx context.Context, res match.Result) error {
	if res.CandidateID == uuid.Nil || res.JobID == uuid.Nil {
		return nil
	}
	if res.EvaluatedAt.IsZero() {
		res.EvaluatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO match_records (id, candidate_id, job_id, overall_score, adjusted_score, result, evaluated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (candidate_id, job_id) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			adjusted_score = EXCLUDED.adjusted_score,
			result = EXCLUDED.result,
			evaluated_at = EXCLUDED.evaluated_at`,
		uuid.New(),
		res.CandidateID,
		res.JobID,
		res.OverallScore,
		res.LocationAdjustedScore,
		payload,
		res.EvaluatedAt,
	)
	return err
}

func (r *PostgresMatchRecordRepository) Find(ctx context.Context, candidateID, jobID uuid.UUID) (match.Result, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return match.Result{}, ErrMatchNotFound
	}

	var payload []byte
	err := r.db.QueryRow(ctx,
		`SELECT result FROM match_records WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Result{}, ErrMatchNotFound
		}
		return match.Result{}, err
	}

	var res match.Result
	if err := json.Unmarshal(payload, &res); err != nil {
		return match.Result{}, err
	}
	return res, nil
}

var _ MatchRecordRepository = (*PostgresMatchRecordRepository)(nil)
