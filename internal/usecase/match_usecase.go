package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talent-match/internal/commute"
	"talent-match/internal/domain/business"
	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/match"
	"talent-match/internal/domain/scoring"
	"talent-match/internal/geo"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchUsecase interface {
	Evaluate(ctx context.Context, candidateID, jobID uuid.UUID, includeLocation bool) (match.Result, error)
	Find(ctx context.Context, candidateID, jobID uuid.UUID) (match.Result, error)
}

// Matcher sequences the scoring pipeline: category scores, DEI and bias
// analyses, aggregation, then the optional commute analysis and location
// adjustment. Location failures degrade that feature only; an unknown business
// unit fails the request.
type Matcher struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	units      business.Registry
	records    repository.MatchRecordRepository

	scorer   *scoring.CategoryScorer
	dei      *scoring.DEIAnalyzer
	bias     *scoring.BiasDetector
	agg      *scoring.Aggregator
	adjuster *scoring.LocationScoreAdjuster
	commutes *commute.Analyzer

	cache    cache.Store
	cacheTTL time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

type MatcherOptions struct {
	Candidates repository.CandidateRepository
	Jobs       repository.JobRepository
	Units      business.Registry
	Records    repository.MatchRecordRepository
	Commutes   *commute.Analyzer
	Cache      cache.Store
	CacheTTL   time.Duration
	Logger     *zap.Logger
}

func NewMatcher(opts MatcherOptions) *Matcher {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Matcher{
		candidates: opts.Candidates,
		jobs:       opts.Jobs,
		units:      opts.Units,
		records:    opts.Records,
		scorer:     scoring.NewCategoryScorer(nil),
		dei:        scoring.NewDEIAnalyzer(),
		bias:       scoring.NewBiasDetector(),
		agg:        scoring.NewAggregator(),
		adjuster:   scoring.NewLocationScoreAdjuster(),
		commutes:   opts.Commutes,
		cache:      opts.Cache,
		cacheTTL:   ttl,
		now:        time.Now,
		logger:     logger,
	}
}

func (m *Matcher) Evaluate(ctx context.Context, candidateID, jobID uuid.UUID, includeLocation bool) (match.Result, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return match.Result{}, ErrInvalidInput
	}

	cand, err := m.candidates.FindByID(ctx, candidateID)
	if err != nil {
		return match.Result{}, err
	}
	req, err := m.jobs.FindByID(ctx, jobID)
	if err != nil {
		return match.Result{}, err
	}
	unit, err := m.units.Get(ctx, req.BusinessUnitID)
	if err != nil {
		return match.Result{}, err
	}

	key := resultCacheKey(candidateID, jobID, unit.ID, includeLocation)
	if m.cache != nil {
		var cached match.Result
		hit, cerr := m.cache.GetJSON(ctx, key, &cached)
		if cerr == nil && hit {
			return cached, nil
		}
	}

	res := m.evaluate(ctx, &cand, &req, unit, includeLocation)

	if m.records != nil {
		if err := m.records.Upsert(ctx, res); err != nil {
			m.logger.Warn("match record upsert failed",
				zap.String("candidate_id", candidateID.String()),
				zap.String("job_id", jobID.String()),
				zap.Error(err))
		}
	}
	if m.cache != nil {
		if err := m.cache.SetJSON(ctx, key, res, m.cacheTTL); err != nil {
			m.logger.Debug("match result cache write failed", zap.Error(err))
		}
	}
	return res, nil
}

func (m *Matcher) evaluate(ctx context.Context, cand *candidate.Profile, req *job.Requisition, unit business.UnitConfig, includeLocation bool) match.Result {
	categories := m.scorer.ScoreAll(cand, req)
	dei := m.dei.Analyze(cand)
	bias := m.bias.Assess(cand, req)
	agg := m.agg.Aggregate(categories, dei)

	res := match.Result{
		CandidateID:     cand.ID,
		JobID:           req.ID,
		BusinessUnitID:  unit.ID,
		OverallScore:    agg.Overall,
		CategoryScores:  categories,
		DEI:             dei,
		Bias:            bias,
		Confidence:      agg.Confidence,
		GrowthPotential: agg.GrowthPotential,
		RiskFactors:     agg.RiskFactors,
		Recommendations: agg.Recommendations,
		EvaluatedAt:     m.now().UTC(),
	}

	var profile *commute.Profile
	if includeLocation && m.commutes != nil && cand.Address != "" {
		p, err := m.commutes.Analyze(ctx, unit, cand.Address)
		switch {
		case err == nil:
			profile = p
		case errors.Is(err, geo.ErrUnresolved), errors.Is(err, commute.ErrNoOffices):
			m.logger.Info("location analysis unavailable",
				zap.String("candidate_id", cand.ID.String()),
				zap.String("unit", unit.ID),
				zap.Error(err))
		default:
			m.logger.Warn("location analysis failed",
				zap.String("candidate_id", cand.ID.String()),
				zap.Error(err))
		}
	}

	adj := m.adjuster.Adjust(agg.Overall, profile, unit)
	res.Commute = profile
	res.LocationAdjustedScore = adj.Adjusted
	if profile != nil {
		res.Recommendations = append(res.Recommendations,
			fmt.Sprintf("commute: recommend %s, %s arrangement", profile.RecommendedMode, profile.Flexibility))
	}
	return res
}

func (m *Matcher) Find(ctx context.Context, candidateID, jobID uuid.UUID) (match.Result, error) {
	if m.records == nil {
		return match.Result{}, repository.ErrMatchNotFound
	}
	return m.records.Find(ctx, candidateID, jobID)
}

func resultCacheKey(candidateID, jobID uuid.UUID, unitID string, includeLocation bool) string {
	suffix := "base"
	if includeLocation {
		suffix = "loc"
	}
	return fmt.Sprintf("match:result:%s:%s:%s:%s", candidateID, jobID, unitID, suffix)
}

var _ MatchUsecase = (*Matcher)(nil)
