package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/business"
	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/match"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockCandidateRepo struct {
	profiles map[uuid.UUID]candidate.Profile
	calls    int
	err      error
}

func (m *mockCandidateRepo) FindByID(_ context.Context, id uuid.UUID) (candidate.Profile, error) {
	m.calls++
	if m.err != nil {
		return candidate.Profile{}, m.err
	}
	p, ok := m.profiles[id]
	if !ok {
		return candidate.Profile{}, repository.ErrCandidateNotFound
	}
	return p, nil
}

type mockJobRepo struct {
	jobs map[uuid.UUID]job.Requisition
}

func (m *mockJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Requisition, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Requisition{}, repository.ErrJobNotFound
	}
	return j, nil
}

type mockUnitRegistry struct{}

func (mockUnitRegistry) Get(_ context.Context, unitID string) (business.UnitConfig, error) {
	if cfg, ok := business.DefaultConfig(business.UnitKind(unitID)); ok {
		return cfg, nil
	}
	return business.UnitConfig{}, business.ErrUnknownUnit
}

type mockRecordRepo struct {
	upserts int
	err     error
}

func (m *mockRecordRepo) Upsert(_ context.Context, _ match.Result) error {
	m.upserts++
	return m.err
}

func (m *mockRecordRepo) Find(_ context.Context, _, _ uuid.UUID) (match.Result, error) {
	return match.Result{}, repository.ErrMatchNotFound
}

func fixtureIDs() (uuid.UUID, uuid.UUID) {
	return uuid.New(), uuid.New()
}

func newTestMatcher(candidates *mockCandidateRepo, jobs *mockJobRepo, records *mockRecordRepo, store cache.Store) *Matcher {
	return NewMatcher(MatcherOptions{
		Candidates: candidates,
		Jobs:       jobs,
		Units:      mockUnitRegistry{},
		Records:    records,
		Cache:      store,
	})
}

func TestEvaluate_FullPipeline(t *testing.T) {
	candidateID, jobID := fixtureIDs()
	candidates := &mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{
		candidateID: {ID: candidateID, Skills: []string{"go", "postgres"}, TotalYears: 5},
	}}
	jobs := &mockJobRepo{jobs: map[uuid.UUID]job.Requisition{
		jobID: {ID: jobID, BusinessUnitID: "general", RequiredSkills: []string{"go", "postgres"}, MinYears: 3, MaxYears: 8},
	}}
	records := &mockRecordRepo{}

	uc := newTestMatcher(candidates, jobs, records, nil)
	res, err := uc.Evaluate(context.Background(), candidateID, jobID, false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if res.CandidateID != candidateID || res.JobID != jobID {
		t.Fatalf("result ids mismatch: %+v", res)
	}
	if len(res.CategoryScores) != 9 {
		t.Fatalf("expected 9 category scores, got %d", len(res.CategoryScores))
	}
	if res.OverallScore <= 0 || res.OverallScore > 1 {
		t.Fatalf("overall score out of range: %v", res.OverallScore)
	}
	if res.Confidence > 0.95 {
		t.Fatalf("confidence must cap at 0.95, got %v", res.Confidence)
	}
	if res.Commute != nil {
		t.Fatalf("location analysis must not run when not requested")
	}
	if res.LocationAdjustedScore != res.OverallScore {
		t.Fatalf("without location data the adjusted score equals the overall score")
	}
	if records.upserts != 1 {
		t.Fatalf("expected the result to be persisted once, got %d", records.upserts)
	}
}

func TestEvaluate_UnknownUnitFatal(t *testing.T) {
	candidateID, jobID := fixtureIDs()
	candidates := &mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candidateID: {ID: candidateID}}}
	jobs := &mockJobRepo{jobs: map[uuid.UUID]job.Requisition{
		jobID: {ID: jobID, BusinessUnitID: "no-such-unit"},
	}}

	uc := newTestMatcher(candidates, jobs, nil, nil)
	if _, err := uc.Evaluate(context.Background(), candidateID, jobID, true); !errors.Is(err, business.ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestEvaluate_ResultCached(t *testing.T) {
	candidateID, jobID := fixtureIDs()
	candidates := &mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candidateID: {ID: candidateID}}}
	jobs := &mockJobRepo{jobs: map[uuid.UUID]job.Requisition{
		jobID: {ID: jobID, BusinessUnitID: "general"},
	}}
	records := &mockRecordRepo{}

	uc := newTestMatcher(candidates, jobs, records, cache.NewMemory())
	for i := 0; i < 3; i++ {
		if _, err := uc.Evaluate(context.Background(), candidateID, jobID, false); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if records.upserts != 1 {
		t.Fatalf("cache hits must not re-persist, got %d upserts", records.upserts)
	}
	if candidates.calls != 3 {
		// identity loads still happen; only the evaluation is cached
		t.Fatalf("expected 3 candidate loads, got %d", candidates.calls)
	}
}

func TestEvaluate_PersistFailureNotFatal(t *testing.T) {
	candidateID, jobID := fixtureIDs()
	candidates := &mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candidateID: {ID: candidateID}}}
	jobs := &mockJobRepo{jobs: map[uuid.UUID]job.Requisition{
		jobID: {ID: jobID, BusinessUnitID: "general"},
	}}
	records := &mockRecordRepo{err: errors.New("pg down")}

	uc := newTestMatcher(candidates, jobs, records, nil)
	if _, err := uc.Evaluate(context.Background(), candidateID, jobID, false); err != nil {
		t.Fatalf("record persistence failure must not fail the evaluation: %v", err)
	}
}

func TestEvaluate_InvalidInput(t *testing.T) {
	uc := newTestMatcher(&mockCandidateRepo{}, &mockJobRepo{}, nil, nil)
	if _, err := uc.Evaluate(context.Background(), uuid.Nil, uuid.New(), false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
