package usecase

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"talent-match/internal/domain/business"
	"talent-match/internal/domain/match"
	"talent-match/internal/repository"
	"talent-match/internal/worker"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BatchRequest struct {
	JobID           uuid.UUID
	CandidateIDs    []uuid.UUID
	TopK            int
	IncludeLocation bool
}

type BatchItemError struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Error       string    `json:"error"`
}

type BatchReport struct {
	BatchID      uuid.UUID        `json:"batch_id"`
	JobID        uuid.UUID        `json:"job_id"`
	Results      []match.Result   `json:"results"`
	Errors       []BatchItemError `json:"errors"`
	SuccessCount int              `json:"success_count"`
	ErrorCount   int              `json:"error_count"`
}

// Notifier receives batch lifecycle events. The websocket hub implements it;
// a nil notifier disables events.
type Notifier interface {
	BatchStarted(batchID, jobID uuid.UUID, total int)
	BatchProgress(batchID uuid.UUID, done, total int)
	BatchCompleted(batchID uuid.UUID, success, failed int)
}

type BatchUsecase interface {
	Run(ctx context.Context, req BatchRequest) (BatchReport, error)
}

// Batch evaluates many candidates against one requisition under a bounded
// worker pool. Per-candidate failures are isolated and recorded; only a
// missing requisition or unknown business unit fails the whole batch.
type Batch struct {
	matcher     MatchUsecase
	jobs        repository.JobRepository
	units       business.Registry
	concurrency int
	notifier    Notifier
	logger      *zap.Logger
}

func NewBatch(matcher MatchUsecase, jobs repository.JobRepository, units business.Registry, concurrency int, notifier Notifier, logger *zap.Logger) *Batch {
	if concurrency <= 0 {
		concurrency = 8
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batch{
		matcher:     matcher,
		jobs:        jobs,
		units:       units,
		concurrency: concurrency,
		notifier:    notifier,
		logger:      logger,
	}
}

func (b *Batch) Run(ctx context.Context, req BatchRequest) (BatchReport, error) {
	if req.JobID == uuid.Nil || len(req.CandidateIDs) == 0 {
		return BatchReport{}, ErrInvalidInput
	}

	// configuration problems are fatal for the batch, so validate before
	// scheduling any work
	requisition, err := b.jobs.FindByID(ctx, req.JobID)
	if err != nil {
		return BatchReport{}, err
	}
	if _, err := b.units.Get(ctx, requisition.BusinessUnitID); err != nil {
		return BatchReport{}, err
	}

	batchID := uuid.New()
	total := len(req.CandidateIDs)
	if b.notifier != nil {
		b.notifier.BatchStarted(batchID, req.JobID, total)
	}

	type slot struct {
		result match.Result
		err    error
	}
	slots := make([]slot, total)

	var done atomic.Int64
	pool := worker.NewPool(b.concurrency, total)

	var submitWG sync.WaitGroup
	submitWG.Add(1)
	go func() {
		defer submitWG.Done()
		defer pool.Close()
		for i, candidateID := range req.CandidateIDs {
			if ctx.Err() != nil {
				return
			}
			pool.Submit(func(taskCtx context.Context) error {
				res, err := b.matcher.Evaluate(taskCtx, candidateID, req.JobID, req.IncludeLocation)
				slots[i] = slot{result: res, err: err}
				if b.notifier != nil {
					b.notifier.BatchProgress(batchID, int(done.Add(1)), total)
				}
				return err
			})
		}
	}()

	for range pool.Run(ctx) {
		// drain; per-slot outcomes were already recorded by the tasks
	}
	submitWG.Wait()

	report := BatchReport{BatchID: batchID, JobID: req.JobID}
	for i, s := range slots {
		switch {
		case s.err != nil:
			report.Errors = append(report.Errors, BatchItemError{
				CandidateID: req.CandidateIDs[i],
				Error:       s.err.Error(),
			})
		case s.result.CandidateID == uuid.Nil:
			// task never ran (cancelled before scheduling)
			report.Errors = append(report.Errors, BatchItemError{
				CandidateID: req.CandidateIDs[i],
				Error:       context.Canceled.Error(),
			})
		default:
			report.Results = append(report.Results, s.result)
		}
	}

	sort.Slice(report.Results, func(i, j int) bool {
		a, c := report.Results[i], report.Results[j]
		if a.RankingScore() != c.RankingScore() {
			return a.RankingScore() > c.RankingScore()
		}
		return a.CandidateID.String() < c.CandidateID.String()
	})
	if req.TopK > 0 && len(report.Results) > req.TopK {
		report.Results = report.Results[:req.TopK]
	}

	report.SuccessCount = total - len(report.Errors)
	report.ErrorCount = len(report.Errors)

	if b.notifier != nil {
		b.notifier.BatchCompleted(batchID, report.SuccessCount, report.ErrorCount)
	}
	b.logger.Info("batch evaluation finished",
		zap.String("batch_id", batchID.String()),
		zap.String("job_id", req.JobID.String()),
		zap.Int("success", report.SuccessCount),
		zap.Int("errors", report.ErrorCount))
	return report, nil
}

var _ BatchUsecase = (*Batch)(nil)
