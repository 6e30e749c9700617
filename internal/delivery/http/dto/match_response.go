package dto

import (
	"talent-match/internal/domain/match"
	"talent-match/internal/usecase"

	"github.com/google/uuid"
)

type EvaluateRequest struct {
	CandidateID     uuid.UUID `json:"candidate_id"`
	JobID           uuid.UUID `json:"job_id"`
	IncludeLocation bool      `json:"include_location"`
}

type BatchEvaluateRequest struct {
	JobID           uuid.UUID   `json:"job_id"`
	CandidateIDs    []uuid.UUID `json:"candidate_ids"`
	TopK            int         `json:"top_k"`
	IncludeLocation bool        `json:"include_location"`
}

// MatchSummaryResponse is the per-candidate row in a batch report. The full
// result stays available through the single-evaluation endpoint.
type MatchSummaryResponse struct {
	CandidateID           uuid.UUID `json:"candidate_id"`
	OverallScore          float64   `json:"overall_score"`
	LocationAdjustedScore float64   `json:"location_adjusted_score,omitempty"`
	RankingScore          float64   `json:"ranking_score"`
	Confidence            float64   `json:"confidence"`
	GrowthPotential       float64   `json:"growth_potential"`
	RecommendedMode       string    `json:"recommended_mode,omitempty"`
}

type BatchReportResponse struct {
	BatchID      uuid.UUID                `json:"batch_id"`
	JobID        uuid.UUID                `json:"job_id"`
	Results      []MatchSummaryResponse   `json:"results"`
	Errors       []usecase.BatchItemError `json:"errors"`
	SuccessCount int                      `json:"success_count"`
	ErrorCount   int                      `json:"error_count"`
}

func NewMatchSummaryResponse(r match.Result) MatchSummaryResponse {
	out := MatchSummaryResponse{
		CandidateID:     r.CandidateID,
		OverallScore:    r.OverallScore,
		RankingScore:    r.RankingScore(),
		Confidence:      r.Confidence,
		GrowthPotential: r.GrowthPotential,
	}
	if r.Commute != nil {
		out.LocationAdjustedScore = r.LocationAdjustedScore
		out.RecommendedMode = string(r.Commute.RecommendedMode)
	}
	return out
}

func NewBatchReportResponse(rep usecase.BatchReport) BatchReportResponse {
	out := BatchReportResponse{
		BatchID:      rep.BatchID,
		JobID:        rep.JobID,
		Results:      make([]MatchSummaryResponse, 0, len(rep.Results)),
		Errors:       rep.Errors,
		SuccessCount: rep.SuccessCount,
		ErrorCount:   rep.ErrorCount,
	}
	if out.Errors == nil {
		out.Errors = []usecase.BatchItemError{}
	}
	for _, r := range rep.Results {
		out.Results = append(out.Results, NewMatchSummaryResponse(r))
	}
	return out
}
