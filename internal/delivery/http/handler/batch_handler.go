package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type BatchHandler struct {
	uc usecase.BatchUsecase
}

func NewBatchHandler(uc usecase.BatchUsecase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

func (h *BatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/matches/batch", h.Run)
}

func (h *BatchHandler) Run(c fiber.Ctx) error {
	var req dto.BatchEvaluateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.JobID == uuid.Nil || len(req.CandidateIDs) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "job_id and candidate_ids are required", nil, nil)
	}

	rep, err := h.uc.Run(c.Context(), usecase.BatchRequest{
		JobID:           req.JobID,
		CandidateIDs:    req.CandidateIDs,
		TopK:            req.TopK,
		IncludeLocation: req.IncludeLocation,
	})
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewBatchReportResponse(rep))
}
