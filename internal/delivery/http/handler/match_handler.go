package handler

import (
	"errors"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/business"
	"talent-match/internal/pkg/response"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/matches")
	grp.Post("/evaluate", h.Evaluate)
	grp.Get("/:candidate_id/:job_id", h.Get)
}

func (h *MatchHandler) Evaluate(c fiber.Ctx) error {
	var req struct {
		CandidateID     uuid.UUID `json:"candidate_id"`
		JobID           uuid.UUID `json:"job_id"`
		IncludeLocation bool      `json:"include_location"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.CandidateID == uuid.Nil || req.JobID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "candidate_id and job_id are required", nil, nil)
	}

	res, err := h.uc.Evaluate(c.Context(), req.CandidateID, req.JobID, req.IncludeLocation)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MatchHandler) Get(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidate_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Find(c.Context(), candidateID, jobID)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapMatchError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repository.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, repository.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, repository.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, business.ErrUnknownUnit):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unknown business unit", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
