package handler

import (
	"context"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	checks := map[string]string{
		"database": "ok",
		"redis":    "ok",
	}

	if h.db == nil {
		checks["database"] = "unconfigured"
		status = fiber.StatusServiceUnavailable
	} else if err := h.db.Ping(ctx); err != nil {
		checks["database"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}

	// a down cache degrades to passthrough, so it never fails the check
	if h.redis == nil {
		checks["redis"] = "unconfigured"
	} else if err := h.redis.Ping(ctx); err != nil {
		checks["redis"] = "degraded: " + err.Error()
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "unhealthy", checks)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}
