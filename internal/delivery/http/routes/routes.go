package routes

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health *handler.HealthHandler
	Auth   *handler.AuthHandler
	Match  *handler.MatchHandler
	Batch  *handler.BatchHandler
	WS     *ws.Handler

	AuthGuard *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)
	app.Get("/ws/batches", r.WS.HandleBatchesWS)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.Auth.RegisterRoutes(v1.Group("/auth"))

	protected := v1.Group("", r.AuthGuard.Middleware())
	r.Match.RegisterRoutes(protected)
	r.Batch.RegisterRoutes(protected)
}
