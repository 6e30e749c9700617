package app

import (
	"fmt"
	"strings"

	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	registry := &routes.Registry{
		Health:    handler.NewHealthHandler(c.DB, c.Redis),
		Auth:      handler.NewAuthHandler(c.Auth),
		Match:     handler.NewMatchHandler(c.Match),
		Batch:     handler.NewBatchHandler(c.Batch),
		WS:        ws.NewHandler(c.Hub, c.Logger),
		AuthGuard: middleware.NewAuthMiddleware(c.JWT),
	}
	registry.Register(f)

	go c.Hub.Run()

	return &App{Fiber: f}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
