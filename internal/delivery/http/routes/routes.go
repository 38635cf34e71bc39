package routes

import (
	"campushire/internal/delivery/http/handler"
	"campushire/internal/delivery/http/middleware"
	v1 "campushire/internal/delivery/http/routes/v1"
	"campushire/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health    *handler.HealthHandler
	Dashboard *ws.Handler
	V1        v1.Handlers
	AuthMw    *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)
	if r.Dashboard != nil {
		app.Get("/ws/dashboard", r.Dashboard.HandleDashboardWS)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.V1, r.AuthMw)
}
