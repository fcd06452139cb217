package routes

import (
	"career-compass/internal/delivery/http/handler"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	deps   v1.Deps
}

func NewRegistry(deps v1.Deps) *Registry {
	return &Registry{health: handler.NewHealthHandler(), deps: deps}
}

func (r *Registry) Register(app *fiber.App) error {
	if app == nil {
		return nil
	}

	r.registerHealth(app)
	r.registerWS(app)
	return r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.deps.Hub == nil {
		return
	}
	wsHandler := ws.NewHandler(r.deps.Hub, r.deps.Logger)
	app.Get("/ws", wsHandler.HandleResourcesWS)
}

func (r *Registry) registerAPI(app *fiber.App) error {
	api := app.Group("/api")
	return RegisterV1(api.Group("/v1"), r.deps)
}
