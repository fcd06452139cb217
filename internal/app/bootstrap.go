package app

import (
	"context"
	"fmt"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/database/migration"
	"career-compass/internal/database/seeder"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx := context.Background()

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	seed := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seed.Run(ctx, c.DB); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, c.Logger)

	registry := routes.NewRegistry(v1.Deps{
		Config:  cfg,
		DB:      c.DB,
		Catalog: c.Catalog,
		Cache:   c.Cache,
		Logger:  c.Logger,
		Hub:     c.Hub,
	})
	if err := registry.Register(f); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
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
