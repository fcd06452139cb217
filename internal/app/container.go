package app

import (
	"context"
	"time"

	"career-compass/internal/catalog"
	"career-compass/internal/config"
	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config  config.Config
	DB      database.DB
	Cache   *cache.Redis
	Catalog *catalog.Store
	Logger  *zap.Logger
	Hub     *ws.Hub
}

func NewContainer(cfg config.Config) (*Container, error) {
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	store, err := catalog.Load(cfg.Catalog.Dir)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:  cfg,
		DB:      db,
		Cache:   cache.NewRedis(log),
		Catalog: store,
		Logger:  log,
		Hub:     ws.NewHub(log),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
