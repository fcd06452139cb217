package handler

import (
	"context"
	"strings"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type fetchCompletedRequest struct {
	TaskID      string   `json:"task_id"`
	Source      string   `json:"source"`
	Skills      []string `json:"skills"`
	Inserted    int      `json:"inserted"`
	CompletedAt string   `json:"completed_at"`
}

type fetchCacheInvalidator interface {
	InvalidateSkillResources(ctx context.Context, skills []string) error
}

type FetchCompletedHandler struct {
	cfg    config.Config
	cache  fetchCacheInvalidator
	logger *zap.Logger
}

func NewFetchCompletedHandler(cfg config.Config, cache fetchCacheInvalidator, logger *zap.Logger) *FetchCompletedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FetchCompletedHandler{cfg: cfg, cache: cache, logger: logger}
}

func (h *FetchCompletedHandler) HandleFetchCompleted(c fiber.Ctx) error {
	tok := strings.TrimSpace(c.Get("X-Internal-Token"))
	if tok == "" || tok != h.cfg.Fetch.InternalToken {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req fetchCompletedRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	req.TaskID = strings.TrimSpace(req.TaskID)
	req.Source = strings.TrimSpace(req.Source)
	req.CompletedAt = strings.TrimSpace(req.CompletedAt)

	if req.TaskID == "" || req.Source == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	if req.CompletedAt != "" {
		if _, err := time.Parse(time.RFC3339, req.CompletedAt); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	h.logger.Info("fetch completed",
		zap.String("task", req.TaskID),
		zap.String("source", req.Source),
		zap.Int("inserted", req.Inserted),
		zap.Strings("skills", req.Skills))

	if h.cache != nil {
		if err := h.cache.InvalidateSkillResources(c.Context(), req.Skills); err != nil {
			h.logger.Warn("resource cache invalidation failed",
				zap.String("source", req.Source), zap.Error(err))
		}
	}

	ws.NotifyResourcesUpdated(req.Source, req.Skills, req.Inserted)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "cache_invalidated",
		"source": req.Source,
	})
}
