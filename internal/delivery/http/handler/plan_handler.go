package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PlanHandler struct {
	uc usecase.PlanUsecase
}

func NewPlanHandler(uc usecase.PlanUsecase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

func (h *PlanHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/daily", h.Daily)
}

func (h *PlanHandler) Daily(c fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	result, err := h.uc.DailyPlan(c.Context(), userID)
	if err != nil {
		return mapPlanUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDailyPlanResponse(result))
}

func mapPlanUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrNoTargetCareer):
		return middleware.NewAppError(fiber.StatusBadRequest, "No target career selected", nil, err)
	case errors.Is(err, usecase.ErrCareerNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
