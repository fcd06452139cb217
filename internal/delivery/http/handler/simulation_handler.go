package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SimulationHandler struct {
	uc usecase.SimulationUsecase
}

type baselineRequest struct {
	CareerID string   `json:"career_id"`
	Skills   []string `json:"skills"`
}

type scenarioRequest struct {
	Type       string   `json:"type"`
	CareerID   string   `json:"career_id"`
	Skills     []string `json:"skills"`
	PauseWeeks int      `json:"pause_weeks"`
}

func NewSimulationHandler(uc usecase.SimulationUsecase) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

func (h *SimulationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/baseline", h.SetBaseline)
	r.Post("/scenarios", h.RunScenario)
	r.Get("/compare", h.Compare)
	r.Get("/", h.Session)
	r.Delete("/", h.Clear)
}

func (h *SimulationHandler) SetBaseline(c fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req baselineRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	baseline, err := h.uc.SetBaseline(c.Context(), userID, req.CareerID, req.Skills)
	if err != nil {
		return mapSimulationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewBaselineResponse(baseline))
}

func (h *SimulationHandler) RunScenario(c fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req scenarioRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.RunScenario(c.Context(), userID, usecase.ScenarioParams{
		Type:       req.Type,
		CareerID:   req.CareerID,
		Skills:     req.Skills,
		PauseWeeks: req.PauseWeeks,
	})
	if err != nil {
		return mapSimulationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewScenarioResultResponse(result))
}

func (h *SimulationHandler) Session(c fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	session, err := h.uc.Session(userID)
	if err != nil {
		return mapSimulationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSimulationSessionResponse(session))
}

func (h *SimulationHandler) Compare(c fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	entries, err := h.uc.CompareScenarios(userID)
	if err != nil {
		return mapSimulationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewScenarioComparisonListResponse(entries))
}

func (h *SimulationHandler) Clear(c fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	h.uc.Clear(userID)
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapSimulationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNoBaseline):
		return middleware.NewAppError(fiber.StatusNotFound, "No baseline set", nil, err)
	case errors.Is(err, usecase.ErrUnknownScenario):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown scenario type", nil, err)
	case errors.Is(err, usecase.ErrCareerNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career not found", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
