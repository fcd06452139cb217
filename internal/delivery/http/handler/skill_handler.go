package handler

import (
	"errors"
	"net/url"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	resources  usecase.ResourceUsecase
	extraction usecase.ExtractionUsecase
}

type extractRequest struct {
	Text  string   `json:"text"`
	Items []string `json:"items"`
}

func NewSkillHandler(resources usecase.ResourceUsecase, extraction usecase.ExtractionUsecase) *SkillHandler {
	return &SkillHandler{resources: resources, extraction: extraction}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/extract", h.Extract)
	r.Get("/", h.List)
	r.Get("/:name", h.Details)
	r.Get("/:name/resources", h.Resources)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	skills := h.resources.ListSkills()
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillListResponse(skills))
}

func (h *SkillHandler) Details(c fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skill, err := h.resources.SkillDetails(name)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(skill))
}

func (h *SkillHandler) Resources(c fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.resources.ResourcesForSkill(c.Context(), name)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResourceListResponse(items))
}

func (h *SkillHandler) Extract(c fiber.Ctx) error {
	var req extractRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var result usecase.ExtractionResult
	if len(req.Items) > 0 {
		result = h.extraction.FromList(req.Items)
	} else {
		result = h.extraction.FromText(req.Text)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewExtractionResponse(result))
}

func mapSkillUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
