package handler

import (
	"errors"
	"strconv"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	recommend usecase.RecommendationUsecase
	gap       usecase.GapAnalysisUsecase
}

type recommendRequest struct {
	Skills    []string `json:"skills"`
	Interests string   `json:"interests"`
	TopN      int      `json:"top_n"`
}

type gapRequest struct {
	Skills []string `json:"skills"`
}

type compareCareersRequest struct {
	Skills    []string `json:"skills"`
	CareerIDs []string `json:"career_ids"`
}

func NewCareerHandler(recommend usecase.RecommendationUsecase, gap usecase.GapAnalysisUsecase) *CareerHandler {
	return &CareerHandler{recommend: recommend, gap: gap}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/recommend", h.Recommend)
	r.Post("/compare", h.Compare)
	r.Get("/", h.List)
	r.Get("/:id", h.Details)
	r.Get("/:id/similar", h.Similar)
	r.Post("/:id/gap", h.Gap)
}

func (h *CareerHandler) Recommend(c fiber.Ctx) error {
	var req recommendRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	matches, err := h.recommend.MatchCareers(c.Context(), usecase.RecommendParams{
		Skills:    req.Skills,
		Interests: req.Interests,
		TopN:      req.TopN,
	})
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCareerMatchListResponse(matches))
}

func (h *CareerHandler) List(c fiber.Ctx) error {
	category := c.Query("category")
	careers := h.recommend.ListCareers(category)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCareerListResponse(careers))
}

func (h *CareerHandler) Details(c fiber.Ctx) error {
	career, err := h.recommend.CareerDetails(c.Params("id"))
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCareerResponse(career))
}

func (h *CareerHandler) Similar(c fiber.Ctx) error {
	topN := 0
	if raw := c.Query("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		topN = n
	}

	similar, err := h.recommend.SimilarCareers(c.Params("id"), topN)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSimilarCareerListResponse(similar))
}

func (h *CareerHandler) Gap(c fiber.Ctx) error {
	var req gapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	report, err := h.gap.AnalyzeGap(c.Context(), c.Params("id"), req.Skills)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGapReportResponse(report))
}

func (h *CareerHandler) Compare(c fiber.Ctx) error {
	var req compareCareersRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ranked, err := h.gap.CompareCareers(c.Context(), req.Skills, req.CareerIDs)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRankedScoreListResponse(ranked))
}

func mapCareerUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCareerNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
