package handler

import (
	"campushire/internal/delivery/http/dto"
	"campushire/internal/pkg/response"
	"campushire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidatesHandler struct {
	list usecase.CandidateListUsecase
}

func NewCandidatesHandler(list usecase.CandidateListUsecase) *CandidatesHandler {
	return &CandidatesHandler{list: list}
}

func (h *CandidatesHandler) RegisterRoutes(r fiber.Router, mw ...fiber.Handler) {
	if r == nil {
		return
	}

	addRoute(r.Get, "/", h.ListCandidates, mw)
}

func (h *CandidatesHandler) ListCandidates(c fiber.Ctx) error {
	res, err := h.list.ListCandidates(c.Context(), c.Queries())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.NewListResponse(res.Page, res.ActiveFilters, dto.FromStudent))
}
