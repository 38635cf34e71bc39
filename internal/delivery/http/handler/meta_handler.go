package handler

import (
	"campushire/internal/delivery/http/dto"
	"campushire/internal/pkg/response"
	"campushire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MetaHandler struct {
	options usecase.OptionsUsecase
}

func NewMetaHandler(options usecase.OptionsUsecase) *MetaHandler {
	return &MetaHandler{options: options}
}

func (h *MetaHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/options", h.FilterOptions)
}

func (h *MetaHandler) FilterOptions(c fiber.Ctx) error {
	opts, err := h.options.FilterOptions(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromFilterOptions(opts))
}
