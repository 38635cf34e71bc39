package handler

import (
	"campushire/internal/delivery/http/dto"
	"campushire/internal/pkg/response"
	"campushire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SavedJobsHandler struct {
	saved usecase.SavedJobUsecase
}

func NewSavedJobsHandler(saved usecase.SavedJobUsecase) *SavedJobsHandler {
	return &SavedJobsHandler{saved: saved}
}

func (h *SavedJobsHandler) RegisterRoutes(r fiber.Router, mw ...fiber.Handler) {
	if r == nil {
		return
	}

	addRoute(r.Get, "/", h.ListSavedJobs, mw)
	addRoute(r.Post, "/:jobID", h.SaveJob, mw)
	addRoute(r.Delete, "/:jobID", h.UnsaveJob, mw)
}

func (h *SavedJobsHandler) ListSavedJobs(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}

	res, err := h.saved.ListSavedJobs(c.Context(), by, c.Queries())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.NewListResponse(res.Page, res.ActiveFilters, dto.FromSavedJob))
}

func (h *SavedJobsHandler) SaveJob(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "jobID")
	if err != nil {
		return err
	}

	if err := h.saved.SaveJob(c.Context(), by, jobID); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, nil)
}

func (h *SavedJobsHandler) UnsaveJob(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "jobID")
	if err != nil {
		return err
	}

	if err := h.saved.UnsaveJob(c.Context(), by, jobID); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
