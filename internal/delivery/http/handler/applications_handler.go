package handler

import (
	"campushire/internal/delivery/http/dto"
	"campushire/internal/delivery/http/middleware"
	"campushire/internal/domain/application"
	"campushire/internal/pkg/response"
	"campushire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationsHandler struct {
	list usecase.ApplicationListUsecase
	apps usecase.ApplicationUsecase
}

func NewApplicationsHandler(list usecase.ApplicationListUsecase, apps usecase.ApplicationUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{list: list, apps: apps}
}

func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router, mw ...fiber.Handler) {
	if r == nil {
		return
	}

	addRoute(r.Get, "/", h.ListApplications, mw)
	addRoute(r.Patch, "/:id/status", h.TransitionStatus, mw)
	addRoute(r.Patch, "/:id/notes", h.UpdateNotes, mw)
}

// RegisterApplyRoute mounts the submit endpoint under the jobs group, so
// the path reads POST /jobs/:id/apply. Guards are per-route for the same
// reason as on the company routes.
func (h *ApplicationsHandler) RegisterApplyRoute(r fiber.Router, mw ...fiber.Handler) {
	if r == nil {
		return
	}

	addRoute(r.Post, "/:id/apply", h.Apply, mw)
}

func (h *ApplicationsHandler) ListApplications(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}

	res, err := h.list.ListApplications(c.Context(), by, c.Queries())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.NewListResponse(res.Page, res.ActiveFilters, dto.FromApplication))
}

func (h *ApplicationsHandler) Apply(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.apps.Apply(c.Context(), by, jobID, req.CoverLetter)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromApplication(a))
}

func (h *ApplicationsHandler) TransitionStatus(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.TransitionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	target, err := application.ParseStatus(req.Status)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown status", nil, err)
	}

	a, err := h.apps.Transition(c.Context(), by, id, usecase.TransitionInput{
		Target:        target,
		InterviewDate: req.InterviewDate,
		Feedback:      req.Feedback,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplication(a))
}

func (h *ApplicationsHandler) UpdateNotes(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.NotesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.apps.UpdateNotes(c.Context(), by, id, req.Feedback)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplication(a))
}
