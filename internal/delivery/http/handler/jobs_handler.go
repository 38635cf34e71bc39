package handler

import (
	"campushire/internal/delivery/http/dto"
	"campushire/internal/delivery/http/middleware"
	"campushire/internal/pkg/response"
	"campushire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	list usecase.JobListUsecase
	jobs usecase.JobUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, jobs usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{list: list, jobs: jobs}
}

// RegisterPublicRoutes mounts the browse surface; no token required.
func (h *JobsHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListJobs)
	r.Get("/:id", h.GetJob)
}

// RegisterCompanyRoutes mounts the posting surface. The auth and role
// guards arrive as per-route middleware so they gate exactly these
// routes and nothing else sharing the prefix.
func (h *JobsHandler) RegisterCompanyRoutes(r fiber.Router, mw ...fiber.Handler) {
	if r == nil {
		return
	}

	addRoute(r.Get, "/mine", h.ListOwnJobs, mw)
	addRoute(r.Post, "/", h.CreateJob, mw)
	addRoute(r.Put, "/:id", h.UpdateJob, mw)
	addRoute(r.Delete, "/:id", h.DeleteJob, mw)
}

func (h *JobsHandler) ListJobs(c fiber.Ctx) error {
	res, err := h.list.ListJobs(c.Context(), c.Queries())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.NewListResponse(res.Page, res.ActiveFilters, dto.FromJob))
}

func (h *JobsHandler) ListOwnJobs(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}

	res, err := h.list.ListCompanyJobs(c.Context(), by.ID, c.Queries())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.NewListResponse(res.Page, res.ActiveFilters, dto.FromJob))
}

func (h *JobsHandler) GetJob(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	j, err := h.jobs.GetJob(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func (h *JobsHandler) CreateJob(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.CreateJob(c.Context(), by, jobInputFromRequest(req))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromJob(j))
}

func (h *JobsHandler) UpdateJob(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.UpdateJob(c.Context(), by, id, jobInputFromRequest(req))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func (h *JobsHandler) DeleteJob(c fiber.Ctx) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.jobs.DeleteJob(c.Context(), by, id); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func jobInputFromRequest(req dto.JobRequest) usecase.JobInput {
	return usecase.JobInput{
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		JobType:             req.JobType,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		ExperienceRequired:  req.ExperienceRequired,
		ApplicationDeadline: req.ApplicationDeadline,
		CategoryID:          req.CategoryID,
	}
}
