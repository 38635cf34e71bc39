package v1

import (
	"campushire/internal/delivery/http/handler"
	"campushire/internal/delivery/http/middleware"
	"campushire/internal/domain/actor"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Jobs         *handler.JobsHandler
	Candidates   *handler.CandidatesHandler
	Applications *handler.ApplicationsHandler
	SavedJobs    *handler.SavedJobsHandler
	Stats        *handler.StatsHandler
	Meta         *handler.MetaHandler
}

// Register mounts the v1 API. Auth and role guards are attached per
// route, never as group middleware: fiber group middleware matches by
// path prefix, so a guard on a shared prefix like /jobs would also gate
// the public browse routes and the other role's routes under it. Within
// /jobs the literal /mine route is registered before the /:id wildcard
// so it wins the match.
func Register(r fiber.Router, h Handlers, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	auth := authMw.Middleware()
	companyOnly := middleware.RequireRole(actor.RoleCompany)
	studentOnly := middleware.RequireRole(actor.RoleStudent)

	h.Auth.RegisterRoutes(r.Group("/auth"))

	jobs := r.Group("/jobs")
	h.Jobs.RegisterCompanyRoutes(jobs, auth, companyOnly)
	h.Applications.RegisterApplyRoute(jobs, auth, studentOnly)
	h.Jobs.RegisterPublicRoutes(jobs)

	h.Meta.RegisterRoutes(r.Group("/meta"))

	h.Candidates.RegisterRoutes(r.Group("/candidates"), auth, companyOnly)
	h.Applications.RegisterRoutes(r.Group("/applications"), auth)
	h.SavedJobs.RegisterRoutes(r.Group("/saved-jobs"), auth, studentOnly)
	h.Stats.RegisterRoutes(r.Group("/stats"), auth)
}
