package v1

import (
	"context"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campushire/internal/delivery/http/handler"
	"campushire/internal/delivery/http/middleware"
	"campushire/internal/domain/actor"
	"campushire/internal/domain/application"
	"campushire/internal/domain/job"
	"campushire/internal/domain/stats"
	"campushire/internal/domain/user"
	"campushire/internal/pkg/jwt"
	"campushire/internal/repository"
	"campushire/internal/usecase"
	ucauth "campushire/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubJobList struct{}

func (stubJobList) ListJobs(context.Context, map[string]string) (usecase.JobListResult, error) {
	return usecase.JobListResult{}, nil
}
func (stubJobList) ListCompanyJobs(context.Context, uuid.UUID, map[string]string) (usecase.JobListResult, error) {
	return usecase.JobListResult{}, nil
}

type stubJobs struct{}

func (stubJobs) GetJob(_ context.Context, id uuid.UUID) (job.Job, error) {
	return job.Job{ID: id, Title: "Intern", JobType: job.TypeInternship}, nil
}
func (stubJobs) CreateJob(context.Context, actor.Actor, usecase.JobInput) (job.Job, error) {
	return job.Job{}, nil
}
func (stubJobs) UpdateJob(context.Context, actor.Actor, uuid.UUID, usecase.JobInput) (job.Job, error) {
	return job.Job{}, nil
}
func (stubJobs) DeleteJob(context.Context, actor.Actor, uuid.UUID) error { return nil }

type stubCandidateList struct{}

func (stubCandidateList) ListCandidates(context.Context, map[string]string) (usecase.CandidateListResult, error) {
	return usecase.CandidateListResult{}, nil
}

type stubApplicationList struct{}

func (stubApplicationList) ListApplications(context.Context, actor.Actor, map[string]string) (usecase.ApplicationListResult, error) {
	return usecase.ApplicationListResult{}, nil
}

type stubApplications struct{}

func (stubApplications) Apply(_ context.Context, by actor.Actor, jobID uuid.UUID, _ string) (application.Application, error) {
	return application.Application{
		ID:        uuid.New(),
		JobID:     jobID,
		StudentID: by.ID,
		Status:    application.StatusPending,
	}, nil
}
func (stubApplications) Transition(context.Context, actor.Actor, uuid.UUID, usecase.TransitionInput) (application.Application, error) {
	return application.Application{}, nil
}
func (stubApplications) UpdateNotes(context.Context, actor.Actor, uuid.UUID, string) (application.Application, error) {
	return application.Application{}, nil
}

type stubSavedJobs struct{}

func (stubSavedJobs) ListSavedJobs(context.Context, actor.Actor, map[string]string) (usecase.SavedJobListResult, error) {
	return usecase.SavedJobListResult{}, nil
}
func (stubSavedJobs) SaveJob(context.Context, actor.Actor, uuid.UUID) error   { return nil }
func (stubSavedJobs) UnsaveJob(context.Context, actor.Actor, uuid.UUID) error { return nil }

type stubStats struct{}

func (stubStats) Summary(context.Context, actor.Actor, time.Duration) (stats.Summary, error) {
	return stats.Summary{}, nil
}

type stubOptions struct{}

func (stubOptions) FilterOptions(context.Context) (repository.FilterOptions, error) {
	return repository.FilterOptions{}, nil
}

type stubAuth struct{}

func (stubAuth) Register(context.Context, ucauth.RegisterInput) (user.User, string, string, error) {
	return user.User{}, "", "", nil
}
func (stubAuth) Login(context.Context, ucauth.LoginInput) (user.User, string, string, error) {
	return user.User{}, "", "", nil
}
func (stubAuth) Refresh(context.Context, string) (string, string, error) { return "", "", nil }

func newTestApp(t *testing.T) (*fiber.App, jwt.Service) {
	t.Helper()

	jwtSvc := jwt.NewHMACService("test-access", "test-refresh", time.Hour, time.Hour)

	app := fiber.New()
	logger := log.New(io.Discard, "", 0)
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	Register(app.Group("/api/v1"), Handlers{
		Auth:         handler.NewAuthHandler(stubAuth{}),
		Jobs:         handler.NewJobsHandler(stubJobList{}, stubJobs{}),
		Candidates:   handler.NewCandidatesHandler(stubCandidateList{}),
		Applications: handler.NewApplicationsHandler(stubApplicationList{}, stubApplications{}),
		SavedJobs:    handler.NewSavedJobsHandler(stubSavedJobs{}),
		Stats:        handler.NewStatsHandler(stubStats{}),
		Meta:         handler.NewMetaHandler(stubOptions{}),
	}, middleware.NewAuthMiddleware(jwtSvc))

	return app, jwtSvc
}

func accessToken(t *testing.T, svc jwt.Service, role string) string {
	t.Helper()
	token, err := svc.GenerateAccessToken(uuid.New(), role)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token, body string) int {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRouting_PublicBrowseNeedsNoToken(t *testing.T) {
	app, _ := newTestApp(t)

	if got := doRequest(t, app, "GET", "/api/v1/jobs", "", ""); got != fiber.StatusOK {
		t.Fatalf("GET /jobs without token: got %d, want 200", got)
	}
	if got := doRequest(t, app, "GET", "/api/v1/jobs/"+uuid.NewString(), "", ""); got != fiber.StatusOK {
		t.Fatalf("GET /jobs/:id without token: got %d, want 200", got)
	}
	if got := doRequest(t, app, "GET", "/api/v1/meta/options", "", ""); got != fiber.StatusOK {
		t.Fatalf("GET /meta/options without token: got %d, want 200", got)
	}
}

func TestRouting_BrowseIsOpenToEveryRole(t *testing.T) {
	app, jwtSvc := newTestApp(t)

	for _, role := range []string{"student", "company"} {
		token := accessToken(t, jwtSvc, role)
		if got := doRequest(t, app, "GET", "/api/v1/jobs", token, ""); got != fiber.StatusOK {
			t.Fatalf("GET /jobs as %s: got %d, want 200", role, got)
		}
	}
}

func TestRouting_StudentCanApply(t *testing.T) {
	app, jwtSvc := newTestApp(t)
	token := accessToken(t, jwtSvc, "student")

	path := "/api/v1/jobs/" + uuid.NewString() + "/apply"
	if got := doRequest(t, app, "POST", path, token, `{"cover_letter":"hello"}`); got != fiber.StatusCreated {
		t.Fatalf("POST %s as student: got %d, want 201", path, got)
	}
}

func TestRouting_CompanyCannotApply(t *testing.T) {
	app, jwtSvc := newTestApp(t)
	token := accessToken(t, jwtSvc, "company")

	path := "/api/v1/jobs/" + uuid.NewString() + "/apply"
	if got := doRequest(t, app, "POST", path, token, `{"cover_letter":"hello"}`); got != fiber.StatusForbidden {
		t.Fatalf("POST %s as company: got %d, want 403", path, got)
	}
}

func TestRouting_CompanyJobRoutes(t *testing.T) {
	app, jwtSvc := newTestApp(t)

	if got := doRequest(t, app, "GET", "/api/v1/jobs/mine", accessToken(t, jwtSvc, "company"), ""); got != fiber.StatusOK {
		t.Fatalf("GET /jobs/mine as company: got %d, want 200", got)
	}
	if got := doRequest(t, app, "GET", "/api/v1/jobs/mine", accessToken(t, jwtSvc, "student"), ""); got != fiber.StatusForbidden {
		t.Fatalf("GET /jobs/mine as student: got %d, want 403", got)
	}
	if got := doRequest(t, app, "GET", "/api/v1/jobs/mine", "", ""); got != fiber.StatusUnauthorized {
		t.Fatalf("GET /jobs/mine without token: got %d, want 401", got)
	}
}

func TestRouting_ProtectedGroupsRequireTokenAndRole(t *testing.T) {
	app, jwtSvc := newTestApp(t)

	if got := doRequest(t, app, "GET", "/api/v1/applications", "", ""); got != fiber.StatusUnauthorized {
		t.Fatalf("GET /applications without token: got %d, want 401", got)
	}
	if got := doRequest(t, app, "GET", "/api/v1/candidates", accessToken(t, jwtSvc, "student"), ""); got != fiber.StatusForbidden {
		t.Fatalf("GET /candidates as student: got %d, want 403", got)
	}
	if got := doRequest(t, app, "GET", "/api/v1/saved-jobs", accessToken(t, jwtSvc, "company"), ""); got != fiber.StatusForbidden {
		t.Fatalf("GET /saved-jobs as company: got %d, want 403", got)
	}
}
