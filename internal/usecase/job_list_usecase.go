package usecase

import (
	"context"

	"campushire/internal/domain/job"
	"campushire/internal/domain/listing"
	"campushire/internal/repository"

	"github.com/google/uuid"
)

// JobListResult is a page of jobs plus the active-filter count derived
// from the same normalized spec, so the badge and the results always
// agree.
type JobListResult struct {
	Page          listing.Page[job.Job]
	ActiveFilters int
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, raw map[string]string) (JobListResult, error)
	ListCompanyJobs(ctx context.Context, companyID uuid.UUID, raw map[string]string) (JobListResult, error)
}

type JobList struct {
	jobs repository.JobRepository
}

func NewJobListUsecase(jobs repository.JobRepository) *JobList {
	return &JobList{jobs: jobs}
}

func (u *JobList) ListJobs(ctx context.Context, raw map[string]string) (JobListResult, error) {
	items, err := u.jobs.ListJobs(ctx)
	if err != nil {
		return JobListResult{}, ErrInternal
	}
	return queryJobs(items, raw)
}

func (u *JobList) ListCompanyJobs(ctx context.Context, companyID uuid.UUID, raw map[string]string) (JobListResult, error) {
	items, err := u.jobs.ListJobsByCompany(ctx, companyID)
	if err != nil {
		return JobListResult{}, ErrInternal
	}
	return queryJobs(items, raw)
}

func queryJobs(items []job.Job, raw map[string]string) (JobListResult, error) {
	schema := job.ListingSchema()
	spec := listing.Normalize(schema, raw)

	page, err := listing.Query(items, schema, spec)
	if err != nil {
		return JobListResult{}, err
	}
	return JobListResult{Page: page, ActiveFilters: spec.ActiveFilterCount()}, nil
}
