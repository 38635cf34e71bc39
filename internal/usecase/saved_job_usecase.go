package usecase

import (
	"context"
	"errors"

	"campushire/internal/domain/actor"
	"campushire/internal/domain/job"
	"campushire/internal/domain/listing"
	"campushire/internal/repository"

	"github.com/google/uuid"
)

type SavedJobListResult struct {
	Page          listing.Page[job.SavedJob]
	ActiveFilters int
}

type SavedJobUsecase interface {
	ListSavedJobs(ctx context.Context, by actor.Actor, raw map[string]string) (SavedJobListResult, error)
	SaveJob(ctx context.Context, by actor.Actor, jobID uuid.UUID) error
	UnsaveJob(ctx context.Context, by actor.Actor, jobID uuid.UUID) error
}

type SavedJobs struct {
	saved repository.SavedJobRepository
	jobs  repository.JobRepository
}

func NewSavedJobUsecase(saved repository.SavedJobRepository, jobs repository.JobRepository) *SavedJobs {
	return &SavedJobs{saved: saved, jobs: jobs}
}

func (u *SavedJobs) ListSavedJobs(ctx context.Context, by actor.Actor, raw map[string]string) (SavedJobListResult, error) {
	if by.Role != actor.RoleStudent {
		return SavedJobListResult{}, ErrForbidden
	}

	items, err := u.saved.ListByStudent(ctx, by.ID)
	if err != nil {
		return SavedJobListResult{}, ErrInternal
	}

	schema := job.SavedListingSchema()
	spec := listing.Normalize(schema, raw)

	page, err := listing.Query(items, schema, spec)
	if err != nil {
		return SavedJobListResult{}, err
	}
	return SavedJobListResult{Page: page, ActiveFilters: spec.ActiveFilterCount()}, nil
}

func (u *SavedJobs) SaveJob(ctx context.Context, by actor.Actor, jobID uuid.UUID) error {
	if by.Role != actor.RoleStudent {
		return ErrForbidden
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	if err := u.saved.Save(ctx, by.ID, jobID); err != nil {
		if errors.Is(err, repository.ErrAlreadySaved) {
			return err
		}
		return ErrInternal
	}
	return nil
}

func (u *SavedJobs) UnsaveJob(ctx context.Context, by actor.Actor, jobID uuid.UUID) error {
	if by.Role != actor.RoleStudent {
		return ErrForbidden
	}

	if err := u.saved.Unsave(ctx, by.ID, jobID); err != nil {
		if errors.Is(err, repository.ErrSavedJobNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}
