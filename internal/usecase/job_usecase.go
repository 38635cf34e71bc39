package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"campushire/internal/domain/actor"
	"campushire/internal/domain/job"
	"campushire/internal/repository"

	"github.com/google/uuid"
)

type JobInput struct {
	Title               string
	Description         string
	Location            string
	JobType             string
	SalaryMin           *int
	SalaryMax           *int
	ExperienceRequired  int
	ApplicationDeadline *time.Time
	CategoryID          *uuid.UUID
}

type JobUsecase interface {
	GetJob(ctx context.Context, id uuid.UUID) (job.Job, error)
	CreateJob(ctx context.Context, by actor.Actor, in JobInput) (job.Job, error)
	UpdateJob(ctx context.Context, by actor.Actor, id uuid.UUID, in JobInput) (job.Job, error)
	DeleteJob(ctx context.Context, by actor.Actor, id uuid.UUID) error
}

type Jobs struct {
	jobs repository.JobRepository
	now  func() time.Time
}

func NewJobUsecase(jobs repository.JobRepository) *Jobs {
	return &Jobs{jobs: jobs, now: time.Now}
}

func (u *Jobs) GetJob(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) CreateJob(ctx context.Context, by actor.Actor, in JobInput) (job.Job, error) {
	if by.Role != actor.RoleCompany {
		return job.Job{}, ErrForbidden
	}

	j, err := buildJob(in)
	if err != nil {
		return job.Job{}, err
	}
	j.ID = uuid.New()
	j.CompanyID = by.ID
	j.CreatedAt = u.now().UTC()

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) UpdateJob(ctx context.Context, by actor.Actor, id uuid.UUID, in JobInput) (job.Job, error) {
	existing, err := u.ownedJob(ctx, by, id)
	if err != nil {
		return job.Job{}, err
	}

	j, err := buildJob(in)
	if err != nil {
		return job.Job{}, err
	}
	j.ID = existing.ID
	j.CompanyID = existing.CompanyID
	j.CreatedAt = existing.CreatedAt

	if err := u.jobs.Update(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) DeleteJob(ctx context.Context, by actor.Actor, id uuid.UUID) error {
	if _, err := u.ownedJob(ctx, by, id); err != nil {
		return err
	}
	if err := u.jobs.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Jobs) ownedJob(ctx context.Context, by actor.Actor, id uuid.UUID) (job.Job, error) {
	if by.Role != actor.RoleCompany {
		return job.Job{}, ErrForbidden
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.CompanyID != by.ID {
		return job.Job{}, ErrForbidden
	}
	return j, nil
}

func buildJob(in JobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Job{}, ErrInvalidInput
	}
	jobType, err := job.ParseType(in.JobType)
	if err != nil {
		return job.Job{}, ErrInvalidInput
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return job.Job{}, ErrInvalidInput
	}

	return job.Job{
		Title:               title,
		Description:         in.Description,
		Location:            strings.TrimSpace(in.Location),
		JobType:             jobType,
		SalaryMin:           in.SalaryMin,
		SalaryMax:           in.SalaryMax,
		ExperienceRequired:  in.ExperienceRequired,
		ApplicationDeadline: in.ApplicationDeadline,
		CategoryID:          in.CategoryID,
	}, nil
}
