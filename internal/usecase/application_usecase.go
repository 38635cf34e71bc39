package usecase

import (
	"context"
	"errors"
	"time"

	"campushire/internal/domain/actor"
	"campushire/internal/domain/application"
	"campushire/internal/repository"

	"github.com/google/uuid"
)

type TransitionInput struct {
	Target        application.Status
	InterviewDate *time.Time
	Feedback      string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, by actor.Actor, jobID uuid.UUID, coverLetter string) (application.Application, error)
	Transition(ctx context.Context, by actor.Actor, applicationID uuid.UUID, in TransitionInput) (application.Application, error)
	UpdateNotes(ctx context.Context, by actor.Actor, applicationID uuid.UUID, feedback string) (application.Application, error)
}

type statusNotifier interface {
	NotifyApplicationStatus(id, jobID uuid.UUID, status application.Status)
}

type Applications struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	notifier     statusNotifier
	now          func() time.Time
}

func NewApplicationUsecase(applications repository.ApplicationRepository, jobs repository.JobRepository, notifier statusNotifier) *Applications {
	return &Applications{
		applications: applications,
		jobs:         jobs,
		notifier:     notifier,
		now:          time.Now,
	}
}

// Apply creates the PENDING application. The unique (job, student)
// constraint backs the one-application-per-pair invariant; a race
// between two submits surfaces as ErrDuplicateApplication from the
// repository.
func (u *Applications) Apply(ctx context.Context, by actor.Actor, jobID uuid.UUID, coverLetter string) (application.Application, error) {
	if by.Role != actor.RoleStudent {
		return application.Application{}, ErrForbidden
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	now := u.now().UTC()
	if j.ApplicationDeadline != nil && now.After(*j.ApplicationDeadline) {
		return application.Application{}, ErrInvalidInput
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       j.ID,
		StudentID:   by.ID,
		CompanyID:   j.CompanyID,
		Status:      application.StatusPending,
		CoverLetter: coverLetter,
		AppliedAt:   now,
	}

	if err := u.applications.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return application.Application{}, err
		}
		return application.Application{}, ErrInternal
	}
	return a, nil
}

// Transition runs the state machine against a fresh read and persists
// the result under an expected-current-status precondition. A concurrent
// writer that commits first invalidates the precondition and this
// attempt fails with ErrStaleTransition; nothing is partially written.
func (u *Applications) Transition(ctx context.Context, by actor.Actor, applicationID uuid.UUID, in TransitionInput) (application.Application, error) {
	current, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	next, err := application.Transition(current, by, in.Target, application.TransitionPayload{
		InterviewDate: in.InterviewDate,
		Feedback:      in.Feedback,
	}, u.now().UTC())
	if err != nil {
		return application.Application{}, err
	}

	ok, err := u.applications.UpdateStatusIfCurrent(ctx, next, current.Status)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if !ok {
		return application.Application{}, ErrStaleTransition
	}

	if u.notifier != nil {
		u.notifier.NotifyApplicationStatus(next.ID, next.JobID, next.Status)
	}
	return next, nil
}

// UpdateNotes attaches feedback without a status change. It bypasses
// transition validation but still requires the application to exist and
// the actor to hold edit rights.
func (u *Applications) UpdateNotes(ctx context.Context, by actor.Actor, applicationID uuid.UUID, feedback string) (application.Application, error) {
	current, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	if !application.CanEdit(current, by) {
		return application.Application{}, ErrForbidden
	}

	if err := u.applications.UpdateFeedback(ctx, applicationID, feedback); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	current.Feedback = feedback
	return current, nil
}
