package application

import (
	"errors"
	"time"

	"campushire/internal/domain/actor"
)

var (
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrUnauthorizedActor    = errors.New("actor may not perform this transition")
	ErrMissingInterviewDate = errors.New("interview date is required")
	ErrInterviewInPast      = errors.New("interview date must be in the future")
)

// TransitionPayload carries the optional extras of a transition request.
type TransitionPayload struct {
	InterviewDate *time.Time
	Feedback      string
}

// Transition validates a status change and returns the mutated copy of
// app. It is pure: the caller persists the result, and serializes
// concurrent writers with an expected-current-status precondition.
//
// Rules:
//   - the target must be reachable from app.Status in the transition table;
//   - students may only withdraw, companies may trigger everything else;
//   - INTERVIEW_SCHEDULED requires a strictly future interview date;
//   - the first move off PENDING stamps ViewedAt, terminal states stamp
//     their own timestamp, and company-triggered terminal states stamp
//     RespondedAt — all on the returned copy, never on the input.
func Transition(app Application, by actor.Actor, target Status, payload TransitionPayload, now time.Time) (Application, error) {
	if !CanTransition(app.Status, target) {
		return Application{}, ErrInvalidTransition
	}

	switch by.Role {
	case actor.RoleStudent:
		if target != StatusWithdrawn || by.ID != app.StudentID {
			return Application{}, ErrUnauthorizedActor
		}
	case actor.RoleCompany:
		if target == StatusWithdrawn || by.ID != app.CompanyID {
			return Application{}, ErrUnauthorizedActor
		}
	default:
		return Application{}, ErrUnauthorizedActor
	}

	if target == StatusInterviewScheduled {
		if payload.InterviewDate == nil {
			return Application{}, ErrMissingInterviewDate
		}
		if !payload.InterviewDate.After(now) {
			return Application{}, ErrInterviewInPast
		}
	}

	next := app
	next.Status = target

	if app.Status == StatusPending && next.ViewedAt == nil {
		t := now
		next.ViewedAt = &t
	}

	switch target {
	case StatusInterviewScheduled:
		d := *payload.InterviewDate
		next.InterviewDate = &d
	case StatusWithdrawn:
		t := now
		next.WithdrawnAt = &t
	case StatusAccepted, StatusRejected:
		if next.RespondedAt == nil {
			t := now
			next.RespondedAt = &t
		}
	}

	if payload.Feedback != "" {
		next.Feedback = payload.Feedback
	}

	return next, nil
}

// CanEdit reports whether the actor may attach notes to the application
// outside of a transition. Reviewers of the owning company and the
// applicant both hold edit rights.
func CanEdit(app Application, by actor.Actor) bool {
	switch by.Role {
	case actor.RoleCompany:
		return by.ID == app.CompanyID
	case actor.RoleStudent:
		return by.ID == app.StudentID
	}
	return false
}
