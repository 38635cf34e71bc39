package application

import (
	"errors"
	"testing"
	"time"

	"campushire/internal/domain/actor"

	"github.com/google/uuid"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func pendingApp() Application {
	return Application{
		ID:        uuid.New(),
		JobID:     uuid.New(),
		StudentID: uuid.New(),
		CompanyID: uuid.New(),
		Status:    StatusPending,
		AppliedAt: now.Add(-48 * time.Hour),
	}
}

func reviewer(app Application) actor.Actor {
	return actor.Actor{ID: app.CompanyID, Role: actor.RoleCompany}
}

func applicant(app Application) actor.Actor {
	return actor.Actor{ID: app.StudentID, Role: actor.RoleStudent}
}

func TestTransition_TerminalStatesRejectEverything(t *testing.T) {
	for _, terminal := range []Status{StatusAccepted, StatusRejected, StatusWithdrawn} {
		app := pendingApp()
		app.Status = terminal
		for _, target := range AllStatuses {
			_, err := Transition(app, reviewer(app), target, TransitionPayload{}, now)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", terminal, target, err)
			}
		}
	}
}

func TestTransition_StudentMayOnlyWithdraw(t *testing.T) {
	app := pendingApp()

	_, err := Transition(app, applicant(app), StatusUnderReview, TransitionPayload{}, now)
	if !errors.Is(err, ErrUnauthorizedActor) {
		t.Fatalf("expected ErrUnauthorizedActor, got %v", err)
	}

	got, err := Transition(app, applicant(app), StatusWithdrawn, TransitionPayload{}, now)
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	if got.Status != StatusWithdrawn {
		t.Fatalf("expected WITHDRAWN, got %s", got.Status)
	}
	if got.WithdrawnAt == nil || !got.WithdrawnAt.Equal(now) {
		t.Fatalf("expected WithdrawnAt=%v, got %v", now, got.WithdrawnAt)
	}
	if got.RespondedAt != nil {
		t.Fatalf("student withdrawal must not stamp RespondedAt")
	}
}

func TestTransition_OtherStudentMayNotWithdraw(t *testing.T) {
	app := pendingApp()
	other := actor.Actor{ID: uuid.New(), Role: actor.RoleStudent}
	_, err := Transition(app, other, StatusWithdrawn, TransitionPayload{}, now)
	if !errors.Is(err, ErrUnauthorizedActor) {
		t.Fatalf("expected ErrUnauthorizedActor, got %v", err)
	}
}

func TestTransition_CompanyMayNotWithdraw(t *testing.T) {
	app := pendingApp()
	_, err := Transition(app, reviewer(app), StatusWithdrawn, TransitionPayload{}, now)
	if !errors.Is(err, ErrUnauthorizedActor) {
		t.Fatalf("expected ErrUnauthorizedActor, got %v", err)
	}
}

func TestTransition_InterviewRequiresFutureDate(t *testing.T) {
	app := pendingApp()

	_, err := Transition(app, reviewer(app), StatusInterviewScheduled, TransitionPayload{}, now)
	if !errors.Is(err, ErrMissingInterviewDate) {
		t.Fatalf("expected ErrMissingInterviewDate, got %v", err)
	}

	past := now.Add(-time.Hour)
	_, err = Transition(app, reviewer(app), StatusInterviewScheduled, TransitionPayload{InterviewDate: &past}, now)
	if !errors.Is(err, ErrInterviewInPast) {
		t.Fatalf("expected ErrInterviewInPast, got %v", err)
	}

	future := now.Add(72 * time.Hour)
	got, err := Transition(app, reviewer(app), StatusInterviewScheduled, TransitionPayload{InterviewDate: &future}, now)
	if err != nil {
		t.Fatalf("future date rejected: %v", err)
	}
	if got.InterviewDate == nil || !got.InterviewDate.Equal(future) {
		t.Fatalf("expected InterviewDate=%v, got %v", future, got.InterviewDate)
	}
}

func TestTransition_FirstMoveOffPendingStampsViewedAt(t *testing.T) {
	app := pendingApp()

	got, err := Transition(app, reviewer(app), StatusUnderReview, TransitionPayload{}, now)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ViewedAt == nil || !got.ViewedAt.Equal(now) {
		t.Fatalf("expected ViewedAt=%v, got %v", now, got.ViewedAt)
	}

	// a later transition must not overwrite the original view time
	later := now.Add(time.Hour)
	got2, err := Transition(got, reviewer(app), StatusRejected, TransitionPayload{}, later)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got2.ViewedAt.Equal(now) {
		t.Fatalf("ViewedAt overwritten: %v", got2.ViewedAt)
	}
	if got2.RespondedAt == nil || !got2.RespondedAt.Equal(later) {
		t.Fatalf("expected RespondedAt=%v, got %v", later, got2.RespondedAt)
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	app := pendingApp()
	_, err := Transition(app, reviewer(app), StatusUnderReview, TransitionPayload{Feedback: "strong resume"}, now)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if app.Status != StatusPending || app.ViewedAt != nil || app.Feedback != "" {
		t.Fatalf("input mutated: %+v", app)
	}
}

func TestTransition_FeedbackRidesAlong(t *testing.T) {
	app := pendingApp()
	got, err := Transition(app, reviewer(app), StatusRejected, TransitionPayload{Feedback: "position filled"}, now)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Feedback != "position filled" {
		t.Fatalf("feedback not attached: %q", got.Feedback)
	}
}

func TestParseStatus_ReviewedAlias(t *testing.T) {
	st, err := ParseStatus("REVIEWED")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if st != StatusUnderReview {
		t.Fatalf("expected UNDER_REVIEW, got %s", st)
	}

	if _, err := ParseStatus("OPEN"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestCanTransition_Table(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusUnderReview, true},
		{StatusPending, StatusInterviewScheduled, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusAccepted, false},
		{StatusUnderReview, StatusWithdrawn, true},
		{StatusInterviewScheduled, StatusWithdrawn, false},
		{StatusInterviewScheduled, StatusAccepted, true},
		{StatusAccepted, StatusRejected, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
