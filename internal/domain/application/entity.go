package application

import (
	"time"

	"github.com/google/uuid"
)

// Application is a student's submission to a job. Exactly one exists per
// (JobID, StudentID) pair; it is never physically deleted — withdrawal is
// a status, not a removal.
type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	StudentID   uuid.UUID
	CompanyID   uuid.UUID
	Status      Status
	CoverLetter string
	Feedback    string

	AppliedAt     time.Time
	ViewedAt      *time.Time
	InterviewDate *time.Time
	RespondedAt   *time.Time
	WithdrawnAt   *time.Time

	// Denormalized for list screens; populated by the repository join.
	JobTitle    string
	CompanyName string
	StudentName string
}
