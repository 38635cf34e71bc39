package dto

import (
	"time"

	"campushire/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	StudentID   uuid.UUID `json:"student_id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Status      string    `json:"status"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Feedback    string    `json:"feedback,omitempty"`

	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	StudentName string `json:"student_name"`

	AppliedAt     time.Time  `json:"applied_at"`
	ViewedAt      *time.Time `json:"viewed_at"`
	InterviewDate *time.Time `json:"interview_date"`
	RespondedAt   *time.Time `json:"responded_at"`
	WithdrawnAt   *time.Time `json:"withdrawn_at"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		JobID:         a.JobID,
		StudentID:     a.StudentID,
		CompanyID:     a.CompanyID,
		Status:        string(a.Status),
		CoverLetter:   a.CoverLetter,
		Feedback:      a.Feedback,
		JobTitle:      a.JobTitle,
		CompanyName:   a.CompanyName,
		StudentName:   a.StudentName,
		AppliedAt:     a.AppliedAt,
		ViewedAt:      a.ViewedAt,
		InterviewDate: a.InterviewDate,
		RespondedAt:   a.RespondedAt,
		WithdrawnAt:   a.WithdrawnAt,
	}
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type TransitionRequest struct {
	Status        string     `json:"status"`
	InterviewDate *time.Time `json:"interview_date"`
	Feedback      string     `json:"feedback"`
}

type NotesRequest struct {
	Feedback string `json:"feedback"`
}
