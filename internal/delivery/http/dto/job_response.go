package dto

import (
	"time"

	"campushire/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID                  uuid.UUID  `json:"id"`
	CompanyID           uuid.UUID  `json:"company_id"`
	CompanyName         string     `json:"company_name"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty"`
	CategoryName        string     `json:"category_name,omitempty"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	JobType             string     `json:"job_type"`
	SalaryMin           *int       `json:"salary_min"`
	SalaryMax           *int       `json:"salary_max"`
	ExperienceRequired  int        `json:"experience_required"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	ApplicationCount    int        `json:"application_count"`
	CreatedAt           time.Time  `json:"created_at"`
}

func FromJob(j job.Job) JobResponse {
	return JobResponse{
		ID:                  j.ID,
		CompanyID:           j.CompanyID,
		CompanyName:         j.CompanyName,
		CategoryID:          j.CategoryID,
		CategoryName:        j.CategoryName,
		Title:               j.Title,
		Description:         j.Description,
		Location:            j.Location,
		JobType:             string(j.JobType),
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		ExperienceRequired:  j.ExperienceRequired,
		ApplicationDeadline: j.ApplicationDeadline,
		ApplicationCount:    j.ApplicationCount,
		CreatedAt:           j.CreatedAt,
	}
}

type SavedJobResponse struct {
	SavedAt time.Time   `json:"saved_at"`
	Job     JobResponse `json:"job"`
}

func FromSavedJob(s job.SavedJob) SavedJobResponse {
	return SavedJobResponse{SavedAt: s.CreatedAt, Job: FromJob(s.Job)}
}

type JobRequest struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	JobType             string     `json:"job_type"`
	SalaryMin           *int       `json:"salary_min"`
	SalaryMax           *int       `json:"salary_max"`
	ExperienceRequired  int        `json:"experience_required"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	CategoryID          *uuid.UUID `json:"category_id"`
}
