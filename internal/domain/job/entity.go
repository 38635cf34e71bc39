package job

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypePartTime   Type = "PART_TIME"
	TypeContract   Type = "CONTRACT"
	TypeInternship Type = "INTERNSHIP"
	TypeFreelance  Type = "FREELANCE"
	TypeRemote     Type = "REMOTE"
)

func ParseType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypePartTime, TypeContract, TypeInternship, TypeFreelance, TypeRemote:
		return t, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

type Job struct {
	ID                  uuid.UUID
	CompanyID           uuid.UUID
	CategoryID          *uuid.UUID
	Title               string
	Description         string
	Location            string
	JobType             Type
	SalaryMin           *int
	SalaryMax           *int
	ExperienceRequired  int
	ApplicationDeadline *time.Time
	CreatedAt           time.Time

	// Denormalized for list screens; populated by the repository join.
	CompanyName      string
	CategoryName     string
	ApplicationCount int
}

type Category struct {
	ID   uuid.UUID
	Name string
}

// SavedJob is a plain join record; students create and delete it
// directly, there is no lifecycle.
type SavedJob struct {
	StudentID uuid.UUID
	JobID     uuid.UUID
	CreatedAt time.Time

	Job Job
}
