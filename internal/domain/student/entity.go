package student

import (
	"time"

	"github.com/google/uuid"
)

// Student is a candidate profile. Its ID doubles as the owning user's
// id, so authorization compares actor and student ids directly.
type Student struct {
	ID                uuid.UUID
	Name              string
	University        string
	Major             string
	Year              int
	GPA               *float64
	Age               *int
	Availability      bool
	ExpectedSalaryMin *int
	ExpectedSalaryMax *int

	Skills      []Skill
	Experiences []Experience
	Links       []Link

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Skill struct {
	Name       string
	Level      int
	YearsOfExp int
}

type Experience struct {
	Title     string
	Company   string
	StartDate time.Time
	EndDate   *time.Time
	IsCurrent bool
}

type Link struct {
	Type  string
	URL   string
	Label string
}

// HasExperience reports whether the profile lists any work experience.
func (s Student) HasExperience() bool {
	return len(s.Experiences) > 0
}

// SkillNames flattens the skill list for search matching.
func (s Student) SkillNames() string {
	out := ""
	for i, sk := range s.Skills {
		if i > 0 {
			out += " "
		}
		out += sk.Name
	}
	return out
}
