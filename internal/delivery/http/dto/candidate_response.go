package dto

import (
	"time"

	"campushire/internal/domain/student"

	"github.com/google/uuid"
)

type CandidateResponse struct {
	ID                uuid.UUID            `json:"id"`
	Name              string               `json:"name"`
	University        string               `json:"university"`
	Major             string               `json:"major"`
	Year              int                  `json:"year"`
	GPA               *float64             `json:"gpa"`
	Age               *int                 `json:"age"`
	Availability      bool                 `json:"availability"`
	ExpectedSalaryMin *int                 `json:"expected_salary_min"`
	ExpectedSalaryMax *int                 `json:"expected_salary_max"`
	Skills            []SkillResponse      `json:"skills"`
	Experiences       []ExperienceResponse `json:"experiences"`
	Links             []LinkResponse       `json:"links"`
	CreatedAt         time.Time            `json:"created_at"`
}

type SkillResponse struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	YearsOfExp int    `json:"years_of_exp"`
}

type ExperienceResponse struct {
	Title     string     `json:"title"`
	Company   string     `json:"company"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	IsCurrent bool       `json:"is_current"`
}

type LinkResponse struct {
	Type  string `json:"type"`
	URL   string `json:"url"`
	Label string `json:"label"`
}

func FromStudent(s student.Student) CandidateResponse {
	skills := make([]SkillResponse, 0, len(s.Skills))
	for _, sk := range s.Skills {
		skills = append(skills, SkillResponse{Name: sk.Name, Level: sk.Level, YearsOfExp: sk.YearsOfExp})
	}
	experiences := make([]ExperienceResponse, 0, len(s.Experiences))
	for _, ex := range s.Experiences {
		experiences = append(experiences, ExperienceResponse{
			Title:     ex.Title,
			Company:   ex.Company,
			StartDate: ex.StartDate,
			EndDate:   ex.EndDate,
			IsCurrent: ex.IsCurrent,
		})
	}
	links := make([]LinkResponse, 0, len(s.Links))
	for _, l := range s.Links {
		links = append(links, LinkResponse{Type: l.Type, URL: l.URL, Label: l.Label})
	}

	return CandidateResponse{
		ID:                s.ID,
		Name:              s.Name,
		University:        s.University,
		Major:             s.Major,
		Year:              s.Year,
		GPA:               s.GPA,
		Age:               s.Age,
		Availability:      s.Availability,
		ExpectedSalaryMin: s.ExpectedSalaryMin,
		ExpectedSalaryMax: s.ExpectedSalaryMax,
		Skills:            skills,
		Experiences:       experiences,
		Links:             links,
		CreatedAt:         s.CreatedAt,
	}
}
