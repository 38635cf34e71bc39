package student

import (
	"time"

	"campushire/internal/domain/listing"

	"github.com/google/uuid"
)

// ListingSchema declares the candidate list screen's fields. Search
// spans name, major and skill names; gpa, age and expected salary are
// range filters that fail when the value is absent.
func ListingSchema() listing.Schema[Student] {
	return listing.Schema[Student]{
		SearchFields: []func(Student) string{
			func(s Student) string { return s.Name },
			func(s Student) string { return s.Major },
			func(s Student) string { return s.SkillNames() },
		},
		EnumFields: map[string]func(Student) string{
			"university": func(s Student) string { return s.University },
			"major":      func(s Student) string { return s.Major },
		},
		BoolFields: map[string]func(Student) bool{
			"availability":  func(s Student) bool { return s.Availability },
			"hasExperience": func(s Student) bool { return s.HasExperience() },
		},
		RangeFields: map[string]func(Student) (float64, bool){
			"gpa": func(s Student) (float64, bool) {
				if s.GPA == nil {
					return 0, false
				}
				return *s.GPA, true
			},
			"age": func(s Student) (float64, bool) {
				if s.Age == nil {
					return 0, false
				}
				return float64(*s.Age), true
			},
			"salary": func(s Student) (float64, bool) {
				if s.ExpectedSalaryMin == nil {
					return 0, false
				}
				return float64(*s.ExpectedSalaryMin), true
			},
		},
		SortFields: map[string]listing.SortField[Student]{
			"name": {Kind: listing.SortName, String: func(s Student) string { return s.Name }},
			"gpa": {Kind: listing.SortNumber, Number: func(s Student) (float64, bool) {
				if s.GPA == nil {
					return 0, false
				}
				return *s.GPA, true
			}},
			"year": {Kind: listing.SortNumber, Number: func(s Student) (float64, bool) {
				return float64(s.Year), true
			}},
			"createdAt": {Kind: listing.SortTime, Time: func(s Student) (time.Time, bool) {
				return s.CreatedAt, !s.CreatedAt.IsZero()
			}},
		},
		DefaultSort: "createdAt",
		CreatedAt:   func(s Student) time.Time { return s.CreatedAt },
		ID:          func(s Student) uuid.UUID { return s.ID },
	}
}
