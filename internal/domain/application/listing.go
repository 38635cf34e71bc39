package application

import (
	"time"

	"campushire/internal/domain/listing"

	"github.com/google/uuid"
)

// ListingSchema declares the application list screens' fields. The same
// schema serves the company review queue and the student "my
// applications" view; scoping happens at the repository.
func ListingSchema() listing.Schema[Application] {
	return listing.Schema[Application]{
		SearchFields: []func(Application) string{
			func(a Application) string { return a.JobTitle },
			func(a Application) string { return a.CompanyName },
			func(a Application) string { return a.StudentName },
		},
		EnumFields: map[string]func(Application) string{
			"status": func(a Application) string { return string(a.Status) },
		},
		BoolFields: map[string]func(Application) bool{
			"hasInterview": func(a Application) bool { return a.InterviewDate != nil },
		},
		RangeFields: map[string]func(Application) (float64, bool){},
		SortFields: map[string]listing.SortField[Application]{
			"appliedAt": {Kind: listing.SortTime, Time: func(a Application) (time.Time, bool) {
				return a.AppliedAt, !a.AppliedAt.IsZero()
			}},
			"interviewDate": {Kind: listing.SortTime, Time: func(a Application) (time.Time, bool) {
				if a.InterviewDate == nil {
					return time.Time{}, false
				}
				return *a.InterviewDate, true
			}},
			"studentName": {Kind: listing.SortName, String: func(a Application) string {
				return a.StudentName
			}},
			"jobTitle": {Kind: listing.SortString, String: func(a Application) string {
				return a.JobTitle
			}},
			"status": {Kind: listing.SortString, String: func(a Application) string {
				return string(a.Status)
			}},
		},
		DefaultSort: "appliedAt",
		CreatedAt:   func(a Application) time.Time { return a.AppliedAt },
		ID:          func(a Application) uuid.UUID { return a.ID },
	}
}
