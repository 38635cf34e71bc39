package job

import (
	"time"

	"campushire/internal/domain/listing"

	"github.com/google/uuid"
)

// ListingSchema declares the searchable, filterable and sortable fields
// of the jobs list screens. Search spans title, company, location and
// category; salary ranges overlap-match against [SalaryMin, SalaryMax].
func ListingSchema() listing.Schema[Job] {
	return listing.Schema[Job]{
		SearchFields: []func(Job) string{
			func(j Job) string { return j.Title },
			func(j Job) string { return j.CompanyName },
			func(j Job) string { return j.Location },
			func(j Job) string { return j.CategoryName },
		},
		EnumFields: map[string]func(Job) string{
			"jobType":  func(j Job) string { return string(j.JobType) },
			"location": func(j Job) string { return j.Location },
			"company":  func(j Job) string { return j.CompanyName },
			"category": func(j Job) string { return j.CategoryName },
		},
		BoolFields: map[string]func(Job) bool{
			"hasDeadline": func(j Job) bool { return j.ApplicationDeadline != nil },
		},
		RangeFields: map[string]func(Job) (float64, bool){
			"salary": func(j Job) (float64, bool) {
				if j.SalaryMax != nil {
					return float64(*j.SalaryMax), true
				}
				if j.SalaryMin != nil {
					return float64(*j.SalaryMin), true
				}
				return 0, false
			},
			"experience": func(j Job) (float64, bool) {
				return float64(j.ExperienceRequired), true
			},
		},
		SortFields: map[string]listing.SortField[Job]{
			"createdAt": {Kind: listing.SortTime, Time: func(j Job) (time.Time, bool) {
				return j.CreatedAt, !j.CreatedAt.IsZero()
			}},
			"deadline": {Kind: listing.SortTime, Time: func(j Job) (time.Time, bool) {
				if j.ApplicationDeadline == nil {
					return time.Time{}, false
				}
				return *j.ApplicationDeadline, true
			}},
			"title": {Kind: listing.SortString, String: func(j Job) string { return j.Title }},
			"companyName": {Kind: listing.SortName, String: func(j Job) string {
				return j.CompanyName
			}},
			"salary": {Kind: listing.SortNumber, Number: func(j Job) (float64, bool) {
				if j.SalaryMax == nil {
					return 0, false
				}
				return float64(*j.SalaryMax), true
			}},
			"applicationCount": {Kind: listing.SortNumber, Number: func(j Job) (float64, bool) {
				return float64(j.ApplicationCount), true
			}},
		},
		DefaultSort: "createdAt",
		CreatedAt:   func(j Job) time.Time { return j.CreatedAt },
		ID:          func(j Job) uuid.UUID { return j.ID },
	}
}

// SavedListingSchema serves the saved-jobs screen. It reuses the job
// schema's fields through the embedded Job, ordered by when the student
// saved the record rather than when the job was posted.
func SavedListingSchema() listing.Schema[SavedJob] {
	inner := ListingSchema()

	schema := listing.Schema[SavedJob]{
		EnumFields:  map[string]func(SavedJob) string{},
		BoolFields:  map[string]func(SavedJob) bool{},
		RangeFields: map[string]func(SavedJob) (float64, bool){},
		SortFields: map[string]listing.SortField[SavedJob]{
			"savedAt": {Kind: listing.SortTime, Time: func(s SavedJob) (time.Time, bool) {
				return s.CreatedAt, !s.CreatedAt.IsZero()
			}},
		},
		DefaultSort: "savedAt",
		CreatedAt:   func(s SavedJob) time.Time { return s.CreatedAt },
		ID:          func(s SavedJob) uuid.UUID { return s.JobID },
	}

	for _, get := range inner.SearchFields {
		schema.SearchFields = append(schema.SearchFields, func(s SavedJob) string { return get(s.Job) })
	}
	for key, get := range inner.EnumFields {
		schema.EnumFields[key] = func(s SavedJob) string { return get(s.Job) }
	}
	for key, get := range inner.BoolFields {
		schema.BoolFields[key] = func(s SavedJob) bool { return get(s.Job) }
	}
	for key, get := range inner.RangeFields {
		schema.RangeFields[key] = func(s SavedJob) (float64, bool) { return get(s.Job) }
	}

	return schema
}
