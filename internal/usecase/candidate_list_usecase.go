package usecase

import (
	"context"

	"campushire/internal/domain/listing"
	"campushire/internal/domain/student"
	"campushire/internal/repository"
)

type CandidateListResult struct {
	Page          listing.Page[student.Student]
	ActiveFilters int
}

type CandidateListUsecase interface {
	ListCandidates(ctx context.Context, raw map[string]string) (CandidateListResult, error)
}

type CandidateList struct {
	students repository.StudentRepository
}

func NewCandidateListUsecase(students repository.StudentRepository) *CandidateList {
	return &CandidateList{students: students}
}

func (u *CandidateList) ListCandidates(ctx context.Context, raw map[string]string) (CandidateListResult, error) {
	items, err := u.students.ListStudents(ctx)
	if err != nil {
		return CandidateListResult{}, ErrInternal
	}

	schema := student.ListingSchema()
	spec := listing.Normalize(schema, raw)

	page, err := listing.Query(items, schema, spec)
	if err != nil {
		return CandidateListResult{}, err
	}
	return CandidateListResult{Page: page, ActiveFilters: spec.ActiveFilterCount()}, nil
}
