package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"campushire/internal/domain/job"
	"campushire/internal/domain/listing"

	"github.com/google/uuid"
)

type stubJobRepo struct {
	items []job.Job
	err   error
}

func (s stubJobRepo) ListJobs(context.Context) ([]job.Job, error) { return s.items, s.err }
func (s stubJobRepo) ListJobsByCompany(context.Context, uuid.UUID) ([]job.Job, error) {
	return s.items, s.err
}
func (s stubJobRepo) GetByID(context.Context, uuid.UUID) (job.Job, error) { return job.Job{}, nil }
func (s stubJobRepo) Create(context.Context, job.Job) error               { return nil }
func (s stubJobRepo) Update(context.Context, job.Job) error               { return nil }
func (s stubJobRepo) Delete(context.Context, uuid.UUID) error             { return nil }

func stubJobs(n int) []job.Job {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]job.Job, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, job.Job{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("Role %02d", i),
			CompanyName: "Acme",
			JobType:     job.TypeInternship,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestJobList_EmptyResultIsNotAnError(t *testing.T) {
	uc := NewJobListUsecase(stubJobRepo{})

	res, err := uc.ListJobs(context.Background(), map[string]string{"search": "nothing matches"})
	if err != nil {
		t.Fatalf("empty result must not error: %v", err)
	}
	if res.Page.TotalItems != 0 || res.Page.TotalPages != 0 || len(res.Page.Items) != 0 {
		t.Fatalf("unexpected page: %+v", res.Page)
	}
}

func TestJobList_InvalidSortKey(t *testing.T) {
	uc := NewJobListUsecase(stubJobRepo{items: stubJobs(3)})

	_, err := uc.ListJobs(context.Background(), map[string]string{"sortBy": "salaryness"})
	if !errors.Is(err, listing.ErrInvalidSortKey) {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
}

func TestJobList_RepositoryErrorIsInternal(t *testing.T) {
	uc := NewJobListUsecase(stubJobRepo{err: errors.New("boom")})

	_, err := uc.ListJobs(context.Background(), nil)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobList_ActiveFilterCountMatchesResults(t *testing.T) {
	items := stubJobs(5)
	items[0].JobType = job.TypeRemote
	uc := NewJobListUsecase(stubJobRepo{items: items})

	res, err := uc.ListJobs(context.Background(), map[string]string{"jobType": "REMOTE"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.ActiveFilters != 1 {
		t.Fatalf("expected 1 active filter, got %d", res.ActiveFilters)
	}
	if res.Page.TotalItems != 1 {
		t.Fatalf("expected 1 matching job, got %d", res.Page.TotalItems)
	}

	// zero active filters must return the unfiltered collection
	res, err = uc.ListJobs(context.Background(), map[string]string{"jobType": "ALL"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.ActiveFilters != 0 || res.Page.TotalItems != len(items) {
		t.Fatalf("sentinel should not filter: filters=%d total=%d", res.ActiveFilters, res.Page.TotalItems)
	}
}

func TestJobList_DefaultSortNewestFirst(t *testing.T) {
	items := stubJobs(3)
	uc := NewJobListUsecase(stubJobRepo{items: items})

	res, err := uc.ListJobs(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Page.Items[0].ID != items[2].ID {
		t.Fatalf("expected newest job first")
	}
}
