package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"campushire/internal/domain/application"

	"github.com/google/uuid"
)

var now = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

func app(status application.Status, appliedAt time.Time, viewed, responded bool) application.Application {
	a := application.Application{
		ID:        uuid.New(),
		Status:    status,
		AppliedAt: appliedAt,
	}
	if viewed {
		t := appliedAt.Add(time.Hour)
		a.ViewedAt = &t
	}
	if responded {
		t := appliedAt.Add(2 * time.Hour)
		a.RespondedAt = &t
	}
	return a
}

func TestBuildSummary_EmptyCollection(t *testing.T) {
	sum, err := BuildSummary(context.Background(), nil, now, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.Total != 0 || sum.ViewedPct != 0 || sum.RespondedPct != 0 || sum.GrowthPct != 0 {
		t.Fatalf("expected all zeros, got %+v", sum)
	}
	if len(sum.StatusCounts) != len(application.AllStatuses) {
		t.Fatalf("expected every status bucket present, got %d", len(sum.StatusCounts))
	}
	for s, n := range sum.StatusCounts {
		if n != 0 {
			t.Fatalf("bucket %s should be 0, got %d", s, n)
		}
	}
}

func TestBuildSummary_CountsAndPercentages(t *testing.T) {
	period := 30 * 24 * time.Hour
	inPeriod := now.Add(24 * time.Hour)
	inPrev := now.Add(-24 * time.Hour)

	apps := []application.Application{
		app(application.StatusPending, inPeriod, false, false),
		app(application.StatusUnderReview, inPeriod, true, false),
		app(application.StatusRejected, inPrev, true, true),
	}

	sum, err := BuildSummary(context.Background(), apps, now, period)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.Total != 3 {
		t.Fatalf("expected total 3, got %d", sum.Total)
	}
	if sum.StatusCounts[application.StatusPending] != 1 || sum.StatusCounts[application.StatusRejected] != 1 {
		t.Fatalf("unexpected buckets: %v", sum.StatusCounts)
	}
	if sum.StatusCounts[application.StatusAccepted] != 0 {
		t.Fatalf("empty bucket missing or non-zero")
	}
	if sum.ViewedPct != 67 {
		t.Fatalf("expected viewed 67, got %d", sum.ViewedPct)
	}
	if sum.RespondedPct != 33 {
		t.Fatalf("expected responded 33, got %d", sum.RespondedPct)
	}
	if sum.CurrentPeriod != 2 || sum.PrevPeriod != 1 || sum.GrowthPct != 100 {
		t.Fatalf("unexpected growth figures: %+v", sum)
	}
}

func TestBuildSummary_Cancellation(t *testing.T) {
	apps := make([]application.Application, 3000)
	for i := range apps {
		apps[i] = app(application.StatusPending, now, false, false)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildSummary(ctx, apps, now, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct{ part, total, want int }{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
	}
	for _, c := range cases {
		if got := Percentage(c.part, c.total); got != c.want {
			t.Fatalf("Percentage(%d, %d) = %d, want %d", c.part, c.total, got, c.want)
		}
	}
}

func TestGrowth(t *testing.T) {
	if got := Growth(10, 0); got != 0 {
		t.Fatalf("previous=0 must yield 0, got %d", got)
	}
	if got := Growth(15, 10); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := Growth(5, 10); got != -50 {
		t.Fatalf("expected -50, got %d", got)
	}
}
