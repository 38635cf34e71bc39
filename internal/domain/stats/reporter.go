// Package stats derives dashboard summaries from the same collections
// the listing engine reads, so list counts and summary counts can never
// drift apart.
package stats

import (
	"context"
	"math"
	"time"

	"campushire/internal/domain/application"
)

// Summary is the dashboard payload for one application collection.
type Summary struct {
	Total         int
	StatusCounts  map[application.Status]int
	ViewedPct     int
	RespondedPct  int
	CurrentPeriod int
	PrevPeriod    int
	GrowthPct     int
}

// BuildSummary computes all summary figures in one scan. Every status
// bucket is present even at zero. The scan checks ctx between records so
// large exports stay cancellable; the computation is read-only, so a
// cancelled run simply discards partial output.
func BuildSummary(ctx context.Context, apps []application.Application, periodStart time.Time, period time.Duration) (Summary, error) {
	counts := make(map[application.Status]int, len(application.AllStatuses))
	for _, s := range application.AllStatuses {
		counts[s] = 0
	}

	viewed := 0
	responded := 0
	current := 0
	previous := 0
	prevStart := periodStart.Add(-period)

	for i, a := range apps {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return Summary{}, err
			}
		}

		counts[a.Status]++
		if a.ViewedAt != nil {
			viewed++
		}
		if a.RespondedAt != nil {
			responded++
		}
		switch {
		case !a.AppliedAt.Before(periodStart):
			current++
		case !a.AppliedAt.Before(prevStart):
			previous++
		}
	}

	total := len(apps)
	return Summary{
		Total:         total,
		StatusCounts:  counts,
		ViewedPct:     Percentage(viewed, total),
		RespondedPct:  Percentage(responded, total),
		CurrentPeriod: current,
		PrevPeriod:    previous,
		GrowthPct:     Growth(current, previous),
	}, nil
}

// Percentage is part/total rounded to the nearest integer, 0 when total
// is 0.
func Percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Growth is the period-over-period rate in percent, defined as 0 when
// the previous period is empty rather than infinite.
func Growth(current, previous int) int {
	if previous == 0 {
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}
