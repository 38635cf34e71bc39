package dto

import (
	"campushire/internal/domain/stats"
	"campushire/internal/repository"
)

type StatsResponse struct {
	Total         int            `json:"total"`
	StatusCounts  map[string]int `json:"status_counts"`
	ViewedPct     int            `json:"viewed_pct"`
	RespondedPct  int            `json:"responded_pct"`
	CurrentPeriod int            `json:"current_period"`
	PrevPeriod    int            `json:"prev_period"`
	GrowthPct     int            `json:"growth_pct"`
}

func FromSummary(s stats.Summary) StatsResponse {
	counts := make(map[string]int, len(s.StatusCounts))
	for status, n := range s.StatusCounts {
		counts[string(status)] = n
	}
	return StatsResponse{
		Total:         s.Total,
		StatusCounts:  counts,
		ViewedPct:     s.ViewedPct,
		RespondedPct:  s.RespondedPct,
		CurrentPeriod: s.CurrentPeriod,
		PrevPeriod:    s.PrevPeriod,
		GrowthPct:     s.GrowthPct,
	}
}

type FilterOptionsResponse struct {
	Universities []string `json:"universities"`
	Majors       []string `json:"majors"`
	Locations    []string `json:"locations"`
	Categories   []string `json:"categories"`
}

func FromFilterOptions(o repository.FilterOptions) FilterOptionsResponse {
	return FilterOptionsResponse{
		Universities: o.Universities,
		Majors:       o.Majors,
		Locations:    o.Locations,
		Categories:   o.Categories,
	}
}
