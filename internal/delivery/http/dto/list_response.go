package dto

import "campushire/internal/domain/listing"

// ListResponse is the envelope every list screen shares: the page plus
// the active-filter count for the filter badge.
type ListResponse[T any] struct {
	Items         []T `json:"items"`
	TotalItems    int `json:"total_items"`
	TotalPages    int `json:"total_pages"`
	CurrentPage   int `json:"current_page"`
	ActiveFilters int `json:"active_filters"`
}

func NewListResponse[D, T any](page listing.Page[D], activeFilters int, convert func(D) T) ListResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, convert(it))
	}
	return ListResponse[T]{
		Items:         items,
		TotalItems:    page.TotalItems,
		TotalPages:    page.TotalPages,
		CurrentPage:   page.CurrentPage,
		ActiveFilters: activeFilters,
	}
}
