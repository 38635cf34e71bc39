package listing

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Schema declares which fields of an entity the query engine may search,
// filter and sort on. Each list screen's entity defines exactly one.
type Schema[T any] struct {
	// SearchFields are matched by case-insensitive substring; a hit on
	// any field satisfies the search term.
	SearchFields []func(T) string

	// EnumFields and BoolFields match exactly. RangeFields return the
	// numeric value and whether it is present; an absent value fails any
	// active range filter.
	EnumFields  map[string]func(T) string
	BoolFields  map[string]func(T) bool
	RangeFields map[string]func(T) (float64, bool)

	SortFields  map[string]SortField[T]
	DefaultSort string

	// Tie-break accessors, required for deterministic ordering.
	CreatedAt func(T) time.Time
	ID        func(T) uuid.UUID
}

// Predicate builds the filter function a Spec describes. All active
// filters combine with AND; search fields combine with OR.
func (s Schema[T]) Predicate(spec Spec) func(T) bool {
	search := strings.ToLower(spec.Search)

	return func(item T) bool {
		if search != "" && !s.matchesSearch(item, search) {
			return false
		}
		for key, want := range spec.Enums {
			get, ok := s.EnumFields[key]
			if !ok {
				continue
			}
			if get(item) != want {
				return false
			}
		}
		for key := range spec.Bools {
			get, ok := s.BoolFields[key]
			if !ok {
				continue
			}
			if !get(item) {
				return false
			}
		}
		for key, r := range spec.Ranges {
			get, ok := s.RangeFields[key]
			if !ok {
				continue
			}
			v, present := get(item)
			if !present {
				return false
			}
			if r.Min != nil && v < *r.Min {
				return false
			}
			if r.Max != nil && v > *r.Max {
				return false
			}
		}
		return true
	}
}

func (s Schema[T]) matchesSearch(item T, lowered string) bool {
	for _, get := range s.SearchFields {
		if strings.Contains(strings.ToLower(get(item)), lowered) {
			return true
		}
	}
	return false
}
