// Package listing is the single query path behind every list screen:
// it normalizes raw filter input, builds the predicate, resolves the sort
// comparator and slices the page. Screens supply a Schema describing
// their entity's fields and render the Page they get back.
package listing

import (
	"strconv"
	"strings"
)

// DefaultPageSize is the fixed page size of every list view.
const DefaultPageSize = 12

// Sentinel values meaning "no constraint". They are interpreted here and
// nowhere else; call sites never special-case them.
const sentinelAll = "ALL"

// Range is a numeric interval; either bound may be open.
type Range struct {
	Min *float64
	Max *float64
}

// Spec is the normalized form of a raw filter request. It is transient:
// built fresh per query, never persisted.
type Spec struct {
	Search    string
	Enums     map[string]string
	Bools     map[string]bool
	Ranges    map[string]Range
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ActiveFilterCount is the number of constraints the predicate will
// enforce. The "N filters applied" badge and the result set are derived
// from the same Spec, so they can never disagree.
func (s Spec) ActiveFilterCount() int {
	n := 0
	if s.Search != "" {
		n++
	}
	n += len(s.Enums)
	n += len(s.Bools)
	n += len(s.Ranges)
	return n
}

// Normalize folds a raw string-keyed filter map into a Spec using the
// schema's field declarations. Empty strings and the "ALL" sentinel mean
// "not applied"; malformed numbers leave that bound open; unknown keys
// are ignored.
func Normalize[T any](schema Schema[T], raw map[string]string) Spec {
	spec := Spec{
		Enums:     map[string]string{},
		Bools:     map[string]bool{},
		Ranges:    map[string]Range{},
		SortBy:    schema.DefaultSort,
		SortOrder: OrderDesc,
		Page:      1,
		PageSize:  DefaultPageSize,
	}

	if v := strings.TrimSpace(raw["search"]); !isSentinel(v) {
		spec.Search = v
	}

	for key := range schema.EnumFields {
		if v := strings.TrimSpace(raw[key]); !isSentinel(v) {
			spec.Enums[key] = v
		}
	}

	for key := range schema.BoolFields {
		v := strings.TrimSpace(raw[key])
		if isSentinel(v) {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil || !b {
			// false means "not applied", same as the empty sentinel
			continue
		}
		spec.Bools[key] = true
	}

	for key := range schema.RangeFields {
		r := Range{
			Min: parseBound(raw[key+"Min"]),
			Max: parseBound(raw[key+"Max"]),
		}
		if r.Min != nil || r.Max != nil {
			spec.Ranges[key] = r
		}
	}

	if v := strings.TrimSpace(raw["sortBy"]); v != "" {
		spec.SortBy = v
	}
	if v := strings.ToLower(strings.TrimSpace(raw["sortOrder"])); v == OrderAsc {
		spec.SortOrder = OrderAsc
	}
	if p, err := strconv.Atoi(strings.TrimSpace(raw["page"])); err == nil && p > 0 {
		spec.Page = p
	}

	return spec
}

func isSentinel(v string) bool {
	return v == "" || strings.EqualFold(v, sentinelAll)
}

func parseBound(v string) *float64 {
	v = strings.TrimSpace(v)
	if isSentinel(v) {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		// malformed input is "no constraint", never a zero
		return nil
	}
	return &f
}
