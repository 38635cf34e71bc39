package listing

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

var ErrInvalidSortKey = errors.New("unsupported sort key")

// SortKind selects how a SortField's values compare.
type SortKind int

const (
	// SortString compares by code point.
	SortString SortKind = iota
	// SortName compares locale-aware, for person and company names.
	SortName
	// SortNumber and SortTime treat absent values as greater than every
	// present value, so open-ended records never dominate either end.
	SortNumber
	SortTime
)

type SortField[T any] struct {
	Kind   SortKind
	String func(T) string
	Number func(T) (float64, bool)
	Time   func(T) (time.Time, bool)
}

var nameCollator = collate.New(language.Und, collate.Loose)

// Comparator resolves the spec's sort key and direction into a total
// order. Absent numeric and date values sort last regardless of
// direction; ties break on creation time ascending, then id, so repeated
// queries over unchanged data return identical pages.
func (s Schema[T]) Comparator(spec Spec) (func(a, b T) int, error) {
	field, ok := s.SortFields[spec.SortBy]
	if !ok {
		return nil, ErrInvalidSortKey
	}
	desc := spec.SortOrder != OrderAsc

	return func(a, b T) int {
		c := compareField(field, a, b, desc)
		if c != 0 {
			return c
		}
		if c := s.CreatedAt(a).Compare(s.CreatedAt(b)); c != 0 {
			return c
		}
		return strings.Compare(s.ID(a).String(), s.ID(b).String())
	}, nil
}

func compareField[T any](f SortField[T], a, b T, desc bool) int {
	switch f.Kind {
	case SortName:
		return direct(nameCollator.CompareString(f.String(a), f.String(b)), desc)
	case SortNumber:
		av, aok := f.Number(a)
		bv, bok := f.Number(b)
		if c, done := nullsLast(aok, bok); done {
			return c
		}
		switch {
		case av < bv:
			return direct(-1, desc)
		case av > bv:
			return direct(1, desc)
		}
		return 0
	case SortTime:
		av, aok := f.Time(a)
		bv, bok := f.Time(b)
		if c, done := nullsLast(aok, bok); done {
			return c
		}
		return direct(av.Compare(bv), desc)
	default:
		return direct(strings.Compare(f.String(a), f.String(b)), desc)
	}
}

// nullsLast orders an absent value after a present one no matter the
// direction; direction only applies between two present values.
func nullsLast(aok, bok bool) (int, bool) {
	switch {
	case !aok && !bok:
		return 0, true
	case !aok:
		return 1, true
	case !bok:
		return -1, true
	}
	return 0, false
}

func direct(c int, desc bool) int {
	if desc {
		return -c
	}
	return c
}
