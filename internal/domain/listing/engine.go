package listing

import "slices"

// Query filters, sorts and paginates a collection in one pass. It is the
// only path by which a screen obtains a filtered page; empty results are
// a normal outcome, not an error. The input slice is never reordered.
func Query[T any](items []T, schema Schema[T], spec Spec) (Page[T], error) {
	cmp, err := schema.Comparator(spec)
	if err != nil {
		return Page[T]{}, err
	}

	pred := schema.Predicate(spec)
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			filtered = append(filtered, it)
		}
	}

	slices.SortStableFunc(filtered, cmp)

	return Paginate(filtered, spec.Page, spec.PageSize), nil
}
