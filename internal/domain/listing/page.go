package listing

// Page is the paginated, filtered, sorted output of a query plus its
// pagination metadata.
type Page[T any] struct {
	Items       []T
	TotalItems  int
	TotalPages  int
	CurrentPage int
}

// Paginate slices an ordered sequence into the requested 1-based page.
// An out-of-range page never errors: it is clamped to the nearest valid
// page, and an empty sequence yields an empty page 1 of 0.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:       out,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}
