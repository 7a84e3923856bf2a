package discovery

// Page is one window of an ordered result set.
type Page[T any] struct {
	Items      []T
	TotalCount int
	PageNumber int
	PageSize   int
}

// TotalPages returns the number of pages needed to cover TotalCount.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// Paginate cuts the window (page-1)*size .. page*size out of items.
// items must already be filtered and sorted; TotalCount is len(items).
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	result := Page[T]{
		Items:      []T{},
		TotalCount: len(items),
		PageNumber: page,
		PageSize:   size,
	}

	// Checked before multiplying so a huge page number cannot overflow skip.
	if page-1 >= (len(items)+size-1)/size {
		return result
	}
	skip := (page - 1) * size
	end := min(skip+size, len(items))
	result.Items = items[skip:end]
	return result
}

// MapPage converts the items of a page, keeping its counters.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Page[U]{
		Items:      items,
		TotalCount: p.TotalCount,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
