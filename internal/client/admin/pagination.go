package admin

// DefaultPerPage is the page size of the users table
const DefaultPerPage = 7

// Page is one page of a filtered list. From and To are 1-based and
// inclusive; both are 0 for an empty list.
type Page[T any] struct {
	Items      []T
	Number     int
	PerPage    int
	TotalPages int
	Total      int
	From       int
	To         int
}

// HasPrev reports whether a previous page exists
func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a next page exists
func (p Page[T]) HasNext() bool {
	return p.To < p.Total
}

// Paginate returns page number of items. The page number is clamped to the
// available range, perPage <= 0 uses DefaultPerPage.
func Paginate[T any](items []T, number, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	if number > totalPages {
		number = totalPages
	}
	if number < 1 {
		number = 1
	}

	p := Page[T]{
		Number:     number,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
	}
	if total == 0 {
		return p
	}

	start := (number - 1) * perPage
	end := min(start+perPage, total)

	p.Items = items[start:end]
	p.From = start + 1
	p.To = end
	return p
}
