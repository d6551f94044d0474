package pagination

// Meta describes the position of one page within the full result set
type Meta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// Envelope is the uniform paginated response shape. Degraded responses
// keep the same shape: an empty Data slice, zeroed totals and the Error
// string set, so clients can always unmarshal the envelope.
type Envelope[T any] struct {
	Data  []T    `json:"data"`
	Meta  Meta   `json:"meta"`
	Error string `json:"error,omitempty"`
}

// Paginate slices items into the requested page. An out-of-range page
// yields an empty data array, never an error. Pure function; callers are
// expected to have validated page >= 1 and perPage >= 1.
func Paginate[T any](items []T, page, perPage int) Envelope[T] {
	totalItems := len(items)
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + perPage - 1) / perPage
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	// Copy into a fresh non-nil slice so empty pages marshal as [] and
	// callers cannot alias the source
	data := make([]T, end-start)
	copy(data, items[start:end])

	return Envelope[T]{
		Data: data,
		Meta: Meta{
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
			TotalItems: totalItems,
		},
	}
}

// Degraded builds the failure envelope for a page request whose underlying
// computation failed as a whole: shape preserved, totals zeroed.
func Degraded[T any](page, perPage int, err error) Envelope[T] {
	return Envelope[T]{
		Data: make([]T, 0),
		Meta: Meta{
			Page:       page,
			PerPage:    perPage,
			TotalPages: 0,
			TotalItems: 0,
		},
		Error: err.Error(),
	}
}
