package listing

import "scholarportal/internal/config"

// Page is one page of a paginated list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices items into 1-based pages. page below 1 is treated as 1 and
// perPage is clamped to (0, config.MaxPageSize], defaulting to
// config.DefaultPageSize. A page past the end is empty, not an error.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = config.DefaultPageSize
	}
	if perPage > config.MaxPageSize {
		perPage = config.MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}

	// compare page numbers before multiplying so a huge page cannot overflow
	if page > p.TotalPages {
		return p
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	p.Items = append(p.Items, items[start:end]...)
	return p
}
