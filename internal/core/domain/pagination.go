package domain

// Pagination carries the page/limit pair shared by every listing endpoint.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize applies the documented defaults: page and limit both floor at 1,
// with limit defaulting to 10 when unset.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
}

// Skip returns the offset of the first item on the requested page.
func (p Pagination) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Paginated is the canonical list-response envelope.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated assembles a Paginated envelope, computing
// TotalPages = ceil(total/limit). Items is never nil.
func NewPaginated[T any](items []T, total int64, p Pagination) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: pages,
	}
}
