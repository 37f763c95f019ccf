package domain

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the item offset for the current page (0-based).
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Bounds returns the half-open index range [lo, hi) of the page within total items.
// An out-of-range page yields an empty range at total.
func (p PaginationParams) Bounds(total int) (lo, hi int) {
	lo = p.Offset()
	if lo > total {
		lo = total
	}
	hi = lo + p.PageSize
	if p.PageSize <= 0 || hi > total {
		hi = total
	}
	return lo, hi
}
