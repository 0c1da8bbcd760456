// Package pagex normalizes page/limit query parameters and derives
// offsets and page counts for list endpoints.
package pagex

const (
	// DefaultLimit is applied when the client omits or zeroes the limit.
	DefaultLimit = 10
	// MaxLimit caps the page size so a single request cannot pull an
	// unbounded result set.
	MaxLimit = 100
)

// Normalize clamps page and limit into valid ranges and returns the
// resulting page, limit and row offset. Page numbering starts at 1.
func Normalize(page, limit int) (p, l, offset int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit, (page - 1) * limit
}

// TotalPages returns ceil(total/limit). Zero rows yield zero pages.
func TotalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
