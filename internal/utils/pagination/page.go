package pagination

import "strconv"

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Normalize applies defaults and bounds to a page/per-page pair.
func Normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// ParseTotalPages reads a total-pages header value. Missing or malformed values count as one page.
func ParseTotalPages(header string) int {
	n, err := strconv.Atoi(header)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
