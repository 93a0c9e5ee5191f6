package pagination

// DefaultPageSize is the page size applied when a user carries no preference.
const DefaultPageSize = 12

// NormalizePage coerces any non-positive page number to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// NormalizePageSize falls back to the default when the stored preference is
// missing or invalid.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	return size
}

// Offset returns the number of rows to skip for a 1-based page.
func Offset(page, size int) int {
	return (NormalizePage(page) - 1) * size
}

// TotalPages computes ceil(total/size); zero matches yield zero pages.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
