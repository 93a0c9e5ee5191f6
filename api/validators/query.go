package validators

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryPage reads a 1-based page number from the request. Missing,
// non-numeric, or non-positive input yields page 1 rather than an error.
func QueryPage(r *http.Request) int {
	raw := strings.TrimSpace(r.URL.Query().Get("page"))
	if raw == "" {
		return 1
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 1
	}
	return value
}

// QuerySearch returns the trimmed free-text search string, empty if absent.
func QuerySearch(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("query"))
}
