package scheduling

import (
	"strings"
)

// FilterBySubstring keeps the items whose named fields contain query,
// case-insensitively. An empty or whitespace query returns a copy of the
// input unchanged; order is always preserved.
func FilterBySubstring[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
