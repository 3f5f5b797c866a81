package content

import "strings"

// Filter keeps the items where the query appears, case-insensitively, in
// at least one of the extracted fields. Single-term substring match only;
// there is no tokenization or ranking. An empty query returns the input
// unchanged.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				filtered = append(filtered, item)
				break
			}
		}
	}

	return filtered
}
