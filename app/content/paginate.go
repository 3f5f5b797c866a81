package content

// Paginate slices out the 1-indexed page of the given size. It does not
// clamp: callers are expected to run the requested page through ClampPage
// first, so an out-of-range page here simply yields an empty slice.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize <= 0 || page < 1 {
		return nil
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// TotalPages is ceil(count/pageSize), with a floor of 1 so navigation
// never sees zero pages even for an empty collection.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}

	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces a requested page into [1, totalPages]. Whenever the
// underlying collection changes (new query, new category), callers should
// restart from page 1; clamping here keeps a stale page index from
// pointing past the new collection's end.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
