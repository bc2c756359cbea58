// Package page computes slice bounds and navigation flags for paginated
// track listings. It holds no state; a Page is recomputed on every
// navigation event and never cached.
package page

// Page describes one bounded slice of an ordered listing.
type Page struct {
	Offset     int
	Limit      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Compute derives the page bounds for the given zero-based page index.
// TotalPages is at least 1. A pageIndex at or past the end is not clamped:
// the fetch then returns fewer than pageSize rows and the renderer still
// produces navigation back to a valid page.
func Compute(totalCount, pageIndex, pageSize int) Page {
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return Page{
		Offset:     pageIndex * pageSize,
		Limit:      pageSize,
		TotalPages: totalPages,
		HasPrev:    pageIndex > 0,
		HasNext:    pageIndex < totalPages-1,
	}
}
