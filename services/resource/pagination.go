package resource

import "ablecare/models"

// clampPage normalizes a (page, limit) pair. Values below one come from
// missing or malformed query parameters and are clamped to one; the clamped
// pair is what reaches the repository, so a zero limit can never turn into an
// unbounded query.
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return page, limit
}

// Paginate converts a (page, limit) pair into the skip offset for the
// repository plus the page metadata for the response. Pages and limits below
// one are clamped to one; an out-of-range page is not an error, it simply
// addresses an empty window.
func Paginate(page, limit int, total int64) (skip int64, meta models.Pagination) {
	page, limit = clampPage(page, limit)

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	skip = int64(page-1) * int64(limit)

	meta = models.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		Limit:       limit,
		HasNextPage: int64(page)*int64(limit) < total,
		HasPrevPage: page > 1,
	}
	return skip, meta
}
