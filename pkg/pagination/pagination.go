package pagination

import (
	"net/http"
	"strconv"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
)

// LimitOffset holds limit/offset pagination parameters. The stubbed APIs
// reject out-of-range values instead of clamping them.
type LimitOffset struct {
	Limit  int
	Offset int
}

// ParseLimitOffset extracts limit/offset parameters from an HTTP request.
// Defaults are limit=20, offset=0. Limit must be in [1,100] and offset must
// be non-negative; violations fail with INVALID_PARAMETER.
func ParseLimitOffset(r *http.Request) (LimitOffset, error) {
	p := LimitOffset{Limit: 20, Offset: 0}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, apperrors.InvalidParameter("Limit and offset must be integers.")
		}
		p.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, apperrors.InvalidParameter("Limit and offset must be integers.")
		}
		p.Offset = n
	}

	if p.Limit < 1 || p.Limit > 100 {
		return p, apperrors.InvalidParameter("Limit must be between 1 and 100.")
	}
	if p.Offset < 0 {
		return p, apperrors.InvalidParameter("Offset must be non-negative.")
	}
	return p, nil
}

// Page holds page/pageSize pagination parameters.
type Page struct {
	Page     int
	PageSize int
}

// ParsePage extracts page/pageSize parameters from an HTTP request.
// Defaults are page=1, pageSize=20.
func ParsePage(r *http.Request) (Page, error) {
	p := Page{Page: 1, PageSize: 20}

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, apperrors.InvalidParameter("Page number must be >= 1.")
		}
		p.Page = n
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return p, apperrors.InvalidParameter("Page size must be between 1 and 100.")
		}
		p.PageSize = n
	}
	return p, nil
}

// Offset returns the slice offset for the page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Slice returns items[offset : offset+limit] with bounds clamped, so a page
// past the end is an empty slice rather than a panic.
func Slice[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
