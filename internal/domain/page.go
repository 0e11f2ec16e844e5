package domain

// DefaultPageSize is the fixed number of items per listing page.
const DefaultPageSize = 15

// MaxPage bounds the page number so Offset stays well inside int range;
// pages past the data simply come back empty.
const MaxPage = 1_000_000

// ListFilter describes a listing query: an optional free-text search term
// matched against name, sku, category and description, an optional exact
// category restriction, and a 1-based page number.
type ListFilter struct {
	Search        string
	Category      string
	Page          int
	PerPage       int
	CaseSensitive bool // substring match case sensitivity, configurable
}

// Normalize clamps the filter to usable values. Page numbers below 1 become
// 1, page numbers above MaxPage become MaxPage, and a missing page size
// falls back to DefaultPageSize.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPageSize
	}
	return f
}

// Offset returns the row offset for the filter's page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// Page is one slice of an ordered result set plus the metadata a caller
// needs to build page links that preserve the active filters.
type Page struct {
	Items      []Item `json:"items"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalItems int64  `json:"total_items"`
	TotalPages int    `json:"total_pages"`
	Search     string `json:"search,omitempty"`
	Category   string `json:"category,omitempty"`
}
