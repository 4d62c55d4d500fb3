package request

import "cinevault/internal/query"

type PaginatedRequest struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	OrderBy  string `json:"orderBy"`
}

// ToPage normalizes the raw values: missing or invalid ones fall back to
// defaults and oversized pages are clamped.
func (p PaginatedRequest) ToPage() query.Page {
	return query.NewPage(p.Page, p.PageSize)
}
