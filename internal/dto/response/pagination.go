package response

import "cinevault/internal/query"

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// PaginationMeta
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginatedResponse[T any](data []T, page query.Page, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Total:      total,
			Page:       page.Number,
			PageSize:   page.Limit(),
			TotalPages: page.TotalPages(total),
		},
	}
}

// MapPage converts every item of a result window with fn.
func MapPage[E, T any](items []E, page query.Page, total int64, fn func(E) T) *PaginatedResponse[T] {
	data := make([]T, len(items))
	for i, item := range items {
		data[i] = fn(item)
	}
	return NewPaginatedResponse(data, page, total)
}
