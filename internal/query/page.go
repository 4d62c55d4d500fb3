package query

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPageNumber keeps (Number-1)*MaxPageSize within int.
	MaxPageNumber = math.MaxInt/MaxPageSize + 1
)

// Page is a 1-based pagination window.
type Page struct {
	Number int
	Size   int
}

// NewPage normalizes user input: numbers below 1 fall back to defaults,
// sizes above MaxPageSize and numbers above MaxPageNumber are clamped.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	number = min(number, MaxPageNumber)
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	limit := p.Limit()
	if p.Number-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (p.Number - 1) * limit
}

func (p Page) Limit() int {
	if p.Size < 1 {
		return DefaultPageSize
	}
	return p.Size
}

func (p Page) TotalPages(total int64) int {
	limit := int64(p.Limit())
	if total <= 0 {
		return 0
	}
	return int((total + limit - 1) / limit)
}

// Window returns the slice of items selected by p. Pages past the end are empty.
func Window[T any](items []T, p Page) []T {
	offset := p.Offset()
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := offset + min(p.Limit(), len(items)-offset)
	return items[offset:end]
}
