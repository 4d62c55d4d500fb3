package query

// Search is a complete list query: filter, ordering and window.
type Search[T any] struct {
	Filter *Filter[T]
	Order  Ordering[T]
	Page   Page
}

// Run evaluates the search in memory and returns the window together with
// the number of items that matched the filter.
func (s Search[T]) Run(items []T) ([]T, int64) {
	matched := s.Filter.Apply(items)
	s.Order.Sort(matched)
	return Window(matched, s.Page), int64(len(matched))
}
