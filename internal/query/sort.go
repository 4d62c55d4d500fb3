package query

import (
	"cmp"
	"slices"
	"sort"
	"strings"
	"time"
)

// Ordering is one named, deterministic ordering.
type Ordering[T any] struct {
	Key     string
	Compare func(a, b T) int
	SQL     string
}

// Sort orders items in place.
func (o Ordering[T]) Sort(items []T) {
	if o.Compare == nil {
		return
	}
	slices.SortStableFunc(items, o.Compare)
}

// SortTable maps sort keys to orderings with a default.
type SortTable[T any] struct {
	def    string
	orders map[string]Ordering[T]
}

func NewSortTable[T any](def string, orders ...Ordering[T]) SortTable[T] {
	t := SortTable[T]{def: def, orders: make(map[string]Ordering[T], len(orders))}
	for _, o := range orders {
		t.orders[o.Key] = o
	}
	if _, ok := t.orders[def]; !ok {
		panic("query: default sort key " + def + " is not registered")
	}
	return t
}

// Resolve returns the ordering for key. Unknown keys resolve to the default
// ordering with ok=false; an empty key is the default with ok=true.
func (t SortTable[T]) Resolve(key string) (Ordering[T], bool) {
	if key == "" {
		return t.orders[t.def], true
	}
	if o, ok := t.orders[key]; ok {
		return o, true
	}
	return t.orders[t.def], false
}

func (t SortTable[T]) Default() string { return t.def }

// Keys lists the recognized keys in lexical order.
func (t SortTable[T]) Keys() []string {
	keys := make([]string, 0, len(t.orders))
	for k := range t.orders {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// comparator helpers; every ordering ends with an id tie-break.

func byID(a, b int64) int { return cmp.Compare(a, b) }

func foldCompare(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func timeCompare(a, b time.Time) int { return a.Compare(b) }

// nullsLast compares optional times, placing nil after any value in both directions.
func nullsLast(a, b *time.Time, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	if desc {
		return b.Compare(*a)
	}
	return a.Compare(*b)
}

func then(primary, tie int) int {
	if primary != 0 {
		return primary
	}
	return tie
}
