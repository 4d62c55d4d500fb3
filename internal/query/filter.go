// Package query holds the storage-independent search machinery: composable
// filters, sort tables, pagination windows and rating aggregation. Every
// filter criterion and ordering carries both an in-memory form and a SQL
// form so the memory and postgres stores answer the same question.
package query

import (
	"fmt"
	"strings"
)

// Predicate reports whether an item satisfies one criterion.
type Predicate[T any] func(T) bool

// Condition is the SQL form of a predicate. Expr uses "?" for each argument.
type Condition struct {
	Expr string
	Args []any
}

// Filter is an AND of criteria. The zero value and a nil *Filter match everything.
type Filter[T any] struct {
	preds []Predicate[T]
	conds []Condition
}

func NewFilter[T any]() *Filter[T] {
	return &Filter[T]{}
}

// Where adds one criterion in both forms.
func (f *Filter[T]) Where(pred Predicate[T], expr string, args ...any) *Filter[T] {
	f.preds = append(f.preds, pred)
	f.conds = append(f.conds, Condition{Expr: expr, Args: args})
	return f
}

// Len is the number of criteria.
func (f *Filter[T]) Len() int {
	if f == nil {
		return 0
	}
	return len(f.preds)
}

func (f *Filter[T]) Match(item T) bool {
	if f == nil {
		return true
	}
	for _, pred := range f.preds {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Apply returns the matching items in their original order.
func (f *Filter[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

// SQL renders the criteria joined with AND, numbering placeholders from
// firstArg. It returns an empty clause when there are no criteria.
func (f *Filter[T]) SQL(firstArg int) (string, []any) {
	if f.Len() == 0 {
		return "", nil
	}

	var b strings.Builder
	var args []any
	n := firstArg
	for i, cond := range f.conds {
		if i > 0 {
			b.WriteString(" AND ")
		}
		used := 0
		for _, r := range cond.Expr {
			if r == '?' {
				fmt.Fprintf(&b, "$%d", n)
				n++
				used++
				continue
			}
			b.WriteRune(r)
		}
		if used != len(cond.Args) {
			panic(fmt.Sprintf("query: condition %q has %d placeholders for %d args", cond.Expr, used, len(cond.Args)))
		}
		args = append(args, cond.Args...)
	}
	return b.String(), args
}

// ContainsFold is case-insensitive substring containment.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// containsFoldPtr treats a missing value as never matching.
func containsFoldPtr(s *string, substr string) bool {
	return s != nil && ContainsFold(*s, substr)
}

// containsSQL is the SQL form of ContainsFold for column.
func containsSQL(column string) string {
	return "strpos(lower(" + column + "), lower(?)) > 0"
}
