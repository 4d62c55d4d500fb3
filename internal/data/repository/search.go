package repository

import (
	"fmt"
	"strings"

	"cinevault/internal/query"
)

// searchSQL is a rendered list query and its matching count query.
type searchSQL struct {
	List      string
	ListArgs  []any
	Count     string
	CountArgs []any
}

// buildSearch renders s against relation from. with is an optional CTE prefix
// defining from; columns is the select list. The count query shares the
// WHERE clause but ignores ordering and the page window.
func buildSearch[T any](with, from, columns string, s query.Search[T]) searchSQL {
	where, args := s.Filter.SQL(1)

	var body strings.Builder
	body.WriteString(" FROM ")
	body.WriteString(from)
	if where != "" {
		body.WriteString(" WHERE ")
		body.WriteString(where)
	}

	prefix := ""
	if with != "" {
		prefix = with + " "
	}

	order := s.Order.SQL
	if order == "" {
		order = "id ASC"
	}

	n := len(args) + 1
	var list strings.Builder
	list.WriteString(prefix)
	list.WriteString("SELECT ")
	list.WriteString(columns)
	list.WriteString(body.String())
	list.WriteString(" ORDER BY ")
	list.WriteString(order)
	fmt.Fprintf(&list, " LIMIT $%d OFFSET $%d", n, n+1)

	listArgs := make([]any, 0, len(args)+2)
	listArgs = append(listArgs, args...)
	listArgs = append(listArgs, s.Page.Limit(), s.Page.Offset())

	return searchSQL{
		List:      list.String(),
		ListArgs:  listArgs,
		Count:     prefix + "SELECT COUNT(*)" + body.String(),
		CountArgs: args,
	}
}
