package usecase

import (
	"fmt"
	"strings"
	"time"

	"cinevault/internal/query"
	"cinevault/pkg/utils"
)

// validate runs the struct tags of req.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newValidationError("Validation failed", utils.ValidationDetails(errs)...)
	}
	return nil
}

// resolveOrder picks the ordering for key. Unknown keys fall back to the
// table default unless strict is set.
func resolveOrder[T any](table query.SortTable[T], key string, strict bool) (query.Ordering[T], error) {
	order, ok := table.Resolve(key)
	if !ok && strict {
		return order, newValidationError("Invalid orderBy",
			fmt.Sprintf("orderBy: must be one of: %s", strings.Join(table.Keys(), ", ")))
	}
	return order, nil
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(utils.DateLayout, *value)
	if err != nil {
		return nil, newValidationError("Validation failed", field+": Must be a date in the form 2006-01-02")
	}
	return &t, nil
}

// uniqueIDs drops repeated ids, keeping first occurrences in order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
