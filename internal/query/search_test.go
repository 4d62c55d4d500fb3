package query

import (
	"testing"

	"cinevault/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestSearchRun(t *testing.T) {
	order, _ := MovieSorts.Resolve(MovieSortTitle)
	s := Search[entity.MovieSummary]{
		Filter: MovieCriteria{Genre: strPtr("sci")}.Filter(),
		Order:  order,
		Page:   NewPage(1, 1),
	}

	got, total := s.Run(catalog())
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []int64{2}, ids(got))

	s.Page = NewPage(2, 1)
	got, total = s.Run(catalog())
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []int64{1}, ids(got))

	s.Page = NewPage(3, 1)
	got, total = s.Run(catalog())
	assert.Equal(t, int64(2), total)
	assert.Empty(t, got)
}

func TestSearchRunDoesNotReorderInput(t *testing.T) {
	order, _ := MovieSorts.Resolve(MovieSortRatingDesc)
	input := catalog()

	Search[entity.MovieSummary]{Order: order, Page: NewPage(1, 10)}.Run(input)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(input))
}
