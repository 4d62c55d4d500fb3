package query

import (
	"testing"

	"cinevault/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestMovieSorts(t *testing.T) {
	tests := []struct {
		key  string
		want []int64
	}{
		{key: MovieSortTitle, want: []int64{3, 2, 1, 4}},
		{key: MovieSortTitleDesc, want: []int64{4, 1, 2, 3}},
		{key: MovieSortReleaseDate, want: []int64{1, 3, 2, 4}},
		{key: MovieSortReleaseDateDesc, want: []int64{2, 3, 1, 4}},
		{key: MovieSortRating, want: []int64{3, 4, 2, 1}},
		{key: MovieSortRatingDesc, want: []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			order, ok := MovieSorts.Resolve(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.key, order.Key)

			movies := catalog()
			order.Sort(movies)
			assert.Equal(t, tt.want, ids(movies))
		})
	}
}

func TestSortResolveFallback(t *testing.T) {
	order, ok := MovieSorts.Resolve("popularity")
	assert.False(t, ok)
	assert.Equal(t, MovieSortReleaseDateDesc, order.Key)

	order, ok = MovieSorts.Resolve("")
	assert.True(t, ok)
	assert.Equal(t, MovieSortReleaseDateDesc, order.Key)

	userOrder, ok := UserSorts.Resolve("email")
	assert.False(t, ok)
	assert.Equal(t, UserSortCreatedAtDesc, userOrder.Key)

	reviewOrder, ok := ReviewSorts.Resolve("createdAt")
	assert.False(t, ok)
	assert.Equal(t, ReviewSortCreatedAtDesc, reviewOrder.Key)
}

func TestSortIsDeterministicOnTies(t *testing.T) {
	movies := []entity.MovieSummary{
		movie(5, "same", nil, nil, nil, 7, 1),
		movie(2, "Same", nil, nil, nil, 7, 1),
		movie(9, "SAME", nil, nil, nil, 7, 1),
	}

	for _, key := range MovieSorts.Keys() {
		order, _ := MovieSorts.Resolve(key)
		sorted := append([]entity.MovieSummary(nil), movies...)
		order.Sort(sorted)
		assert.Equal(t, []int64{2, 5, 9}, ids(sorted), key)
	}
}

func TestSortTableKeys(t *testing.T) {
	assert.Equal(t, []string{"createdAt", "createdAt_desc", "username", "username_desc"}, UserSorts.Keys())
	assert.Equal(t, UserSortCreatedAtDesc, UserSorts.Default())
}

func TestNewSortTablePanicsOnUnknownDefault(t *testing.T) {
	assert.Panics(t, func() {
		NewSortTable[int]("missing", Ordering[int]{Key: "x"})
	})
}
