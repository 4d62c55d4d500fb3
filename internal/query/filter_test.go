package query

import (
	"testing"
	"time"

	"cinevault/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func movie(id int64, title string, genre, director *string, release *time.Time, avg float64, count int64) entity.MovieSummary {
	return entity.MovieSummary{
		Movie: entity.Movie{
			ID:          id,
			Title:       title,
			Genre:       genre,
			Director:    director,
			ReleaseDate: release,
		},
		AverageRating: avg,
		ReviewCount:   count,
	}
}

func ids(movies []entity.MovieSummary) []int64 {
	out := make([]int64, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func catalog() []entity.MovieSummary {
	return []entity.MovieSummary{
		movie(1, "The Matrix", strPtr("Sci-Fi"), strPtr("Lana Wachowski"), date(1999, 3, 31), 9, 2),
		movie(2, "Matrix Reloaded", strPtr("sci-fi"), strPtr("Lilly Wachowski"), date(2003, 5, 15), 6.5, 2),
		movie(3, "Amelie", strPtr("Romance"), strPtr("Jean-Pierre Jeunet"), date(2001, 4, 25), 0, 0),
		movie(4, "Untitled", nil, nil, nil, 0, 0),
	}
}

func TestMovieCriteriaFilter(t *testing.T) {
	year := 2003
	minRating := 7.0
	zero := 0.0

	tests := []struct {
		name     string
		criteria MovieCriteria
		want     []int64
	}{
		{name: "no criteria", criteria: MovieCriteria{}, want: []int64{1, 2, 3, 4}},
		{name: "title case-insensitive", criteria: MovieCriteria{Title: strPtr("MATRIX")}, want: []int64{1, 2}},
		{name: "blank title ignored", criteria: MovieCriteria{Title: strPtr("  ")}, want: []int64{1, 2, 3, 4}},
		{name: "genre substring", criteria: MovieCriteria{Genre: strPtr("fi")}, want: []int64{1, 2}},
		{name: "director skips nil", criteria: MovieCriteria{Director: strPtr("jeunet")}, want: []int64{3}},
		{name: "release year", criteria: MovieCriteria{ReleaseYear: &year}, want: []int64{2}},
		{name: "min rating", criteria: MovieCriteria{MinAverageRating: &minRating}, want: []int64{1}},
		{name: "min rating zero excludes unreviewed", criteria: MovieCriteria{MinAverageRating: &zero}, want: []int64{1, 2}},
		{
			name:     "criteria combine with AND",
			criteria: MovieCriteria{Title: strPtr("matrix"), Director: strPtr("lilly")},
			want:     []int64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.criteria.Filter().Apply(catalog())
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterSQL(t *testing.T) {
	year := 1999
	minRating := 5.5
	f := MovieCriteria{
		Title:            strPtr("matrix"),
		ReleaseYear:      &year,
		MinAverageRating: &minRating,
	}.Filter()

	clause, args := f.SQL(1)
	assert.Equal(t,
		"strpos(lower(title), lower($1)) > 0 AND EXTRACT(YEAR FROM release_date) = $2 AND review_count > 0 AND average_rating >= $3",
		clause)
	assert.Equal(t, []any{"matrix", 1999, 5.5}, args)

	clause, args = f.SQL(4)
	assert.Contains(t, clause, "$4")
	assert.Contains(t, clause, "$6")
	assert.Len(t, args, 3)
}

func TestFilterSQLEmpty(t *testing.T) {
	clause, args := MovieCriteria{}.Filter().SQL(1)
	assert.Empty(t, clause)
	assert.Nil(t, args)

	var nilFilter *Filter[entity.User]
	clause, _ = nilFilter.SQL(1)
	assert.Empty(t, clause)
	assert.True(t, nilFilter.Match(entity.User{}))
}

func TestFilterSQLPanicsOnArgMismatch(t *testing.T) {
	f := NewFilter[int]().Where(func(int) bool { return true }, "a = ? AND b = ?", 1)
	require.Panics(t, func() { f.SQL(1) })
}

func TestUserCriteriaFilter(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	users := []entity.User{
		{BaseSimple: entity.BaseSimple{ID: 1, CreatedAt: base}, Username: "Alice", Email: "alice@example.com"},
		{BaseSimple: entity.BaseSimple{ID: 2, CreatedAt: base.AddDate(0, 1, 0)}, Username: "bob", Email: "bob@EXAMPLE.org"},
		{BaseSimple: entity.BaseSimple{ID: 3, CreatedAt: base.AddDate(0, 2, 0)}, Username: "malice", Email: "m@test.io"},
	}
	from := base.AddDate(0, 1, 0)
	to := base.AddDate(0, 1, 0)

	tests := []struct {
		name     string
		criteria UserCriteria
		want     []int64
	}{
		{name: "username", criteria: UserCriteria{Username: strPtr("ALICE")}, want: []int64{1, 3}},
		{name: "email", criteria: UserCriteria{Email: strPtr("example")}, want: []int64{1, 2}},
		{name: "created range inclusive", criteria: UserCriteria{CreatedAfter: &from, CreatedUntil: &to}, want: []int64{2}},
		{name: "created after", criteria: UserCriteria{CreatedAfter: &from}, want: []int64{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.criteria.Filter().Apply(users)
			gotIDs := make([]int64, len(got))
			for i, u := range got {
				gotIDs[i] = u.ID
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}

func TestReviewCriteriaFilter(t *testing.T) {
	movieID := int64(7)
	reviews := []entity.ReviewDetail{
		{Review: entity.Review{BaseSimple: entity.BaseSimple{ID: 1}, MovieID: 7, UserID: 1}},
		{Review: entity.Review{BaseSimple: entity.BaseSimple{ID: 2}, MovieID: 8, UserID: 1}},
	}

	got := ReviewCriteria{MovieID: &movieID}.Filter().Apply(reviews)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	clause, args := ReviewCriteria{MovieID: &movieID}.Filter().SQL(1)
	assert.Equal(t, "movie_id = $1", clause)
	assert.Equal(t, []any{int64(7)}, args)
}
