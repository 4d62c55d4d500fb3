package query

import (
	"cmp"
	"strings"

	"cinevault/internal/data/entity"
)

// MovieCriteria are the optional movie search criteria. Nil fields impose no constraint.
type MovieCriteria struct {
	Title            *string
	Genre            *string
	Director         *string
	ReleaseYear      *int
	MinAverageRating *float64
}

// Filter composes the supplied criteria. SQL conditions reference the
// aggregated movie columns (title, genre, director, release_date,
// average_rating, review_count).
func (c MovieCriteria) Filter() *Filter[entity.MovieSummary] {
	f := NewFilter[entity.MovieSummary]()

	if title := trimmed(c.Title); title != "" {
		f.Where(func(m entity.MovieSummary) bool { return ContainsFold(m.Title, title) },
			containsSQL("title"), title)
	}
	if genre := trimmed(c.Genre); genre != "" {
		f.Where(func(m entity.MovieSummary) bool { return containsFoldPtr(m.Genre, genre) },
			containsSQL("genre"), genre)
	}
	if director := trimmed(c.Director); director != "" {
		f.Where(func(m entity.MovieSummary) bool { return containsFoldPtr(m.Director, director) },
			containsSQL("director"), director)
	}
	if c.ReleaseYear != nil {
		year := *c.ReleaseYear
		f.Where(func(m entity.MovieSummary) bool { return m.ReleaseDate != nil && m.ReleaseDate.Year() == year },
			"EXTRACT(YEAR FROM release_date) = ?", year)
	}
	if c.MinAverageRating != nil {
		// Movies without reviews have no average to compare, so they never qualify.
		minRating := *c.MinAverageRating
		f.Where(func(m entity.MovieSummary) bool { return m.ReviewCount > 0 && m.AverageRating >= minRating },
			"review_count > 0 AND average_rating >= ?", minRating)
	}

	return f
}

const (
	MovieSortTitle           = "title"
	MovieSortTitleDesc       = "title_desc"
	MovieSortReleaseDate     = "releaseDate"
	MovieSortReleaseDateDesc = "releaseDate_desc"
	MovieSortRating          = "rating"
	MovieSortRatingDesc      = "rating_desc"
)

var MovieSorts = NewSortTable(MovieSortReleaseDateDesc,
	Ordering[entity.MovieSummary]{
		Key: MovieSortTitle,
		Compare: func(a, b entity.MovieSummary) int {
			return then(foldCompare(a.Title, b.Title), byID(a.ID, b.ID))
		},
		SQL: `lower(title) COLLATE "C" ASC, id ASC`,
	},
	Ordering[entity.MovieSummary]{
		Key: MovieSortTitleDesc,
		Compare: func(a, b entity.MovieSummary) int {
			return then(foldCompare(b.Title, a.Title), byID(a.ID, b.ID))
		},
		SQL: `lower(title) COLLATE "C" DESC, id ASC`,
	},
	Ordering[entity.MovieSummary]{
		Key: MovieSortReleaseDate,
		Compare: func(a, b entity.MovieSummary) int {
			return then(nullsLast(a.ReleaseDate, b.ReleaseDate, false), byID(a.ID, b.ID))
		},
		SQL: "release_date ASC NULLS LAST, id ASC",
	},
	Ordering[entity.MovieSummary]{
		Key: MovieSortReleaseDateDesc,
		Compare: func(a, b entity.MovieSummary) int {
			return then(nullsLast(a.ReleaseDate, b.ReleaseDate, true), byID(a.ID, b.ID))
		},
		SQL: "release_date DESC NULLS LAST, id ASC",
	},
	Ordering[entity.MovieSummary]{
		Key: MovieSortRating,
		Compare: func(a, b entity.MovieSummary) int {
			return then(cmp.Compare(a.AverageRating, b.AverageRating), byID(a.ID, b.ID))
		},
		SQL: "average_rating ASC, id ASC",
	},
	Ordering[entity.MovieSummary]{
		Key: MovieSortRatingDesc,
		Compare: func(a, b entity.MovieSummary) int {
			return then(cmp.Compare(b.AverageRating, a.AverageRating), byID(a.ID, b.ID))
		},
		SQL: "average_rating DESC, id ASC",
	},
)

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
