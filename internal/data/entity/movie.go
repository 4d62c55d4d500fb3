package entity

import (
	"time"
)

type Movie struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	ReleaseDate *time.Time `db:"release_date"`
	Genre       *string    `db:"genre"`
	Director    *string    `db:"director"`
}

// MovieSummary is a movie together with the aggregate of its reviews.
type MovieSummary struct {
	Movie
	AverageRating float64 `db:"average_rating"`
	ReviewCount   int64   `db:"review_count"`
}
