package response

import (
	"cinevault/internal/data/entity"
	"cinevault/pkg/utils"
)

// MovieResponse always carries the review aggregate, zero when unreviewed.
type MovieResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	ReleaseDate   *string `json:"releaseDate"`
	Genre         *string `json:"genre"`
	Director      *string `json:"director"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}

type MovieReviewStats struct {
	MovieID       int64   `json:"movieId"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}

// BulkDeleteResponse partitions the requested ids. Duplicates are counted once.
type BulkDeleteResponse struct {
	Requested    int     `json:"requested"`
	Deleted      int     `json:"deleted"`
	Blocked      int     `json:"blocked"`
	Unmatched    int     `json:"unmatched"`
	DeletedIDs   []int64 `json:"deletedIds"`
	BlockedIDs   []int64 `json:"blockedIds"`
	UnmatchedIDs []int64 `json:"unmatchedIds"`
}

func MovieToResponse(movie entity.MovieSummary) MovieResponse {
	var releaseDate *string
	if movie.ReleaseDate != nil {
		formatted := movie.ReleaseDate.Format(utils.DateLayout)
		releaseDate = &formatted
	}

	return MovieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Description:   movie.Description,
		ReleaseDate:   releaseDate,
		Genre:         movie.Genre,
		Director:      movie.Director,
		AverageRating: movie.AverageRating,
		ReviewCount:   movie.ReviewCount,
	}
}
