package response

import (
	"time"

	"cinevault/internal/data/entity"
)

type ReviewResponse struct {
	ID         int64     `json:"id"`
	MovieID    int64     `json:"movieId"`
	MovieTitle string    `json:"movieTitle,omitempty"`
	UserID     int64     `json:"userId"`
	Username   string    `json:"username,omitempty"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Helper converter
func ReviewToResponse(review entity.ReviewDetail) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		MovieID:    review.MovieID,
		MovieTitle: review.MovieTitle,
		UserID:     review.UserID,
		Username:   review.Username,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}
