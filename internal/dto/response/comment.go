package response

import (
	"time"

	"cinevault/internal/data/entity"
)

type CommentResponse struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"reviewId"`
	UserID    int64     `json:"userId"`
	Rating    int       `json:"rating"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func CommentToResponse(comment entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		ReviewID:  comment.ReviewID,
		UserID:    comment.UserID,
		Rating:    comment.Rating,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
