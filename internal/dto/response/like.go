package response

import (
	"time"

	"cinevault/internal/data/entity"
)

type LikeResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	ReviewID  *int64    `json:"reviewId"`
	CommentID *int64    `json:"commentId"`
	CreatedAt time.Time `json:"createdAt"`
}

type LikeCountResponse struct {
	TargetType string `json:"targetType"`
	TargetID   int64  `json:"targetId"`
	Count      int64  `json:"count"`
}

func LikeToResponse(like entity.Like) LikeResponse {
	reviewID, commentID := like.Target.Columns()
	return LikeResponse{
		ID:        like.ID,
		UserID:    like.UserID,
		ReviewID:  reviewID,
		CommentID: commentID,
		CreatedAt: like.CreatedAt,
	}
}
