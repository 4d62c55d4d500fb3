package request

import "cinevault/internal/data/entity"

// LikeRequest names exactly one of ReviewID and CommentID.
type LikeRequest struct {
	UserID    int64  `json:"userId" validate:"gt=0"`
	ReviewID  *int64 `json:"reviewId,omitempty" validate:"omitempty,gt=0"`
	CommentID *int64 `json:"commentId,omitempty" validate:"omitempty,gt=0"`
}

func (r LikeRequest) Target() (entity.LikeTarget, error) {
	return entity.NewLikeTarget(r.ReviewID, r.CommentID)
}
