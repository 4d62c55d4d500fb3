package request

type CommentRequest struct {
	ReviewID int64   `json:"reviewId" validate:"gt=0"`
	UserID   int64   `json:"userId" validate:"gt=0"`
	Rating   int     `json:"rating" validate:"min=1,max=10"`
	Content  *string `json:"content,omitempty" validate:"omitempty,max=1000"`
}

type CommentUpdateRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=10"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=1000"`
}
