package request

type ReviewRequest struct {
	MovieID int64   `json:"movieId" validate:"gt=0"`
	UserID  int64   `json:"userId" validate:"gt=0"`
	Rating  int     `json:"rating" validate:"min=1,max=10"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type ReviewUpdateRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=10"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}
