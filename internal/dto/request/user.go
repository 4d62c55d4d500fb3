package request

import (
	"time"

	"cinevault/internal/query"
)

type UserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type UserUpdateRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

type UserSearchRequest struct {
	PaginatedRequest
	Username    *string
	Email       *string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

func (r UserSearchRequest) Criteria() query.UserCriteria {
	return query.UserCriteria{
		Username:     r.Username,
		Email:        r.Email,
		CreatedAfter: r.CreatedFrom,
		CreatedUntil: r.CreatedTo,
	}
}
