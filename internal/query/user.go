package query

import (
	"time"

	"cinevault/internal/data/entity"
)

// UserCriteria are the optional user search criteria. The created range is inclusive.
type UserCriteria struct {
	Username     *string
	Email        *string
	CreatedAfter *time.Time
	CreatedUntil *time.Time
}

func (c UserCriteria) Filter() *Filter[entity.User] {
	f := NewFilter[entity.User]()

	if username := trimmed(c.Username); username != "" {
		f.Where(func(u entity.User) bool { return ContainsFold(u.Username, username) },
			containsSQL("username"), username)
	}
	if email := trimmed(c.Email); email != "" {
		f.Where(func(u entity.User) bool { return ContainsFold(u.Email, email) },
			containsSQL("email"), email)
	}
	if c.CreatedAfter != nil {
		from := *c.CreatedAfter
		f.Where(func(u entity.User) bool { return !u.CreatedAt.Before(from) },
			"created_at >= ?", from)
	}
	if c.CreatedUntil != nil {
		to := *c.CreatedUntil
		f.Where(func(u entity.User) bool { return !u.CreatedAt.After(to) },
			"created_at <= ?", to)
	}

	return f
}

const (
	UserSortUsername      = "username"
	UserSortUsernameDesc  = "username_desc"
	UserSortCreatedAt     = "createdAt"
	UserSortCreatedAtDesc = "createdAt_desc"
)

var UserSorts = NewSortTable(UserSortCreatedAtDesc,
	Ordering[entity.User]{
		Key: UserSortUsername,
		Compare: func(a, b entity.User) int {
			return then(foldCompare(a.Username, b.Username), byID(a.ID, b.ID))
		},
		SQL: `lower(username) COLLATE "C" ASC, id ASC`,
	},
	Ordering[entity.User]{
		Key: UserSortUsernameDesc,
		Compare: func(a, b entity.User) int {
			return then(foldCompare(b.Username, a.Username), byID(a.ID, b.ID))
		},
		SQL: `lower(username) COLLATE "C" DESC, id ASC`,
	},
	Ordering[entity.User]{
		Key: UserSortCreatedAt,
		Compare: func(a, b entity.User) int {
			return then(timeCompare(a.CreatedAt, b.CreatedAt), byID(a.ID, b.ID))
		},
		SQL: "created_at ASC, id ASC",
	},
	Ordering[entity.User]{
		Key: UserSortCreatedAtDesc,
		Compare: func(a, b entity.User) int {
			return then(timeCompare(b.CreatedAt, a.CreatedAt), byID(a.ID, b.ID))
		},
		SQL: "created_at DESC, id ASC",
	},
)
