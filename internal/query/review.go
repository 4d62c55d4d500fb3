package query

import (
	"cmp"

	"cinevault/internal/data/entity"
)

// ReviewCriteria narrows a review listing to one movie and/or one author.
type ReviewCriteria struct {
	MovieID *int64
	UserID  *int64
}

func (c ReviewCriteria) Filter() *Filter[entity.ReviewDetail] {
	f := NewFilter[entity.ReviewDetail]()

	if c.MovieID != nil {
		movieID := *c.MovieID
		f.Where(func(r entity.ReviewDetail) bool { return r.MovieID == movieID },
			"movie_id = ?", movieID)
	}
	if c.UserID != nil {
		userID := *c.UserID
		f.Where(func(r entity.ReviewDetail) bool { return r.UserID == userID },
			"user_id = ?", userID)
	}

	return f
}

const (
	ReviewSortRating        = "rating"
	ReviewSortRatingDesc    = "rating_desc"
	ReviewSortCreatedAtDesc = "createdAt_desc"
)

var ReviewSorts = NewSortTable(ReviewSortCreatedAtDesc,
	Ordering[entity.ReviewDetail]{
		Key: ReviewSortRating,
		Compare: func(a, b entity.ReviewDetail) int {
			return then(cmp.Compare(a.Rating, b.Rating), byID(a.ID, b.ID))
		},
		SQL: "rating ASC, id ASC",
	},
	Ordering[entity.ReviewDetail]{
		Key: ReviewSortRatingDesc,
		Compare: func(a, b entity.ReviewDetail) int {
			return then(cmp.Compare(b.Rating, a.Rating), byID(a.ID, b.ID))
		},
		SQL: "rating DESC, id ASC",
	},
	Ordering[entity.ReviewDetail]{
		Key: ReviewSortCreatedAtDesc,
		Compare: func(a, b entity.ReviewDetail) int {
			return then(timeCompare(b.CreatedAt, a.CreatedAt), byID(a.ID, b.ID))
		},
		SQL: "created_at DESC, id ASC",
	},
)
