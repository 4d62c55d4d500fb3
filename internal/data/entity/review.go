package entity

type Review struct {
	BaseSimple
	MovieID int64   `db:"movie_id"`
	UserID  int64   `db:"user_id"`
	Rating  int     `db:"rating"` // 1-10
	Comment *string `db:"comment"`
}

// ReviewDetail is a review joined with its movie title and author.
type ReviewDetail struct {
	Review
	MovieTitle string `db:"movie_title"`
	Username   string `db:"username"`
}
