package entity

type Comment struct {
	BaseSimple
	ReviewID int64   `db:"review_id"`
	UserID   int64   `db:"user_id"`
	Rating   int     `db:"rating"` // 1-10
	Content  *string `db:"content"`
}
