package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidTarget is returned when a like names both a review and a comment, or neither.
var ErrInvalidTarget = errors.New("like must be for either a review or a comment, not both")

type TargetKind string

const (
	TargetReview  TargetKind = "review"
	TargetComment TargetKind = "comment"
)

// LikeTarget is the single review or comment a like applies to.
type LikeTarget struct {
	Kind TargetKind
	ID   int64
}

func ReviewTarget(id int64) LikeTarget  { return LikeTarget{Kind: TargetReview, ID: id} }
func CommentTarget(id int64) LikeTarget { return LikeTarget{Kind: TargetComment, ID: id} }

// NewLikeTarget converts the two optional ids of a request into a target.
// Exactly one of them must be set.
func NewLikeTarget(reviewID, commentID *int64) (LikeTarget, error) {
	switch {
	case reviewID != nil && commentID == nil:
		return ReviewTarget(*reviewID), nil
	case commentID != nil && reviewID == nil:
		return CommentTarget(*commentID), nil
	default:
		return LikeTarget{}, ErrInvalidTarget
	}
}

// ParseTargetKind accepts "review" or "comment".
func ParseTargetKind(s string) (TargetKind, error) {
	switch TargetKind(s) {
	case TargetReview, TargetComment:
		return TargetKind(s), nil
	}
	return "", fmt.Errorf("unknown like target type %q", s)
}

// Columns returns the dual-nullable storage shape (review_id, comment_id).
func (t LikeTarget) Columns() (reviewID, commentID *int64) {
	id := t.ID
	if t.Kind == TargetComment {
		return nil, &id
	}
	return &id, nil
}

func (t LikeTarget) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}

type Like struct {
	BaseSimple
	UserID int64
	Target LikeTarget
}

// LikeFromColumns rebuilds a like from its storage row.
func LikeFromColumns(base BaseSimple, userID int64, reviewID, commentID *int64) (*Like, error) {
	target, err := NewLikeTarget(reviewID, commentID)
	if err != nil {
		return nil, fmt.Errorf("like %d: %w", base.ID, err)
	}
	return &Like{BaseSimple: base, UserID: userID, Target: target}, nil
}
