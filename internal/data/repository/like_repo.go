package repository

import (
	"context"
	"errors"
	"fmt"

	"cinevault/internal/data/entity"
	"cinevault/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// LikeRepository stores likes in the dual-nullable (review_id, comment_id)
// shape. Callers only ever see entity.LikeTarget.
type LikeRepository interface {
	// Create fails with ErrDuplicate when the user already likes the target
	// and with ErrForeignKey when the user or target does not exist.
	Create(ctx context.Context, like *entity.Like) error
	Find(ctx context.Context, userID int64, target entity.LikeTarget) (*entity.Like, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, target entity.LikeTarget) (int64, error)
}

type likeRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewLikeRepository(db database.Querier, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

// targetColumn is the storage column holding ids of kind.
func targetColumn(kind entity.TargetKind) (string, error) {
	switch kind {
	case entity.TargetReview:
		return "review_id", nil
	case entity.TargetComment:
		return "comment_id", nil
	}
	return "", entity.ErrInvalidTarget
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	if _, err := targetColumn(like.Target.Kind); err != nil {
		return err
	}
	reviewID, commentID := like.Target.Columns()

	query := `
		INSERT INTO likes (user_id, review_id, comment_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, like.UserID, reviewID, commentID).Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		err = mapPgError(err)
		if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrForeignKey) {
			r.log.Warn("Like rejected by constraint",
				zap.Error(err),
				zap.Int64("user_id", like.UserID),
				zap.Stringer("target", like.Target),
			)
		} else {
			r.log.Error("Failed to create like",
				zap.Error(err),
				zap.Int64("user_id", like.UserID),
				zap.Stringer("target", like.Target),
			)
		}
		return fmt.Errorf("create like %s by user %d: %w", like.Target, like.UserID, err)
	}

	return nil
}

func (r *likeRepository) Find(ctx context.Context, userID int64, target entity.LikeTarget) (*entity.Like, error) {
	column, err := targetColumn(target.Kind)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, review_id, comment_id, created_at
		FROM likes
		WHERE user_id = $1 AND ` + column + ` = $2
	`

	var (
		base                entity.BaseSimple
		likeUserID          int64
		reviewID, commentID *int64
	)
	err = r.db.QueryRow(ctx, query, userID, target.ID).Scan(
		&base.ID,
		&likeUserID,
		&reviewID,
		&commentID,
		&base.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find like",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Stringer("target", target),
		)
		return nil, fmt.Errorf("find like %s by user %d: %w", target, userID, err)
	}

	return entity.LikeFromColumns(base, likeUserID, reviewID, commentID)
}

func (r *likeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM likes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete like", zap.Error(err), zap.Int64("like_id", id))
		return fmt.Errorf("delete like %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("like %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *likeRepository) Count(ctx context.Context, target entity.LikeTarget) (int64, error) {
	column, err := targetColumn(target.Kind)
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE `+column+` = $1`, target.ID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count likes", zap.Error(err), zap.Stringer("target", target))
		return 0, fmt.Errorf("count likes for %s: %w", target, err)
	}

	return count, nil
}
