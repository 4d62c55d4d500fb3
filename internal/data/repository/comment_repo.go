package repository

import (
	"context"
	"errors"
	"fmt"

	"cinevault/internal/data/entity"
	"cinevault/internal/query"
	"cinevault/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)
	FindAll(ctx context.Context, page query.Page) ([]entity.Comment, int64, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

const commentColumns = "id, review_id, user_id, rating, content, created_at"

type commentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCommentRepository(db database.Querier, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (review_id, user_id, rating, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		comment.ReviewID,
		comment.UserID,
		comment.Rating,
		comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int64("review_id", comment.ReviewID),
			zap.Int64("user_id", comment.UserID),
		)
		return fmt.Errorf("create comment on review %d: %w", comment.ReviewID, mapPgError(err))
	}

	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	comment, err := scanComment(r.db.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find comment by ID", zap.Error(err), zap.Int64("comment_id", id))
		return nil, fmt.Errorf("find comment %d: %w", id, err)
	}
	return comment, nil
}

// FindAll pages through comments newest first.
func (r *commentRepository) FindAll(ctx context.Context, page query.Page) ([]entity.Comment, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&total); err != nil {
		r.log.Error("Failed to count comments", zap.Error(err))
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+commentColumns+` FROM comments ORDER BY created_at DESC, id ASC LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		r.log.Error("Failed to find comments", zap.Error(err))
		return nil, 0, fmt.Errorf("find comments: %w", err)
	}
	defer rows.Close()

	comments := make([]entity.Comment, 0, page.Limit())
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *comment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, total, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result, err := r.db.Exec(ctx,
		`UPDATE comments SET rating = $2, content = $3 WHERE id = $1`,
		comment.ID, comment.Rating, comment.Content)
	if err != nil {
		r.log.Error("Failed to update comment", zap.Error(err), zap.Int64("comment_id", comment.ID))
		return fmt.Errorf("update comment %d: %w", comment.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %d: %w", comment.ID, ErrNotFound)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete comment", zap.Error(err), zap.Int64("comment_id", id))
		return fmt.Errorf("delete comment %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *commentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := exists(ctx, r.db, "comments", id)
	if err != nil {
		r.log.Error("Failed to check comment", zap.Error(err), zap.Int64("comment_id", id))
		return false, fmt.Errorf("check comment %d: %w", id, err)
	}
	return ok, nil
}

func scanComment(row pgx.Row) (*entity.Comment, error) {
	var comment entity.Comment
	err := row.Scan(
		&comment.ID,
		&comment.ReviewID,
		&comment.UserID,
		&comment.Rating,
		&comment.Content,
		&comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
