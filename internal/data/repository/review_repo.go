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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.ReviewDetail, error)
	List(ctx context.Context, s query.Search[entity.ReviewDetail]) ([]entity.ReviewDetail, int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)

	// Business queries
	CountByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64]int64, error)
	StatsByMovieID(ctx context.Context, movieID int64) (query.RatingStats, error)
}

const reviewDetailsCTE = `WITH review_details AS (
	SELECT r.id, r.movie_id, r.user_id, r.rating, r.comment, r.created_at,
	       m.title AS movie_title, u.username
	FROM reviews r
	JOIN movies m ON m.id = r.movie_id
	JOIN users u ON u.id = r.user_id
)`

const reviewDetailColumns = "id, movie_id, user_id, rating, comment, created_at, movie_title, username"

type reviewRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReviewRepository(db database.Querier, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (movie_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		review.MovieID,
		review.UserID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", review.UserID),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d by user %d: %w",
			review.MovieID, review.UserID, mapPgError(err))
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.ReviewDetail, error) {
	query := reviewDetailsCTE + ` SELECT ` + reviewDetailColumns + ` FROM review_details WHERE id = $1`

	review, err := scanReviewDetail(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return review, nil
}

func (r *reviewRepository) List(ctx context.Context, s query.Search[entity.ReviewDetail]) ([]entity.ReviewDetail, int64, error) {
	q := buildSearch(reviewDetailsCTE, "review_details", reviewDetailColumns, s)

	var total int64
	if err := r.db.QueryRow(ctx, q.Count, q.CountArgs...).Scan(&total); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	rows, err := r.db.Query(ctx, q.List, q.ListArgs...)
	if err != nil {
		r.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.String("order", s.Order.Key),
			zap.Int("offset", s.Page.Offset()),
			zap.Int("limit", s.Page.Limit()),
		)
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]entity.ReviewDetail, 0, s.Page.Limit())
	for rows.Next() {
		review, err := scanReviewDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, 0, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, *review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, 0, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, total, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, review.ID, review.Rating, review.Comment)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", review.ID),
		)
		return fmt.Errorf("update review %d: %w", review.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", review.ID, ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := exists(ctx, r.db, "reviews", id)
	if err != nil {
		r.log.Error("Failed to check review", zap.Error(err), zap.Int64("review_id", id))
		return false, fmt.Errorf("check review %d: %w", id, err)
	}
	return ok, nil
}

// CountByMovieIDs returns review counts keyed by movie id. Movies without
// reviews are absent from the map.
func (r *reviewRepository) CountByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(movieIDs))
	if len(movieIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT movie_id, COUNT(*)
		FROM reviews
		WHERE movie_id = ANY($1)
		GROUP BY movie_id
	`

	rows, err := r.db.Query(ctx, query, movieIDs)
	if err != nil {
		r.log.Error("Failed to count reviews by movie",
			zap.Error(err),
			zap.Int64s("movie_ids", movieIDs),
		)
		return nil, fmt.Errorf("count reviews by movie: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var movieID, count int64
		if err := rows.Scan(&movieID, &count); err != nil {
			return nil, fmt.Errorf("scan review count: %w", err)
		}
		counts[movieID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review counts: %w", err)
	}

	return counts, nil
}

func (r *reviewRepository) StatsByMovieID(ctx context.Context, movieID int64) (query.RatingStats, error) {
	q := `SELECT ` + query.AverageRatingSQL + `, ` + query.ReviewCountSQL + ` FROM reviews r WHERE r.movie_id = $1`

	var stats query.RatingStats
	if err := r.db.QueryRow(ctx, q, movieID).Scan(&stats.Average, &stats.Count); err != nil {
		r.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return query.RatingStats{}, fmt.Errorf("review stats for movie %d: %w", movieID, err)
	}

	return stats, nil
}

func scanReviewDetail(row pgx.Row) (*entity.ReviewDetail, error) {
	var review entity.ReviewDetail
	err := row.Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.MovieTitle,
		&review.Username,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}
