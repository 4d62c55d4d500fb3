package usecase

import (
	"context"
	"errors"
	"fmt"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"
	"cinevault/internal/dto/request"
	"cinevault/internal/dto/response"
	"cinevault/internal/query"

	"go.uber.org/zap"
)

type ReviewService interface {
	GetReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error)
	CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, id int64, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, id int64) error

	GetMovieReviews(ctx context.Context, movieID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetMovieReviewStats(ctx context.Context, movieID int64) (*response.MovieReviewStats, error)
}

type reviewService struct {
	repo       *repository.Repository
	strictSort bool
	log        *zap.Logger
}

func NewReviewService(repo *repository.Repository, strictSort bool, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:       repo,
		strictSort: strictSort,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	return s.list(ctx, query.ReviewCriteria{}, req)
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, errNotFound("Movie")
	}

	return s.list(ctx, query.ReviewCriteria{MovieID: &movieID}, req)
}

func (s *reviewService) list(ctx context.Context, criteria query.ReviewCriteria, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	order, err := resolveOrder(query.ReviewSorts, req.OrderBy, s.strictSort)
	if err != nil {
		s.log.Warn("Unknown review sort key", zap.String("order_by", req.OrderBy))
		return nil, err
	}

	search := query.Search[entity.ReviewDetail]{
		Filter: criteria.Filter(),
		Order:  order,
		Page:   req.ToPage(),
	}

	reviews, total, err := s.repo.Review.List(ctx, search)
	if err != nil {
		s.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.String("order", order.Key),
			zap.Int("page", search.Page.Number),
		)
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	s.log.Debug("Reviews retrieved", zap.Int("count", len(reviews)), zap.Int64("total", total))

	return response.MapPage(reviews, search.Page, total, response.ReviewToResponse), nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error) {
	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.Int64("review_id", id))
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, errNotFound("Review")
	}

	resp := response.ReviewToResponse(*review)
	return &resp, nil
}

// CreateReview checks the movie and the author inside the same transaction
// as the insert.
func (s *reviewService) CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create review validation failed", zap.Error(err))
		return nil, err
	}

	review := &entity.Review{
		MovieID: req.MovieID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	var created *entity.ReviewDetail
	err := s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		movie, err := tx.Movie.FindByID(ctx, req.MovieID)
		if err != nil {
			return err
		}
		if movie == nil {
			return errNotFound("Movie")
		}

		ok, err := tx.User.Exists(ctx, req.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return errNotFound("User")
		}

		if err := tx.Review.Create(ctx, review); err != nil {
			return err
		}

		created, err = tx.Review.FindByID(ctx, review.ID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, err
		case errors.Is(err, repository.ErrMissingUser):
			return nil, errNotFound("User")
		case errors.Is(err, repository.ErrForeignKey):
			return nil, errNotFound("Movie")
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
			zap.Int64("user_id", req.UserID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("movie_id", review.MovieID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(*created)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id int64, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update review validation failed", zap.Error(err), zap.Int64("review_id", id))
		return nil, err
	}

	current, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.Int64("review_id", id))
		return nil, fmt.Errorf("get review: %w", err)
	}
	if current == nil {
		return nil, errNotFound("Review")
	}

	review := current.Review
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = req.Comment
	}

	if err := s.repo.Review.Update(ctx, &review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errNotFound("Review")
		}
		s.log.Error("Failed to update review", zap.Error(err), zap.Int64("review_id", id))
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated", zap.Int64("review_id", id))

	current.Review = review
	resp := response.ReviewToResponse(*current)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	if err := s.repo.Review.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errNotFound("Review")
		}
		s.log.Error("Failed to delete review", zap.Error(err), zap.Int64("review_id", id))
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}

func (s *reviewService) GetMovieReviewStats(ctx context.Context, movieID int64) (*response.MovieReviewStats, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, errNotFound("Movie")
	}

	stats, err := s.repo.Review.StatsByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get review stats", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("review stats: %w", err)
	}

	return &response.MovieReviewStats{
		MovieID:       movieID,
		AverageRating: stats.Average,
		ReviewCount:   stats.Count,
	}, nil
}
