package usecase

import (
	"context"
	"errors"
	"fmt"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"
	"cinevault/internal/dto/request"
	"cinevault/internal/dto/response"

	"go.uber.org/zap"
)

type CommentService interface {
	GetComments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	GetCommentByID(ctx context.Context, id int64) (*response.CommentResponse, error)
	CreateComment(ctx context.Context, req *request.CommentRequest) (*response.CommentResponse, error)
	UpdateComment(ctx context.Context, id int64, req *request.CommentUpdateRequest) (*response.CommentResponse, error)
	DeleteComment(ctx context.Context, id int64) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) GetComments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	page := req.ToPage()

	comments, total, err := s.repo.Comment.FindAll(ctx, page)
	if err != nil {
		s.log.Error("Failed to get comments", zap.Error(err), zap.Int("page", page.Number))
		return nil, fmt.Errorf("get comments: %w", err)
	}

	return response.MapPage(comments, page, total, response.CommentToResponse), nil
}

func (s *commentService) GetCommentByID(ctx context.Context, id int64) (*response.CommentResponse, error) {
	comment, err := s.repo.Comment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get comment", zap.Error(err), zap.Int64("comment_id", id))
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if comment == nil {
		return nil, errNotFound("Comment")
	}

	resp := response.CommentToResponse(*comment)
	return &resp, nil
}

func (s *commentService) CreateComment(ctx context.Context, req *request.CommentRequest) (*response.CommentResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create comment validation failed", zap.Error(err))
		return nil, err
	}

	comment := &entity.Comment{
		ReviewID: req.ReviewID,
		UserID:   req.UserID,
		Rating:   req.Rating,
		Content:  req.Content,
	}

	err := s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		ok, err := tx.Review.Exists(ctx, req.ReviewID)
		if err != nil {
			return err
		}
		if !ok {
			return errNotFound("Review")
		}

		ok, err = tx.User.Exists(ctx, req.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return errNotFound("User")
		}

		return tx.Comment.Create(ctx, comment)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, err
		case errors.Is(err, repository.ErrMissingUser):
			return nil, errNotFound("User")
		case errors.Is(err, repository.ErrForeignKey):
			return nil, errNotFound("Review")
		}
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int64("review_id", req.ReviewID),
			zap.Int64("user_id", req.UserID),
		)
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created", zap.Int64("comment_id", comment.ID), zap.Int64("review_id", comment.ReviewID))

	resp := response.CommentToResponse(*comment)
	return &resp, nil
}

func (s *commentService) UpdateComment(ctx context.Context, id int64, req *request.CommentUpdateRequest) (*response.CommentResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update comment validation failed", zap.Error(err), zap.Int64("comment_id", id))
		return nil, err
	}

	comment, err := s.repo.Comment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get comment", zap.Error(err), zap.Int64("comment_id", id))
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if comment == nil {
		return nil, errNotFound("Comment")
	}

	if req.Rating != nil {
		comment.Rating = *req.Rating
	}
	if req.Content != nil {
		comment.Content = req.Content
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errNotFound("Comment")
		}
		s.log.Error("Failed to update comment", zap.Error(err), zap.Int64("comment_id", id))
		return nil, fmt.Errorf("update comment: %w", err)
	}

	resp := response.CommentToResponse(*comment)
	return &resp, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id int64) error {
	if err := s.repo.Comment.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errNotFound("Comment")
		}
		s.log.Error("Failed to delete comment", zap.Error(err), zap.Int64("comment_id", id))
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info("Comment deleted", zap.Int64("comment_id", id))
	return nil
}
