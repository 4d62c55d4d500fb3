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

// LikeService keeps at most one like per user and target. Every like names
// exactly one review or comment, and only existing users may like.
type LikeService interface {
	Like(ctx context.Context, req *request.LikeRequest) (*response.LikeResponse, error)
	Unlike(ctx context.Context, req *request.LikeRequest) error
	CountLikes(ctx context.Context, target entity.LikeTarget) (*response.LikeCountResponse, error)
}

type likeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLikeService(repo *repository.Repository, log *zap.Logger) LikeService {
	return &likeService{
		repo: repo,
		log:  log.With(zap.String("service", "like")),
	}
}

// Like rejects a malformed target before touching storage. The existence
// checks, the duplicate check and the insert share one transaction, and the
// store's unique index settles concurrent duplicates.
func (s *likeService) Like(ctx context.Context, req *request.LikeRequest) (*response.LikeResponse, error) {
	target, err := req.Target()
	if err != nil {
		s.log.Warn("Invalid like target", zap.Int64("user_id", req.UserID))
		return nil, ErrInvalidTarget
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	like := &entity.Like{UserID: req.UserID, Target: target}

	err = s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		ok, err := tx.User.Exists(ctx, req.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnknownUser
		}

		ok, err = targetExists(ctx, tx, target)
		if err != nil {
			return err
		}
		if !ok {
			return errNotFound(targetName(target))
		}

		existing, err := tx.Like.Find(ctx, req.UserID, target)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateLike
		}

		return tx.Like.Create(ctx, like)
	})

	switch {
	case err == nil:
	case errors.Is(err, ErrUnknownUser), errors.Is(err, ErrDuplicateLike), errors.Is(err, ErrNotFound):
		s.log.Warn("Like rejected",
			zap.Error(err),
			zap.Int64("user_id", req.UserID),
			zap.Stringer("target", target),
		)
		return nil, err
	case errors.Is(err, repository.ErrDuplicate):
		return nil, ErrDuplicateLike
	case errors.Is(err, repository.ErrMissingUser):
		return nil, ErrUnknownUser
	case errors.Is(err, repository.ErrForeignKey):
		return nil, errNotFound(targetName(target))
	case errors.Is(err, entity.ErrInvalidTarget):
		return nil, ErrInvalidTarget
	default:
		s.log.Error("Failed to like",
			zap.Error(err),
			zap.Int64("user_id", req.UserID),
			zap.Stringer("target", target),
		)
		return nil, fmt.Errorf("like %s: %w", target, err)
	}

	s.log.Info("Like created",
		zap.Int64("like_id", like.ID),
		zap.Int64("user_id", like.UserID),
		zap.Stringer("target", target),
	)

	resp := response.LikeToResponse(*like)
	return &resp, nil
}

// Unlike removes the like on exactly the named target.
func (s *likeService) Unlike(ctx context.Context, req *request.LikeRequest) error {
	target, err := req.Target()
	if err != nil {
		return ErrInvalidTarget
	}
	if err := validate(req); err != nil {
		return err
	}

	err = s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		like, err := tx.Like.Find(ctx, req.UserID, target)
		if err != nil {
			return err
		}
		if like == nil {
			return errNotFound("Like")
		}
		return tx.Like.Delete(ctx, like.ID)
	})

	switch {
	case err == nil:
		s.log.Info("Like removed", zap.Int64("user_id", req.UserID), zap.Stringer("target", target))
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return errNotFound("Like")
	default:
		s.log.Error("Failed to unlike",
			zap.Error(err),
			zap.Int64("user_id", req.UserID),
			zap.Stringer("target", target),
		)
		return fmt.Errorf("unlike %s: %w", target, err)
	}
}

func (s *likeService) CountLikes(ctx context.Context, target entity.LikeTarget) (*response.LikeCountResponse, error) {
	count, err := s.repo.Like.Count(ctx, target)
	if err != nil {
		s.log.Error("Failed to count likes", zap.Error(err), zap.Stringer("target", target))
		return nil, fmt.Errorf("count likes: %w", err)
	}

	return &response.LikeCountResponse{
		TargetType: string(target.Kind),
		TargetID:   target.ID,
		Count:      count,
	}, nil
}

func targetExists(ctx context.Context, tx *repository.Repository, target entity.LikeTarget) (bool, error) {
	switch target.Kind {
	case entity.TargetReview:
		return tx.Review.Exists(ctx, target.ID)
	case entity.TargetComment:
		return tx.Comment.Exists(ctx, target.ID)
	}
	return false, entity.ErrInvalidTarget
}

func targetName(target entity.LikeTarget) string {
	if target.Kind == entity.TargetComment {
		return "Comment"
	}
	return "Review"
}
