package usecase

import (
	"cinevault/internal/data/repository"
	"cinevault/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User    UserService
	Movie   MovieService
	Review  ReviewService
	Comment CommentService
	Like    LikeService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	strict := config.Query.StrictSort
	return &Service{
		User:    NewUserService(repo.User, strict, log),
		Movie:   NewMovieService(repo, strict, log),
		Review:  NewReviewService(repo, strict, log),
		Comment: NewCommentService(repo, log),
		Like:    NewLikeService(repo, log),
	}
}
