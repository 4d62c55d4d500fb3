package usecase

import (
	"context"
	"fmt"
	"testing"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/memstore"
	"cinevault/internal/data/repository"
	"cinevault/internal/dto/request"
	"cinevault/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, strictSort bool) (*Service, *repository.Repository) {
	t.Helper()
	repo := memstore.New(zap.NewNop()).Repository()
	config := &utils.Config{Query: utils.QueryConfig{StrictSort: strictSort}}
	return NewService(repo, config, zap.NewNop()), repo
}

// directTx runs fn on the wrapped repositories without a transaction so
// stubbed repositories stay in place.
type directTx struct{ repo *repository.Repository }

func (d directTx) WithinTx(_ context.Context, fn func(repo *repository.Repository) error) error {
	return fn(d.repo)
}

// withStubs copies repo, applies override and routes transactions through
// the copy.
func withStubs(repo *repository.Repository, override func(r *repository.Repository)) *repository.Repository {
	stubbed := *repo
	override(&stubbed)
	stubbed.Tx = directTx{repo: &stubbed}
	return &stubbed
}

// racingLikes behaves as if another request inserted the same like between
// Find and Create.
type racingLikes struct {
	repository.LikeRepository
	createErr error
}

func (r racingLikes) Find(context.Context, int64, entity.LikeTarget) (*entity.Like, error) {
	return nil, nil
}

func (r racingLikes) Create(context.Context, *entity.Like) error {
	return r.createErr
}

// racingMovies behaves as if a review landed between the dependents check
// and the delete.
type racingMovies struct {
	repository.MovieRepository
}

func (r racingMovies) Delete(_ context.Context, id int64) error {
	return fmt.Errorf("movie %d has reviews: %w", id, repository.ErrForeignKey)
}

func ptr[T any](v T) *T { return &v }

func seedUser(t *testing.T, s *Service, name string) int64 {
	t.Helper()
	user, err := s.User.CreateUser(context.Background(), &request.UserRequest{
		Username: name,
		Email:    name + "@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return user.ID
}

func seedMovie(t *testing.T, s *Service, title string) int64 {
	t.Helper()
	movie, err := s.Movie.CreateMovie(context.Background(), &request.MovieRequest{Title: title})
	require.NoError(t, err)
	return movie.ID
}

func seedReview(t *testing.T, s *Service, movieID, userID int64, rating int) int64 {
	t.Helper()
	review, err := s.Review.CreateReview(context.Background(), &request.ReviewRequest{
		MovieID: movieID,
		UserID:  userID,
		Rating:  rating,
	})
	require.NoError(t, err)
	return review.ID
}
