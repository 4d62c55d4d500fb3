package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"
	"cinevault/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	repo    *repository.Repository
	user    *entity.User
	movie   *entity.Movie
	review  *entity.Review
	comment *entity.Comment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := New(zap.NewNop(), WithClock(func() time.Time { return fixed })).Repository()

	f := &fixture{
		repo:  repo,
		user:  &entity.User{Username: "alice", Email: "alice@example.com"},
		movie: &entity.Movie{Title: "The Matrix"},
	}
	require.NoError(t, repo.User.Create(ctx, f.user))
	require.NoError(t, repo.Movie.Create(ctx, f.movie))

	f.review = &entity.Review{MovieID: f.movie.ID, UserID: f.user.ID, Rating: 8}
	require.NoError(t, repo.Review.Create(ctx, f.review))

	f.comment = &entity.Comment{ReviewID: f.review.ID, UserID: f.user.ID, Rating: 7}
	require.NoError(t, repo.Comment.Create(ctx, f.comment))

	return f
}

func TestCreateAssignsIdentityAndTimestamp(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, int64(1), f.user.ID)
	assert.Equal(t, int64(1), f.review.ID)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), f.review.CreatedAt)

	second := &entity.Movie{Title: "Amelie"}
	require.NoError(t, f.repo.Movie.Create(context.Background(), second))
	assert.Equal(t, int64(2), second.ID)
}

func TestReviewRequiresMovieAndUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.repo.Review.Create(ctx, &entity.Review{MovieID: 99, UserID: f.user.ID, Rating: 5})
	assert.ErrorIs(t, err, repository.ErrForeignKey)

	assert.NotErrorIs(t, err, repository.ErrMissingUser)

	err = f.repo.Review.Create(ctx, &entity.Review{MovieID: f.movie.ID, UserID: 99, Rating: 5})
	assert.ErrorIs(t, err, repository.ErrMissingUser)
}

func TestLikeConstraints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	like := &entity.Like{UserID: f.user.ID, Target: entity.ReviewTarget(f.review.ID)}
	require.NoError(t, f.repo.Like.Create(ctx, like))

	t.Run("duplicate", func(t *testing.T) {
		err := f.repo.Like.Create(ctx, &entity.Like{UserID: f.user.ID, Target: entity.ReviewTarget(f.review.ID)})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("same id on the other kind is a different target", func(t *testing.T) {
		err := f.repo.Like.Create(ctx, &entity.Like{UserID: f.user.ID, Target: entity.CommentTarget(f.comment.ID)})
		assert.NoError(t, err)
	})

	t.Run("missing target", func(t *testing.T) {
		err := f.repo.Like.Create(ctx, &entity.Like{UserID: f.user.ID, Target: entity.ReviewTarget(42)})
		assert.ErrorIs(t, err, repository.ErrForeignKey)
	})

	t.Run("missing user", func(t *testing.T) {
		err := f.repo.Like.Create(ctx, &entity.Like{UserID: 42, Target: entity.ReviewTarget(f.review.ID)})
		assert.ErrorIs(t, err, repository.ErrMissingUser)
	})

	t.Run("malformed target", func(t *testing.T) {
		err := f.repo.Like.Create(ctx, &entity.Like{UserID: f.user.ID, Target: entity.LikeTarget{Kind: "movie", ID: 1}})
		assert.ErrorIs(t, err, entity.ErrInvalidTarget)
	})

	found, err := f.repo.Like.Find(ctx, f.user.ID, entity.ReviewTarget(f.review.ID))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, like.ID, found.ID)

	count, err := f.repo.Like.Count(ctx, entity.ReviewTarget(f.review.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMovieDeleteIsRestricted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.repo.Movie.Delete(ctx, f.movie.ID)
	assert.ErrorIs(t, err, repository.ErrForeignKey)

	free := &entity.Movie{Title: "Amelie"}
	require.NoError(t, f.repo.Movie.Create(ctx, free))

	_, err = f.repo.Movie.DeleteByIDs(ctx, []int64{free.ID, f.movie.ID})
	assert.ErrorIs(t, err, repository.ErrForeignKey)

	movie, err := f.repo.Movie.FindByID(ctx, free.ID)
	require.NoError(t, err)
	assert.NotNil(t, movie, "a failed bulk delete removes nothing")

	n, err := f.repo.Movie.DeleteByIDs(ctx, []int64{free.ID, 404})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = f.repo.Movie.Delete(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := &entity.User{Username: "bob", Email: "bob@example.com"}
	require.NoError(t, f.repo.User.Create(ctx, other))
	require.NoError(t, f.repo.Like.Create(ctx, &entity.Like{UserID: other.ID, Target: entity.CommentTarget(f.comment.ID)}))

	require.NoError(t, f.repo.User.Delete(ctx, f.user.ID))

	ok, err := f.repo.Review.Exists(ctx, f.review.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.repo.Comment.Exists(ctx, f.comment.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := f.repo.Like.Count(ctx, entity.CommentTarget(f.comment.ID))
	require.NoError(t, err)
	assert.Zero(t, count, "likes on removed comments go with them")

	require.NoError(t, f.repo.Movie.Delete(ctx, f.movie.ID), "movie is free once its reviews are gone")
}

func TestWithinTxRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := f.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		require.NoError(t, tx.Movie.Create(ctx, &entity.Movie{Title: "Rolled back"}))
		require.NoError(t, tx.Review.Delete(ctx, f.review.ID))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	movies, total, err := f.repo.Movie.Search(ctx, query.Search[entity.MovieSummary]{Page: query.NewPage(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "The Matrix", movies[0].Title)

	ok, err := f.repo.Review.Exists(ctx, f.review.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	next := &entity.Movie{Title: "After rollback"}
	require.NoError(t, f.repo.Movie.Create(ctx, next))
	assert.Equal(t, int64(2), next.ID, "sequences are restored too")
}

func TestWithinTxRestoresOnPanic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = f.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
			_ = tx.Movie.Create(ctx, &entity.Movie{Title: "Half done"})
			panic("boom")
		})
	})

	_, total, err := f.repo.Movie.Search(ctx, query.Search[entity.MovieSummary]{Page: query.NewPage(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestWithinTxNested(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		return tx.Tx.WithinTx(ctx, func(inner *repository.Repository) error {
			return inner.Movie.Create(ctx, &entity.Movie{Title: "Nested"})
		})
	})
	require.NoError(t, err)

	_, total, err := f.repo.Movie.Search(ctx, query.Search[entity.MovieSummary]{Page: query.NewPage(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestWithinTxCanceledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := f.repo.Tx.WithinTx(ctx, func(*repository.Repository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestSummaryAggregatesRatings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Review.Create(ctx, &entity.Review{MovieID: f.movie.ID, UserID: f.user.ID, Rating: 5}))

	summary, err := f.repo.Movie.FindSummaryByID(ctx, f.movie.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.ReviewCount)
	assert.InDelta(t, 6.5, summary.AverageRating, 1e-9)

	stats, err := f.repo.Review.StatsByMovieID(ctx, f.movie.ID)
	require.NoError(t, err)
	assert.Equal(t, summary.AverageRating, stats.Average)
	assert.Equal(t, summary.ReviewCount, stats.Count)

	counts, err := f.repo.Review.CountByMovieIDs(ctx, []int64{f.movie.ID, 404})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{f.movie.ID: 2}, counts)
}
