package usecase

import (
	"context"
	"testing"

	"cinevault/internal/data/repository"
	"cinevault/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDeleteMovieGuard(t *testing.T) {
	s, _ := newTestService(t, false)
	ctx := context.Background()

	userID := seedUser(t, s, "alice")
	reviewed := seedMovie(t, s, "Heat")
	seedReview(t, s, reviewed, userID, 8)
	free := seedMovie(t, s, "Ronin")

	err := s.Movie.DeleteMovie(ctx, reviewed)
	assert.ErrorIs(t, err, ErrHasDependents)

	require.NoError(t, s.Movie.DeleteMovie(ctx, free))

	_, err = s.Movie.GetMovieByID(ctx, free)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Movie.DeleteMovie(ctx, free)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Movie not found")
}

// A review inserted after the dependents check trips the store's RESTRICT
// constraint and still reports HasDependents.
func TestDeleteMovieRestrictViolation(t *testing.T) {
	s, repo := newTestService(t, false)
	ctx := context.Background()

	movieID := seedMovie(t, s, "Heat")

	stubbed := withStubs(repo, func(r *repository.Repository) {
		r.Movie = racingMovies{MovieRepository: repo.Movie}
	})
	svc := NewMovieService(stubbed, false, zap.NewNop())

	err := svc.DeleteMovie(ctx, movieID)
	assert.ErrorIs(t, err, ErrHasDependents)

	_, err = s.Movie.GetMovieByID(ctx, movieID)
	assert.NoError(t, err)
}

func TestDeleteMoviesPartitions(t *testing.T) {
	s, _ := newTestService(t, false)
	ctx := context.Background()

	userID := seedUser(t, s, "alice")
	a := seedMovie(t, s, "A")
	b := seedMovie(t, s, "B")
	seedReview(t, s, b, userID, 5)

	result, err := s.Movie.DeleteMovies(ctx, &request.BulkDeleteRequest{IDs: []int64{a, b, 404, a}})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, 1, result.Blocked)
	assert.Equal(t, 1, result.Unmatched)
	assert.Equal(t, []int64{a}, result.DeletedIDs)
	assert.Equal(t, []int64{b}, result.BlockedIDs)
	assert.Equal(t, []int64{404}, result.UnmatchedIDs)

	_, err = s.Movie.GetMovieByID(ctx, b)
	assert.NoError(t, err, "blocked movie stays")
}

func TestDeleteMoviesErrors(t *testing.T) {
	s, _ := newTestService(t, false)
	ctx := context.Background()

	_, err := s.Movie.DeleteMovies(ctx, &request.BulkDeleteRequest{})
	assert.ErrorIs(t, err, ErrEmptyRequest)

	_, err = s.Movie.DeleteMovies(ctx, &request.BulkDeleteRequest{IDs: []int64{7, 8}})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "No matching movies found")
}

func TestMovieRatingIsConsistent(t *testing.T) {
	s, _ := newTestService(t, false)
	ctx := context.Background()

	userID := seedUser(t, s, "alice")
	movieID := seedMovie(t, s, "Heat")
	seedReview(t, s, movieID, userID, 10)
	seedReview(t, s, movieID, userID, 7)
	seedReview(t, s, movieID, userID, 8)
	empty := seedMovie(t, s, "Ronin")

	detail, err := s.Movie.GetMovieByID(ctx, movieID)
	require.NoError(t, err)
	assert.InDelta(t, 25.0/3.0, detail.AverageRating, 1e-9)
	assert.Equal(t, int64(3), detail.ReviewCount)

	stats, err := s.Review.GetMovieReviewStats(ctx, movieID)
	require.NoError(t, err)
	assert.Equal(t, detail.AverageRating, stats.AverageRating)
	assert.Equal(t, detail.ReviewCount, stats.ReviewCount)

	list, err := s.Movie.GetMovies(ctx, &request.PaginatedRequest{OrderBy: "rating_desc"})
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, movieID, list.Data[0].ID)
	assert.Equal(t, detail.AverageRating, list.Data[0].AverageRating)
	assert.Equal(t, empty, list.Data[1].ID)
	assert.Zero(t, list.Data[1].AverageRating)
	assert.Zero(t, list.Data[1].ReviewCount)
}

func TestSearchMoviesRatingDesc(t *testing.T) {
	s, _ := newTestService(t, false)
	ctx := context.Background()

	userID := seedUser(t, s, "alice")
	for title, rating := range map[string]int{"Low": 3, "High": 9, "Mid": 6} {
		seedReview(t, s, seedMovie(t, s, title), userID, rating)
	}

	result, err := s.Movie.SearchMovies(ctx, &request.MovieSearchRequest{
		PaginatedRequest: request.PaginatedRequest{OrderBy: "rating_desc"},
		AverageRating:    ptr(5.0),
	})
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "High", result.Data[0].Title)
	assert.Equal(t, "Mid", result.Data[1].Title)
	assert.GreaterOrEqual(t, result.Data[0].AverageRating, result.Data[1].AverageRating)
	assert.Equal(t, int64(2), result.Pagination.Total)
}

func TestUnknownOrderBy(t *testing.T) {
	t.Run("falls back to default", func(t *testing.T) {
		s, _ := newTestService(t, false)
		seedMovie(t, s, "Heat")

		result, err := s.Movie.GetMovies(context.Background(), &request.PaginatedRequest{OrderBy: "popularity"})
		require.NoError(t, err)
		assert.Len(t, result.Data, 1)
	})

	t.Run("strict mode rejects", func(t *testing.T) {
		s, _ := newTestService(t, true)

		_, err := s.Movie.GetMovies(context.Background(), &request.PaginatedRequest{OrderBy: "popularity"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid orderBy", verr.Message)
		assert.Contains(t, verr.Details[0], "rating_desc")
	})
}

func TestMoviePagination(t *testing.T) {
	s, _ := newTestService(t, false)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C", "D", "E"} {
		seedMovie(t, s, title)
	}

	result, err := s.Movie.GetMovies(ctx, &request.PaginatedRequest{Page: 3, PageSize: 2, OrderBy: "title"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "E", result.Data[0].Title)
	assert.Equal(t, 3, result.Pagination.TotalPages)

	result, err = s.Movie.GetMovies(ctx, &request.PaginatedRequest{Page: 4, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.NotNil(t, result.Data)
}

func TestCreateMovieValidation(t *testing.T) {
	s, _ := newTestService(t, false)
	ctx := context.Background()

	_, err := s.Movie.CreateMovie(ctx, &request.MovieRequest{Title: ""})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Details)

	_, err = s.Movie.CreateMovie(ctx, &request.MovieRequest{Title: "Heat", ReleaseDate: ptr("1995-13-40")})
	assert.ErrorAs(t, err, &verr)

	movie, err := s.Movie.CreateMovie(ctx, &request.MovieRequest{Title: "Heat", ReleaseDate: ptr("1995-12-15")})
	require.NoError(t, err)
	assert.Equal(t, "1995-12-15", *movie.ReleaseDate)
}

func TestBulkCreateIsAtomic(t *testing.T) {
	s, _ := newTestService(t, false)
	ctx := context.Background()

	created, err := s.Movie.BulkCreateMovies(ctx, &request.BulkMovieRequest{Movies: []request.MovieRequest{
		{Title: "Heat"}, {Title: "Ronin"},
	}})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	_, err = s.Movie.BulkCreateMovies(ctx, &request.BulkMovieRequest{Movies: []request.MovieRequest{
		{Title: "Thief"}, {Title: ""},
	}})
	require.Error(t, err)

	list, err := s.Movie.GetMovies(ctx, &request.PaginatedRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Pagination.Total)
}

func TestUpdateMovieKeepsUnsetFields(t *testing.T) {
	s, _ := newTestService(t, false)
	ctx := context.Background()

	movie, err := s.Movie.CreateMovie(ctx, &request.MovieRequest{Title: "Heat", Director: ptr("Michael Mann")})
	require.NoError(t, err)

	updated, err := s.Movie.UpdateMovie(ctx, movie.ID, &request.MovieUpdateRequest{Genre: ptr("Crime")})
	require.NoError(t, err)
	assert.Equal(t, "Heat", updated.Title)
	assert.Equal(t, "Michael Mann", *updated.Director)
	assert.Equal(t, "Crime", *updated.Genre)

	_, err = s.Movie.UpdateMovie(ctx, 404, &request.MovieUpdateRequest{Genre: ptr("Crime")})
	assert.ErrorIs(t, err, ErrNotFound)
}
