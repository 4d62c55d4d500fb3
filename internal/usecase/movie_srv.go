package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"
	"cinevault/internal/dto/request"
	"cinevault/internal/dto/response"
	"cinevault/internal/query"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	SearchMovies(ctx context.Context, req *request.MovieSearchRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	BulkCreateMovies(ctx context.Context, req *request.BulkMovieRequest) ([]response.MovieResponse, error)
	UpdateMovie(ctx context.Context, id int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, id int64) error
	DeleteMovies(ctx context.Context, req *request.BulkDeleteRequest) (*response.BulkDeleteResponse, error)
}

type movieService struct {
	repo       *repository.Repository
	strictSort bool
	log        *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	strictSort bool,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:       repo,
		strictSort: strictSort,
		log:        log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	return s.SearchMovies(ctx, &request.MovieSearchRequest{PaginatedRequest: *req})
}

func (s *movieService) SearchMovies(ctx context.Context, req *request.MovieSearchRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	if err := validate(req); err != nil {
		s.log.Warn("Search movies validation failed", zap.Error(err))
		return nil, err
	}

	order, err := resolveOrder(query.MovieSorts, req.OrderBy, s.strictSort)
	if err != nil {
		s.log.Warn("Unknown movie sort key", zap.String("order_by", req.OrderBy))
		return nil, err
	}

	search := query.Search[entity.MovieSummary]{
		Filter: req.Criteria().Filter(),
		Order:  order,
		Page:   req.ToPage(),
	}

	movies, total, err := s.repo.Movie.Search(ctx, search)
	if err != nil {
		s.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("order", order.Key),
			zap.Int("page", search.Page.Number),
			zap.Int("page_size", search.Page.Size),
		)
		return nil, fmt.Errorf("search movies: %w", err)
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("criteria", search.Filter.Len()),
		zap.String("order", order.Key),
		zap.Int("page", search.Page.Number),
	)

	return response.MapPage(movies, search.Page, total, response.MovieToResponse), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindSummaryByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, errNotFound("Movie")
	}

	resp := response.MovieToResponse(*movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie, err := s.newMovie(req)
	if err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(entity.MovieSummary{Movie: *movie})
	return &resp, nil
}

// BulkCreateMovies inserts every movie or none of them.
func (s *movieService) BulkCreateMovies(ctx context.Context, req *request.BulkMovieRequest) ([]response.MovieResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Bulk create validation failed", zap.Error(err))
		return nil, err
	}

	movies := make([]*entity.Movie, len(req.Movies))
	for i := range req.Movies {
		movie, err := s.newMovie(&req.Movies[i])
		if err != nil {
			return nil, err
		}
		movies[i] = movie
	}

	err := s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		for _, movie := range movies {
			if err := tx.Movie.Create(ctx, movie); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("Failed to bulk create movies", zap.Error(err), zap.Int("count", len(movies)))
		return nil, fmt.Errorf("bulk create movies: %w", err)
	}

	s.log.Info("Movies created", zap.Int("count", len(movies)))

	resp := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		resp[i] = response.MovieToResponse(entity.MovieSummary{Movie: *movie})
	}
	return resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err), zap.Int64("movie_id", id))
		return nil, err
	}

	releaseDate, err := parseDate("releaseDate", req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie for update", zap.Error(err), zap.Int64("movie_id", id))
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, errNotFound("Movie")
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if releaseDate != nil {
		movie.ReleaseDate = releaseDate
	}
	if req.Genre != nil {
		movie.Genre = req.Genre
	}
	if req.Director != nil {
		movie.Director = req.Director
	}

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errNotFound("Movie")
		}
		s.log.Error("Failed to update movie", zap.Error(err), zap.Int64("movie_id", id))
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated", zap.Int64("movie_id", id))

	return s.GetMovieByID(ctx, id)
}

// DeleteMovie removes a movie that has no reviews. The row stays locked
// between the dependents check and the delete.
func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	err := s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		locked, err := tx.Movie.LockByIDs(ctx, []int64{id})
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return errNotFound("Movie")
		}

		counts, err := tx.Review.CountByMovieIDs(ctx, locked)
		if err != nil {
			return err
		}
		if counts[id] > 0 {
			return ErrHasDependents
		}

		return tx.Movie.Delete(ctx, id)
	})

	switch {
	case err == nil:
		s.log.Info("Movie deleted", zap.Int64("movie_id", id))
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return errNotFound("Movie")
	case errors.Is(err, ErrHasDependents), errors.Is(err, repository.ErrForeignKey):
		s.log.Warn("Movie delete blocked by reviews", zap.Int64("movie_id", id))
		return ErrHasDependents
	default:
		s.log.Error("Failed to delete movie", zap.Error(err), zap.Int64("movie_id", id))
		return fmt.Errorf("delete movie: %w", err)
	}
}

// DeleteMovies deletes the requested movies that have no reviews and
// reports the rest as blocked or unmatched.
func (s *movieService) DeleteMovies(ctx context.Context, req *request.BulkDeleteRequest) (*response.BulkDeleteResponse, error) {
	if req == nil || len(req.IDs) == 0 {
		return nil, ErrEmptyRequest
	}

	ids := uniqueIDs(req.IDs)
	result := &response.BulkDeleteResponse{Requested: len(ids)}

	err := s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		locked, err := tx.Movie.LockByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return notFound{msg: "No matching movies found"}
		}

		counts, err := tx.Review.CountByMovieIDs(ctx, locked)
		if err != nil {
			return err
		}

		deletable := make([]int64, 0, len(locked))
		blocked := make([]int64, 0)
		for _, id := range locked {
			if counts[id] > 0 {
				blocked = append(blocked, id)
				continue
			}
			deletable = append(deletable, id)
		}

		if _, err := tx.Movie.DeleteByIDs(ctx, deletable); err != nil {
			return err
		}

		unmatched := make([]int64, 0)
		for _, id := range ids {
			if _, found := slices.BinarySearch(locked, id); !found {
				unmatched = append(unmatched, id)
			}
		}
		slices.Sort(unmatched)

		result.DeletedIDs = deletable
		result.BlockedIDs = blocked
		result.UnmatchedIDs = unmatched
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Warn("Bulk delete matched no movies", zap.Int64s("movie_ids", ids))
			return nil, err
		}
		s.log.Error("Failed to bulk delete movies", zap.Error(err), zap.Int64s("movie_ids", ids))
		return nil, fmt.Errorf("bulk delete movies: %w", err)
	}

	result.Deleted = len(result.DeletedIDs)
	result.Blocked = len(result.BlockedIDs)
	result.Unmatched = len(result.UnmatchedIDs)

	s.log.Info("Movies bulk deleted",
		zap.Int("deleted", result.Deleted),
		zap.Int("blocked", result.Blocked),
		zap.Int("unmatched", result.Unmatched),
	)

	return result, nil
}

func (s *movieService) newMovie(req *request.MovieRequest) (*entity.Movie, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	releaseDate, err := parseDate("releaseDate", req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	return &entity.Movie{
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: releaseDate,
		Genre:       req.Genre,
		Director:    req.Director,
	}, nil
}
