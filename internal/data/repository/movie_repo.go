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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindSummaryByID(ctx context.Context, id int64) (*entity.MovieSummary, error)
	Search(ctx context.Context, s query.Search[entity.MovieSummary]) ([]entity.MovieSummary, int64, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error

	// LockByIDs locks the movie rows that exist among ids for the rest of
	// the transaction and returns their ids in ascending order.
	LockByIDs(ctx context.Context, ids []int64) ([]int64, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

// movieStatsCTE aggregates every movie with its reviews. Detail, list and
// sort all read average_rating from here.
const movieStatsCTE = `WITH movie_stats AS (
	SELECT m.id, m.title, m.description, m.release_date, m.genre, m.director,
	       ` + query.AverageRatingSQL + ` AS average_rating,
	       ` + query.ReviewCountSQL + ` AS review_count
	FROM movies m
	LEFT JOIN reviews r ON r.movie_id = m.id
	GROUP BY m.id
)`

const movieSummaryColumns = "id, title, description, release_date, genre, director, average_rating, review_count"

type movieRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewMovieRepository(db database.Querier, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, description, release_date, genre, director)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.ReleaseDate,
		movie.Genre,
		movie.Director,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", mapPgError(err))
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, release_date, genre, director
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.Genre,
		&movie.Director,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) FindSummaryByID(ctx context.Context, id int64) (*entity.MovieSummary, error) {
	query := movieStatsCTE + ` SELECT ` + movieSummaryColumns + ` FROM movie_stats WHERE id = $1`

	movie, err := scanMovieSummary(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie summary",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie summary: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) Search(ctx context.Context, s query.Search[entity.MovieSummary]) ([]entity.MovieSummary, int64, error) {
	q := buildSearch(movieStatsCTE, "movie_stats", movieSummaryColumns, s)

	var total int64
	if err := r.db.QueryRow(ctx, q.Count, q.CountArgs...).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err), zap.Int("criteria", s.Filter.Len()))
		return nil, 0, fmt.Errorf("failed to count movies: %w", err)
	}

	rows, err := r.db.Query(ctx, q.List, q.ListArgs...)
	if err != nil {
		r.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("order", s.Order.Key),
			zap.Int("offset", s.Page.Offset()),
			zap.Int("limit", s.Page.Limit()),
		)
		return nil, 0, fmt.Errorf("failed to search movies: %w", err)
	}
	defer rows.Close()

	movies := make([]entity.MovieSummary, 0, s.Page.Limit())
	for rows.Next() {
		movie, err := scanMovieSummary(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, 0, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, *movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.String("order", s.Order.Key),
	)

	return movies, total, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, release_date = $4, genre = $5, director = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.ReleaseDate,
		movie.Genre,
		movie.Director,
	)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("failed to update movie: %w", mapPgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", movie.ID, ErrNotFound)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		err = mapPgError(err)
		if !errors.Is(err, ErrForeignKey) {
			r.log.Error("Failed to delete movie",
				zap.Error(err),
				zap.Int64("movie_id", id),
			)
		}
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func (r *movieRepository) LockByIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	query := `SELECT id FROM movies WHERE id = ANY($1) ORDER BY id FOR UPDATE`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to lock movies", zap.Error(err), zap.Int64s("movie_ids", ids))
		return nil, fmt.Errorf("failed to lock movies: %w", err)
	}

	locked, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		r.log.Error("Failed to scan locked movie ids", zap.Error(err))
		return nil, fmt.Errorf("failed to lock movies: %w", err)
	}

	return locked, nil
}

func (r *movieRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = ANY($1)`, ids)
	if err != nil {
		r.log.Error("Failed to delete movies", zap.Error(err), zap.Int64s("movie_ids", ids))
		return 0, fmt.Errorf("failed to delete movies: %w", mapPgError(err))
	}

	r.log.Info("Movies deleted", zap.Int64("count", result.RowsAffected()))
	return result.RowsAffected(), nil
}

func scanMovieSummary(row pgx.Row) (*entity.MovieSummary, error) {
	var movie entity.MovieSummary
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.Genre,
		&movie.Director,
		&movie.AverageRating,
		&movie.ReviewCount,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
