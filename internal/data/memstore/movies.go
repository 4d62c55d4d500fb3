package memstore

import (
	"context"
	"fmt"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"
	"cinevault/internal/query"
)

type movieRepo struct{ view }

func (r movieRepo) Create(_ context.Context, movie *entity.Movie) error {
	defer r.lock()()
	t := r.tables()

	t.seq.movie++
	movie.ID = t.seq.movie
	t.movies[movie.ID] = *movie
	return nil
}

func (r movieRepo) FindByID(_ context.Context, id int64) (*entity.Movie, error) {
	defer r.lock()()

	movie, ok := r.tables().movies[id]
	if !ok {
		return nil, nil
	}
	return &movie, nil
}

func (r movieRepo) FindSummaryByID(_ context.Context, id int64) (*entity.MovieSummary, error) {
	defer r.lock()()
	t := r.tables()

	movie, ok := t.movies[id]
	if !ok {
		return nil, nil
	}
	summary := t.summarize(movie, t.ratingsByMovie())
	return &summary, nil
}

func (r movieRepo) Search(_ context.Context, s query.Search[entity.MovieSummary]) ([]entity.MovieSummary, int64, error) {
	defer r.lock()()
	t := r.tables()

	ratings := t.ratingsByMovie()
	movies := make([]entity.MovieSummary, 0, len(t.movies))
	for _, id := range sortedKeys(t.movies) {
		movies = append(movies, t.summarize(t.movies[id], ratings))
	}

	page, total := s.Run(movies)
	return page, total, nil
}

func (r movieRepo) Update(_ context.Context, movie *entity.Movie) error {
	defer r.lock()()
	t := r.tables()

	if _, ok := t.movies[movie.ID]; !ok {
		return fmt.Errorf("movie %d: %w", movie.ID, repository.ErrNotFound)
	}
	t.movies[movie.ID] = *movie
	return nil
}

// Delete refuses movies that still have reviews, like ON DELETE RESTRICT.
func (r movieRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	t := r.tables()

	if _, ok := t.movies[id]; !ok {
		return fmt.Errorf("movie %d: %w", id, repository.ErrNotFound)
	}
	if t.reviewCount(id) > 0 {
		return fmt.Errorf("movie %d has reviews: %w", id, repository.ErrForeignKey)
	}
	delete(t.movies, id)
	return nil
}

// LockByIDs only filters to existing ids; the store mutex already
// serializes the enclosing transaction.
func (r movieRepo) LockByIDs(_ context.Context, ids []int64) ([]int64, error) {
	defer r.lock()()
	t := r.tables()

	found := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := t.movies[id]; ok {
			found[id] = struct{}{}
		}
	}
	return sortedKeys(found), nil
}

// DeleteByIDs is all-or-nothing: one restricted movie fails the whole call.
func (r movieRepo) DeleteByIDs(_ context.Context, ids []int64) (int64, error) {
	defer r.lock()()
	t := r.tables()

	for _, id := range ids {
		if _, ok := t.movies[id]; ok && t.reviewCount(id) > 0 {
			return 0, fmt.Errorf("movie %d has reviews: %w", id, repository.ErrForeignKey)
		}
	}

	var deleted int64
	for _, id := range ids {
		if _, ok := t.movies[id]; ok {
			delete(t.movies, id)
			deleted++
		}
	}
	return deleted, nil
}

func (t *tables) ratingsByMovie() map[int64][]int {
	ratings := make(map[int64][]int)
	for _, id := range sortedKeys(t.reviews) {
		review := t.reviews[id]
		ratings[review.MovieID] = append(ratings[review.MovieID], review.Rating)
	}
	return ratings
}

func (t *tables) summarize(movie entity.Movie, ratings map[int64][]int) entity.MovieSummary {
	stats := query.Aggregate(ratings[movie.ID])
	return entity.MovieSummary{
		Movie:         movie,
		AverageRating: stats.Average,
		ReviewCount:   stats.Count,
	}
}
