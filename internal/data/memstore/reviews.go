package memstore

import (
	"context"
	"fmt"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"
	"cinevault/internal/query"
)

type reviewRepo struct{ view }

func (r reviewRepo) Create(_ context.Context, review *entity.Review) error {
	defer r.lock()()
	t := r.tables()

	if _, ok := t.movies[review.MovieID]; !ok {
		return fmt.Errorf("review movie %d: %w", review.MovieID, repository.ErrForeignKey)
	}
	if _, ok := t.users[review.UserID]; !ok {
		return fmt.Errorf("review user %d: %w", review.UserID, repository.ErrMissingUser)
	}

	t.seq.review++
	review.ID = t.seq.review
	review.CreatedAt = r.s.stamp()
	t.reviews[review.ID] = *review
	return nil
}

func (r reviewRepo) FindByID(_ context.Context, id int64) (*entity.ReviewDetail, error) {
	defer r.lock()()
	t := r.tables()

	review, ok := t.reviews[id]
	if !ok {
		return nil, nil
	}
	detail := t.detail(review)
	return &detail, nil
}

func (r reviewRepo) List(_ context.Context, s query.Search[entity.ReviewDetail]) ([]entity.ReviewDetail, int64, error) {
	defer r.lock()()
	t := r.tables()

	reviews := make([]entity.ReviewDetail, 0, len(t.reviews))
	for _, id := range sortedKeys(t.reviews) {
		reviews = append(reviews, t.detail(t.reviews[id]))
	}

	page, total := s.Run(reviews)
	return page, total, nil
}

func (r reviewRepo) Update(_ context.Context, review *entity.Review) error {
	defer r.lock()()
	t := r.tables()

	current, ok := t.reviews[review.ID]
	if !ok {
		return fmt.Errorf("review %d: %w", review.ID, repository.ErrNotFound)
	}
	current.Rating = review.Rating
	current.Comment = review.Comment
	t.reviews[review.ID] = current
	*review = current
	return nil
}

func (r reviewRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	t := r.tables()

	if _, ok := t.reviews[id]; !ok {
		return fmt.Errorf("review %d: %w", id, repository.ErrNotFound)
	}
	t.deleteReview(id)
	return nil
}

func (r reviewRepo) Exists(_ context.Context, id int64) (bool, error) {
	defer r.lock()()

	_, ok := r.tables().reviews[id]
	return ok, nil
}

func (r reviewRepo) CountByMovieIDs(_ context.Context, movieIDs []int64) (map[int64]int64, error) {
	defer r.lock()()
	t := r.tables()

	counts := make(map[int64]int64, len(movieIDs))
	for _, id := range movieIDs {
		if n := t.reviewCount(id); n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}

func (r reviewRepo) StatsByMovieID(_ context.Context, movieID int64) (query.RatingStats, error) {
	defer r.lock()()

	return query.Aggregate(r.tables().ratingsByMovie()[movieID]), nil
}

func (t *tables) detail(review entity.Review) entity.ReviewDetail {
	return entity.ReviewDetail{
		Review:     review,
		MovieTitle: t.movies[review.MovieID].Title,
		Username:   t.users[review.UserID].Username,
	}
}
