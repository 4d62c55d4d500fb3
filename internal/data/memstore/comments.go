package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"
	"cinevault/internal/query"
)

type commentRepo struct{ view }

func (r commentRepo) Create(_ context.Context, comment *entity.Comment) error {
	defer r.lock()()
	t := r.tables()

	if _, ok := t.reviews[comment.ReviewID]; !ok {
		return fmt.Errorf("comment review %d: %w", comment.ReviewID, repository.ErrForeignKey)
	}
	if _, ok := t.users[comment.UserID]; !ok {
		return fmt.Errorf("comment user %d: %w", comment.UserID, repository.ErrMissingUser)
	}

	t.seq.comment++
	comment.ID = t.seq.comment
	comment.CreatedAt = r.s.stamp()
	t.comments[comment.ID] = *comment
	return nil
}

func (r commentRepo) FindByID(_ context.Context, id int64) (*entity.Comment, error) {
	defer r.lock()()

	comment, ok := r.tables().comments[id]
	if !ok {
		return nil, nil
	}
	return &comment, nil
}

func (r commentRepo) FindAll(_ context.Context, page query.Page) ([]entity.Comment, int64, error) {
	defer r.lock()()
	t := r.tables()

	comments := make([]entity.Comment, 0, len(t.comments))
	for _, c := range t.comments {
		comments = append(comments, c)
	}
	slices.SortFunc(comments, func(a, b entity.Comment) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return query.Window(comments, page), int64(len(comments)), nil
}

func (r commentRepo) Update(_ context.Context, comment *entity.Comment) error {
	defer r.lock()()
	t := r.tables()

	current, ok := t.comments[comment.ID]
	if !ok {
		return fmt.Errorf("comment %d: %w", comment.ID, repository.ErrNotFound)
	}
	current.Rating = comment.Rating
	current.Content = comment.Content
	t.comments[comment.ID] = current
	*comment = current
	return nil
}

func (r commentRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	t := r.tables()

	if _, ok := t.comments[id]; !ok {
		return fmt.Errorf("comment %d: %w", id, repository.ErrNotFound)
	}
	t.deleteComment(id)
	return nil
}

func (r commentRepo) Exists(_ context.Context, id int64) (bool, error) {
	defer r.lock()()

	_, ok := r.tables().comments[id]
	return ok, nil
}
