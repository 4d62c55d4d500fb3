package memstore

import (
	"context"
	"fmt"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"
)

type likeRepo struct{ view }

func (r likeRepo) Create(_ context.Context, like *entity.Like) error {
	defer r.lock()()
	t := r.tables()

	if !t.targetExists(like.Target) {
		if like.Target.Kind != entity.TargetReview && like.Target.Kind != entity.TargetComment {
			return entity.ErrInvalidTarget
		}
		return fmt.Errorf("like target %s: %w", like.Target, repository.ErrForeignKey)
	}
	if _, ok := t.users[like.UserID]; !ok {
		return fmt.Errorf("like user %d: %w", like.UserID, repository.ErrMissingUser)
	}
	if t.findLike(like.UserID, like.Target) != nil {
		return fmt.Errorf("like %s by user %d: %w", like.Target, like.UserID, repository.ErrDuplicate)
	}

	t.seq.like++
	like.ID = t.seq.like
	like.CreatedAt = r.s.stamp()
	t.likes[like.ID] = *like
	return nil
}

func (r likeRepo) Find(_ context.Context, userID int64, target entity.LikeTarget) (*entity.Like, error) {
	defer r.lock()()

	return r.tables().findLike(userID, target), nil
}

func (r likeRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	t := r.tables()

	if _, ok := t.likes[id]; !ok {
		return fmt.Errorf("like %d: %w", id, repository.ErrNotFound)
	}
	delete(t.likes, id)
	return nil
}

func (r likeRepo) Count(_ context.Context, target entity.LikeTarget) (int64, error) {
	defer r.lock()()

	var n int64
	for _, l := range r.tables().likes {
		if l.Target == target {
			n++
		}
	}
	return n, nil
}

func (t *tables) findLike(userID int64, target entity.LikeTarget) *entity.Like {
	for _, l := range t.likes {
		if l.UserID == userID && l.Target == target {
			return &l
		}
	}
	return nil
}

func (t *tables) targetExists(target entity.LikeTarget) bool {
	switch target.Kind {
	case entity.TargetReview:
		_, ok := t.reviews[target.ID]
		return ok
	case entity.TargetComment:
		_, ok := t.comments[target.ID]
		return ok
	}
	return false
}
