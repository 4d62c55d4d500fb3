package memstore

import (
	"context"
	"fmt"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"
	"cinevault/internal/query"
)

type userRepo struct{ view }

func (r userRepo) Create(_ context.Context, user *entity.User) error {
	defer r.lock()()
	t := r.tables()

	t.seq.user++
	user.ID = t.seq.user
	user.CreatedAt = r.s.stamp()
	t.users[user.ID] = *user
	return nil
}

func (r userRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	defer r.lock()()

	user, ok := r.tables().users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r userRepo) Exists(_ context.Context, id int64) (bool, error) {
	defer r.lock()()

	_, ok := r.tables().users[id]
	return ok, nil
}

func (r userRepo) Search(_ context.Context, s query.Search[entity.User]) ([]entity.User, int64, error) {
	defer r.lock()()
	t := r.tables()

	users := make([]entity.User, 0, len(t.users))
	for _, id := range sortedKeys(t.users) {
		users = append(users, t.users[id])
	}

	page, total := s.Run(users)
	return page, total, nil
}

func (r userRepo) Update(_ context.Context, user *entity.User) error {
	defer r.lock()()
	t := r.tables()

	current, ok := t.users[user.ID]
	if !ok {
		return fmt.Errorf("user %d: %w", user.ID, repository.ErrNotFound)
	}
	user.CreatedAt = current.CreatedAt
	t.users[user.ID] = *user
	return nil
}

func (r userRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	t := r.tables()

	if _, ok := t.users[id]; !ok {
		return fmt.Errorf("user %d: %w", id, repository.ErrNotFound)
	}
	t.deleteUser(id)
	return nil
}
