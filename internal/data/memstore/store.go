// Package memstore is the in-memory store driver. It serves the same
// repository interfaces as the postgres driver and enforces the same
// constraints: foreign keys, like uniqueness, restrict on movie delete and
// cascades on user, review and comment delete.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"

	"go.uber.org/zap"
)

type tables struct {
	users    map[int64]entity.User
	movies   map[int64]entity.Movie
	reviews  map[int64]entity.Review
	comments map[int64]entity.Comment
	likes    map[int64]entity.Like
	seq      sequences
}

type sequences struct {
	user, movie, review, comment, like int64
}

func newTables() *tables {
	return &tables{
		users:    make(map[int64]entity.User),
		movies:   make(map[int64]entity.Movie),
		reviews:  make(map[int64]entity.Review),
		comments: make(map[int64]entity.Comment),
		likes:    make(map[int64]entity.Like),
	}
}

// clone copies every table. Rows are values, so the copy is independent.
func (t *tables) clone() *tables {
	return &tables{
		users:    maps.Clone(t.users),
		movies:   maps.Clone(t.movies),
		reviews:  maps.Clone(t.reviews),
		comments: maps.Clone(t.comments),
		likes:    maps.Clone(t.likes),
		seq:      t.seq,
	}
}

type Option func(*Store)

// WithClock replaces time.Now for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store holds all tables behind one mutex. Every repository call is atomic;
// WithinTx holds the mutex for the whole unit of work and restores a
// snapshot when it fails.
type Store struct {
	mu  sync.Mutex
	t   *tables
	now func() time.Time
	log *zap.Logger
}

func New(log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		t:   newTables(),
		now: time.Now,
		log: log.With(zap.String("store", "memory")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repository returns the repositories backed by s.
func (s *Store) Repository() *repository.Repository {
	repo := s.bind(false)
	repo.Tx = transactor{s: s}
	return repo
}

func (s *Store) bind(held bool) *repository.Repository {
	v := view{s: s, held: held}
	return &repository.Repository{
		User:    userRepo{v},
		Movie:   movieRepo{v},
		Review:  reviewRepo{v},
		Comment: commentRepo{v},
		Like:    likeRepo{v},
	}
}

func (s *Store) stamp() time.Time {
	return s.now().UTC()
}

// view gives repositories access to the tables. Inside a transaction the
// mutex is already held and lock is a no-op.
type view struct {
	s    *Store
	held bool
}

func (v view) lock() func() {
	if v.held {
		return func() {}
	}
	v.s.mu.Lock()
	return v.s.mu.Unlock
}

func (v view) tables() *tables { return v.s.t }

type transactor struct {
	s *Store
}

func (t transactor) WithinTx(ctx context.Context, fn func(repo *repository.Repository) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.t.clone()
	defer func() {
		if p := recover(); p != nil {
			s.t = snapshot
			panic(p)
		}
		if err != nil {
			s.t = snapshot
			s.log.Debug("Transaction rolled back", zap.Error(err))
		}
	}()

	repo := s.bind(true)
	repo.Tx = joined{repo: repo}

	return fn(repo)
}

type joined struct {
	repo *repository.Repository
}

func (j joined) WithinTx(_ context.Context, fn func(repo *repository.Repository) error) error {
	return fn(j.repo)
}

// sortedKeys returns the ids of m in ascending order.
func sortedKeys[V any](m map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(m))
}

// cascade deletes mirror the ON DELETE CASCADE rules of the schema.

func (t *tables) deleteUser(id int64) {
	for likeID, l := range t.likes {
		if l.UserID == id {
			delete(t.likes, likeID)
		}
	}
	for commentID, c := range t.comments {
		if c.UserID == id {
			t.deleteComment(commentID)
		}
	}
	for reviewID, r := range t.reviews {
		if r.UserID == id {
			t.deleteReview(reviewID)
		}
	}
	delete(t.users, id)
}

func (t *tables) deleteReview(id int64) {
	for commentID, c := range t.comments {
		if c.ReviewID == id {
			t.deleteComment(commentID)
		}
	}
	t.deleteLikesOn(entity.ReviewTarget(id))
	delete(t.reviews, id)
}

func (t *tables) deleteComment(id int64) {
	t.deleteLikesOn(entity.CommentTarget(id))
	delete(t.comments, id)
}

func (t *tables) deleteLikesOn(target entity.LikeTarget) {
	for likeID, l := range t.likes {
		if l.Target == target {
			delete(t.likes, likeID)
		}
	}
}

func (t *tables) reviewCount(movieID int64) int64 {
	var n int64
	for _, r := range t.reviews {
		if r.MovieID == movieID {
			n++
		}
	}
	return n
}
