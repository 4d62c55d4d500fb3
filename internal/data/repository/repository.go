package repository

import (
	"context"
	"fmt"

	"cinevault/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Movie   MovieRepository
	Review  ReviewRepository
	Comment CommentRepository
	Like    LikeRepository
	Tx      Transactor
}

// Transactor runs fn against repositories bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise. Calling
// WithinTx on the repositories handed to fn joins the running transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repo *Repository) error) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := bind(db, log)
	repo.Tx = &pgTransactor{db: db, log: log.With(zap.String("repository", "tx"))}
	return repo
}

func bind(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Comment: NewCommentRepository(db, log),
		Like:    NewLikeRepository(db, log),
	}
}

type pgTransactor struct {
	db  database.PgxIface
	log *zap.Logger
}

func (t *pgTransactor) WithinTx(ctx context.Context, fn func(repo *Repository) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		t.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback(ctx)
	}()

	repo := bind(tx, t.log)
	repo.Tx = joinedTx{repo: repo}

	if err := fn(repo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		t.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", mapPgError(err))
	}
	return nil
}

// joinedTx runs nested units of work inside the enclosing transaction.
type joinedTx struct {
	repo *Repository
}

func (j joinedTx) WithinTx(_ context.Context, fn func(repo *Repository) error) error {
	return fn(j.repo)
}

var _ database.Querier = (pgx.Tx)(nil)
