package repository

import (
	"errors"
	"fmt"
	"strings"

	"cinevault/internal/data/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate reports a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrForeignKey reports a missing referenced row, or a delete blocked by
	// rows still referencing the target.
	ErrForeignKey = errors.New("foreign key violation")
	// ErrMissingUser is the ErrForeignKey raised when the referenced user
	// does not exist.
	ErrMissingUser = fmt.Errorf("%w: user does not exist", ErrForeignKey)
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// mapPgError translates constraint violations into repository sentinels and
// leaves every other error untouched.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w (%s): %w", ErrDuplicate, pgErr.ConstraintName, err)
	case pgForeignKeyViolation:
		if strings.HasSuffix(pgErr.ConstraintName, "_user_id_fkey") {
			return fmt.Errorf("%w (%s): %w", ErrMissingUser, pgErr.ConstraintName, err)
		}
		return fmt.Errorf("%w (%s): %w", ErrForeignKey, pgErr.ConstraintName, err)
	case pgCheckViolation:
		if pgErr.ConstraintName == "likes_single_target" {
			return fmt.Errorf("%w: %w", entity.ErrInvalidTarget, err)
		}
	}
	return err
}
