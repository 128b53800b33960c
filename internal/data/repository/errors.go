package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for constraint violations raised by the store
var (
	ErrEmailExists      = errors.New("email already exists")
	ErrMissingReference = errors.New("referenced row does not exist")
	ErrConstraint       = errors.New("constraint violation")
)

// translateConstraint maps Postgres constraint-violation codes to
// sentinel errors callers can branch on. Returns nil when err is not a
// constraint violation.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case "23505": // unique_violation
		return ErrEmailExists
	case "23503": // foreign_key_violation
		return ErrMissingReference
	case "23502", "23514": // not_null_violation, check_violation
		return ErrConstraint
	}

	return nil
}
