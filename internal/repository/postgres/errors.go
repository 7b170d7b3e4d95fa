package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bookline/catalog/internal/model"
)

const uniqueViolationCode = "23505"

// duplicateError maps a unique-constraint violation to the matching domain
// error. The constraints are the concurrency backstop behind the services'
// pre-checks; both paths must surface the same duplicate error.
func duplicateError(err error) (error, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil, false
	}

	switch pgErr.ConstraintName {
	case "accounts_username_key":
		return model.ErrUsernameTaken, true
	case "accounts_email_key":
		return model.ErrEmailTaken, true
	case "authors_name_key":
		return model.ErrAuthorExists, true
	case "books_title_key":
		return model.ErrBookExists, true
	default:
		return model.ErrDuplicate, true
	}
}
