package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/utkarshk014/catalyst/apperr"
)

// Constraint names from the schema DDL, used to tell the recoverable
// duplicate-email signup failure apart from slug/api-key collisions that the
// create loop retries.
const (
	constraintEmail  = "organizations_contact_email_key"
	constraintSlug   = "organizations_slug_key"
	constraintAPIKey = "organizations_api_key_key"
)

// uniqueViolation returns the violated constraint name, or "" if err is not a
// unique-constraint violation.
func uniqueViolation(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}

// mapError translates storage failures into apperr kinds so resolvers and the
// transport never inspect driver errors.
func mapError(err error, notFoundMessage string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.New(apperr.KindNotFound, "%s", notFoundMessage)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return apperr.New(apperr.KindNotFound, "%s", notFoundMessage)
	}
	return apperr.Wrap(err, apperr.KindInternal, "storage failure")
}
