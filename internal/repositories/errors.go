package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateLike is returned when a like insert hits the unique
// (subject, anon_id) constraint.
var ErrDuplicateLike = errors.New("like already exists")

// pgUniqueViolation is the Postgres error code for unique_violation
const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint error
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
