package dbx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx, so repositories can run
// either on the pool or inside a unit of work.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// QueryTimeoutDuration bounds every repository call.
const QueryTimeoutDuration = 5 * time.Second

// Postgres SQLSTATE codes mapped at the handler boundary.
const (
	CodeForeignKeyViolation = "23503"
	CodeUniqueViolation     = "23505"
	CodeCheckViolation      = "23514"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsForeignKeyViolation(err error) bool { return pgCode(err) == CodeForeignKeyViolation }
func IsUniqueViolation(err error) bool     { return pgCode(err) == CodeUniqueViolation }
func IsCheckViolation(err error) bool      { return pgCode(err) == CodeCheckViolation }

// ConstraintName returns the violated constraint, or "" for non-pg errors.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// EscapeLike escapes LIKE/ILIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\\', '%', '_':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
