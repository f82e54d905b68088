package infra

import (
	"errors"
	"log/slog"

	"venue-boxoffice/internal/pkg/errs"
	"venue-boxoffice/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err by its PostgreSQL error code.
func WrapRepoErr(msg string, err error) error {
	return NewRepoErr(classify(err), msg, err)
}

func NewRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	slog.Warn("Repository error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return KindDuplicateKey
	case pgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated
	case pgErrCodeCheckViolation:
		return KindConstraintViolated
	default:
		return KindDBFailure
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConstraintViolated RepositoryErrorKind = "CONSTRAINT_VIOLATED"
)
