package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation      = "23505"
	PgErrSerializationFailure = "40001"
	PgErrDeadlockDetected     = "40P01"
	PgErrLockNotAvailable     = "55P03"
	PgErrQueryCanceled        = "57014"
)

var ErrNotFound = errors.New("not found")

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsTransient ошибки, после которых запись можно повторить: конфликт сериализации,
// дедлок, занятая блокировка, отмена по statement_timeout.
func IsTransient(err error) bool {
	for _, code := range []string{
		PgErrSerializationFailure,
		PgErrDeadlockDetected,
		PgErrLockNotAvailable,
		PgErrQueryCanceled,
	} {
		if IsPgErrorWithCode(err, code) {
			return true
		}
	}
	return false
}
