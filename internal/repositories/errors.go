package repositories

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// Machine-readable store error codes.
const (
	CodeUniqueViolation = "unique_violation"
	CodeUnavailable     = "store_unavailable"
	CodeUnknown         = "unknown"
)

// pgUniqueViolation is the SQLSTATE for unique-constraint failures.
const pgUniqueViolation = "23505"

// StoreError wraps a driver failure with a code the service layer can switch
// on without importing driver packages.
type StoreError struct {
	Code string
	Err  error
}

func (e *StoreError) Error() string {
	return "store: " + e.Code + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsCode reports whether err is a StoreError with the given code.
func IsCode(err error, code string) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == code
}

// wrapStoreError classifies driver-level failures. sql.ErrNoRows passes
// through untouched: not-found vs empty is the caller's concern, not the
// adapter's.
func wrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return &StoreError{Code: CodeUniqueViolation, Err: err}
		}
		return &StoreError{Code: CodeUnknown, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return &StoreError{Code: CodeUnavailable, Err: err}
	}

	return &StoreError{Code: CodeUnknown, Err: err}
}
