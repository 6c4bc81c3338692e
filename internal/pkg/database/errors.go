package database

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/jackc/pgconn"
)

// Postgres SQLSTATE codes the service reacts to
const (
	CodeUniqueViolation      = "23505"
	CodeInvalidPassword      = "28P01"
	CodeInvalidCatalogName   = "3D000"
	CodeSerializationFailure = "40001"
	CodeCannotConnectNow     = "57P03"
)

// PgErrorCode returns the SQLSTATE carried by err, or "" when err is not a Postgres error
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique constraint violation
func IsUniqueViolation(err error) bool {
	return PgErrorCode(err) == CodeUniqueViolation
}

// IsTransient reports whether err looks like a connectivity problem worth retrying.
// Authentication and missing database errors are permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	code := PgErrorCode(err)
	if code != "" {
		return code == CodeCannotConnectNow || strings.HasPrefix(code, "08")
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// DescribeStartupError turns a bootstrap failure into an operator-facing message
func DescribeStartupError(err error, envFile string) string {
	if err == nil {
		return ""
	}

	switch PgErrorCode(err) {
	case CodeInvalidPassword:
		return fmt.Sprintf("Database authentication failed (Postgres 28P01). Check DATABASE_URL credentials in %s.", envFile)
	case CodeInvalidCatalogName:
		return "Database does not exist (Postgres 3D000). Create the database referenced by DATABASE_URL."
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return "Could not connect to Postgres server (ECONNREFUSED). Verify host/port and that Postgres is running."
	}

	return err.Error()
}
