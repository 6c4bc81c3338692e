// Package apperror carries the failure kinds surfaced by the auth workflows.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch without string matching
type Kind string

const (
	KindValidation         Kind = "validation"
	KindNotFound           Kind = "not_found"
	KindAlreadyExists      Kind = "already_exists"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindExpired            Kind = "expired"
	KindAttemptsExceeded   Kind = "attempts_exceeded"
	KindRateLimited        Kind = "rate_limited"
	KindUnauthorized       Kind = "unauthorized"
	KindMismatch           Kind = "mismatch"
	KindInvalidCode        Kind = "invalid_code"
	KindInternal           Kind = "internal"
)

// Error is a failure tagged with a Kind
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags err with kind, keeping it reachable through errors.Is/As
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err. Untagged errors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the client-safe message of err
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Internal server error"
}

func Validation(message string) *Error         { return New(KindValidation, message) }
func NotFound(message string) *Error           { return New(KindNotFound, message) }
func AlreadyExists(message string) *Error      { return New(KindAlreadyExists, message) }
func InvalidCredentials(message string) *Error { return New(KindInvalidCredentials, message) }
func Expired(message string) *Error            { return New(KindExpired, message) }
func AttemptsExceeded(message string) *Error   { return New(KindAttemptsExceeded, message) }
func RateLimited(message string) *Error        { return New(KindRateLimited, message) }
func Unauthorized(message string) *Error       { return New(KindUnauthorized, message) }
func Mismatch(message string) *Error           { return New(KindMismatch, message) }
func InvalidCode(message string) *Error        { return New(KindInvalidCode, message) }
