package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/masarify/authsvc/internal/pkg/apperror"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// StatusForError maps an error kind to its HTTP status
func StatusForError(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindValidation, apperror.KindMismatch, apperror.KindInvalidCode,
		apperror.KindExpired, apperror.KindAttemptsExceeded:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindAlreadyExists:
		return http.StatusConflict
	case apperror.KindInvalidCredentials, apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// AppErrorResponse renders err with the status of its kind. Internal failures never leak their cause.
func AppErrorResponse(c echo.Context, err error) error {
	return ErrorResponseHandler(c, StatusForError(err), apperror.Message(err))
}

// EchoErrorHandler renders errors that escape handlers, such as unknown routes, in the standard envelope
func EchoErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if he.Code == http.StatusNotFound {
			message = "Not found"
		} else if m, ok := he.Message.(string); ok && he.Code < http.StatusInternalServerError {
			message = m
		}
		_ = ErrorResponseHandler(c, he.Code, message)
		return
	}

	_ = AppErrorResponse(c, err)
}
