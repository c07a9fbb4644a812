// Package errors defines the error taxonomy surfaced by the data-access
// layer. Lookups that simply miss are reported as absent results, not
// errors; everything else is wrapped in a coded AppError.
package errors

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Error codes surfaced to callers.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeStoreUnavailable    = "STORE_UNAVAILABLE"
	CodeInternal            = "INTERNAL"
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func ConstraintViolation(message string, err error) *AppError {
	return &AppError{Code: CodeConstraintViolation, Message: message, Err: err}
}

func InvalidArgument(message string) *AppError {
	return &AppError{Code: CodeInvalidArgument, Message: message}
}

func StoreUnavailable(message string, err error) *AppError {
	return &AppError{Code: CodeStoreUnavailable, Message: message, Err: err}
}

func Internal(message string, err error) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Err: err}
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FromStore translates a mongo-driver error into the layer's taxonomy.
// The op string names the failing operation for the wrapped message.
func FromStore(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case mongo.IsDuplicateKeyError(err):
		return ConstraintViolation(fmt.Sprintf("%s: duplicate unique field", op), err)
	case mongo.IsTimeout(err),
		mongo.IsNetworkError(err),
		errors.Is(err, context.DeadlineExceeded):
		return StoreUnavailable(fmt.Sprintf("%s: document store unavailable", op), err)
	default:
		return Internal(fmt.Sprintf("%s failed", op), err)
	}
}
