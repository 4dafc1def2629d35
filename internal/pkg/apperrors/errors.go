// Package apperrors carries HTTP-mappable domain errors from services
// up to the error handler middleware.
package apperrors

import (
	"errors"
	"fmt"
)

type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func New(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func BadRequest(message string) *AppError {
	return New(400, message)
}

func Unauthorized(message string) *AppError {
	return New(401, message)
}

func Forbidden(message string) *AppError {
	return New(403, message)
}

func NotFound(message string) *AppError {
	return New(404, message)
}

// AsAppError unwraps err into an AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
