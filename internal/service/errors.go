package service

import (
	"errors"
	"fmt"

	"github.com/planwise/planwise-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// The API layer maps them to HTTP status codes.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrNotFound indicates the requested resource does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrNotFound = errors.New("resource not found")
)

// ServiceError wraps an unexpected failure with the service and operation
// where it happened.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
	}
	return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapError converts store sentinels to service sentinels and wraps everything else.
func wrapError(service, op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotOwned), errors.Is(err, ErrNotFound):
		return err
	case store.IsNotFoundError(err):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return &ServiceError{Service: service, Op: op, Err: err}
}
