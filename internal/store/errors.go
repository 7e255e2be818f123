package store

import (
	"errors"
	"fmt"
)

// Sentinels shared by every store implementation. The entity-specific
// variants wrap one of the first two so callers can match either level.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrInvalidEntity     = errors.New("record rejected by constraints")
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrProfileNotFound means the user has never saved a profile.
	ErrProfileNotFound = fmt.Errorf("%w: profile", ErrNotFound)

	// ErrSubjectNotFound is also returned for a subject owned by another user.
	ErrSubjectNotFound = fmt.Errorf("%w: subject", ErrNotFound)

	// ErrAssignmentNotFound is also returned for an assignment owned by another user.
	ErrAssignmentNotFound = fmt.Errorf("%w: assignment", ErrNotFound)

	ErrBrainDumpExists = fmt.Errorf("%w: brain dump", ErrDuplicate)
)

// IsNotFoundError reports whether err matches ErrNotFound at any depth.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err matches ErrDuplicate at any depth.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// OpError records which store call failed on which kind of record.
type OpError struct {
	Entity string
	Op     string
	Detail string
	Err    error
}

func (e *OpError) Error() string {
	msg := "store: " + e.Entity + " " + e.Op + ": " + e.Detail
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

// Wrap annotates err with the entity and operation that produced it.
func Wrap(entity, op, detail string, err error) error {
	return &OpError{Entity: entity, Op: op, Detail: detail, Err: err}
}
