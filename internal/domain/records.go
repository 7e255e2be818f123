package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubjectRecord is a Subject owned by a user.
type SubjectRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Subject   Subject   `json:"subject"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the record has valid data.
func (r *SubjectRecord) Validate() error {
	if r.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if r.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrValidation)
	}
	if r.Subject.Name == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyContent)
	}
	if r.Subject.ConfidenceLevel < 1 || r.Subject.ConfidenceLevel > 10 {
		return NewValidationError("confidence_level", "must be between 1 and 10", ErrValidation)
	}
	if r.Subject.RevisionCount < 0 {
		return NewValidationError("revision_count", "cannot be negative", ErrValidation)
	}
	return nil
}

// AssignmentRecord is an Assignment owned by a user.
type AssignmentRecord struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Assignment Assignment `json:"assignment"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Validate checks if the record has valid data.
func (r *AssignmentRecord) Validate() error {
	if r.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if r.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrValidation)
	}
	if r.Assignment.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyContent)
	}
	if r.Assignment.EstimatedHours < 0 {
		return NewValidationError("estimated_hours", "cannot be negative", ErrValidation)
	}
	return nil
}
