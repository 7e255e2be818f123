package domain

import (
	"time"

	"github.com/google/uuid"
)

// BrainDump records a processed ConfusionDump together with the guidance given.
type BrainDump struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"user_id"`
	OriginalText string            `json:"original_text"`
	AgeGroup     AgeGroup          `json:"age_group"`
	Response     ConfusionResponse `json:"response"`
	CreatedAt    time.Time         `json:"timestamp"`
}

// NewBrainDump creates a BrainDump with a fresh ID.
func NewBrainDump(
	userID uuid.UUID,
	dump ConfusionDump,
	response ConfusionResponse,
	now time.Time,
) (*BrainDump, error) {
	b := &BrainDump{
		ID:           uuid.New(),
		UserID:       userID,
		OriginalText: dump.Confusion,
		AgeGroup:     dump.AgeGroup,
		Response:     response,
		CreatedAt:    now.UTC(),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks if the BrainDump has valid data.
func (b *BrainDump) Validate() error {
	if b.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrValidation)
	}
	if b.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrValidation)
	}
	if b.OriginalText == "" {
		return NewValidationError("original_text", "cannot be empty", ErrEmptyContent)
	}
	return nil
}
