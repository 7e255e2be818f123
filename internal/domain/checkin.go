package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyCheckin is the student's start-of-day self report.
type DailyCheckin struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	EnergyLevel    EnergyLevel `json:"energy_level"`
	SleepHours     float64     `json:"sleep_hours"`
	AvailableHours float64     `json:"available_hours"`
	MissedDays     int         `json:"missed_days"`
	Note           string      `json:"note,omitempty"`
	CreatedAt      time.Time   `json:"timestamp"`
}

// NewDailyCheckin stamps a check-in with a fresh ID and the server time.
func NewDailyCheckin(userID uuid.UUID, c DailyCheckin, now time.Time) (*DailyCheckin, error) {
	c.ID = uuid.New()
	c.UserID = userID
	c.CreatedAt = now.UTC()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks if the check-in has valid data.
func (c *DailyCheckin) Validate() error {
	if c.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrValidation)
	}
	switch c.EnergyLevel {
	case EnergyLow, EnergyMedium, EnergyHigh:
	default:
		return NewValidationError("energy_level", "must be low, medium or high", ErrValidation)
	}
	if c.MissedDays < 0 {
		return NewValidationError("missed_days", "cannot be negative", ErrValidation)
	}
	if c.AvailableHours < 0 || c.SleepHours < 0 {
		return NewValidationError("hours", "cannot be negative", ErrValidation)
	}
	return nil
}
