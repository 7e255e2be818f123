package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the student's persistent preferences.
type UserProfile struct {
	UserID      uuid.UUID              `json:"user_id"`
	DisplayName string                 `json:"display_name"`
	AgeGroup    AgeGroup               `json:"age_group"`
	StudyMode   StudyMode              `json:"study_mode"`
	Preferences map[string]interface{} `json:"preferences"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ProfileUpdate is a partial profile. Nil fields leave the stored value untouched.
type ProfileUpdate struct {
	DisplayName *string
	AgeGroup    *AgeGroup
	StudyMode   *StudyMode
	Preferences map[string]interface{}
}

// NewUserProfile creates an empty profile for userID.
func NewUserProfile(userID uuid.UUID, now time.Time) (*UserProfile, error) {
	p := &UserProfile{
		UserID:      userID,
		AgeGroup:    AgeGroupCollege,
		StudyMode:   StudyModeStudy,
		Preferences: map[string]interface{}{},
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks if the profile has valid data.
func (p *UserProfile) Validate() error {
	if p.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrValidation)
	}
	return nil
}

// Merge applies update on top of the profile. Preference keys are merged
// individually rather than replacing the whole map.
func (p *UserProfile) Merge(update ProfileUpdate, now time.Time) {
	if update.DisplayName != nil {
		p.DisplayName = *update.DisplayName
	}
	if update.AgeGroup != nil {
		p.AgeGroup = *update.AgeGroup
	}
	if update.StudyMode != nil {
		p.StudyMode = *update.StudyMode
	}
	if len(update.Preferences) > 0 {
		if p.Preferences == nil {
			p.Preferences = make(map[string]interface{}, len(update.Preferences))
		}
		for k, v := range update.Preferences {
			p.Preferences[k] = v
		}
	}
	p.UpdatedAt = now.UTC()
}
