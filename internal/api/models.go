package api

import (
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/service"
)

// TodayPlanRequest is the body of POST /api/plans/today. Subjects and
// assignments are loaded from storage.
type TodayPlanRequest struct {
	EnergyLevel    domain.EnergyLevel `json:"energy_level"    validate:"required,oneof=low medium high"`
	SleepHours     float64            `json:"sleep_hours"     validate:"gte=0,lte=24"`
	AvailableHours float64            `json:"available_hours" validate:"gte=0,lte=24"`
	MissedDays     int                `json:"missed_days"     validate:"gte=0"`
	Note           string             `json:"note"            validate:"max=500"`
	AgeGroup       *domain.AgeGroup   `json:"age_group,omitempty"`
	StudyMode      *domain.StudyMode  `json:"study_mode,omitempty"     validate:"omitempty,oneof=study revision exam_sprint light"`
	ConfusionDump  *string            `json:"confusion_dump,omitempty"`
}

func (r TodayPlanRequest) toService() service.TodayRequest {
	return service.TodayRequest{
		EnergyLevel:    r.EnergyLevel,
		SleepHours:     r.SleepHours,
		AvailableHours: r.AvailableHours,
		MissedDays:     r.MissedDays,
		Note:           r.Note,
		AgeGroup:       r.AgeGroup,
		StudyMode:      r.StudyMode,
		ConfusionDump:  r.ConfusionDump,
	}
}

// ProfileRequest is the body of PUT /api/profile. Omitted fields keep their
// stored value; preference keys are merged. Any age group is stored and
// unknown ones plan with the college tone.
type ProfileRequest struct {
	DisplayName *string                `json:"display_name,omitempty" validate:"omitempty,max=100"`
	AgeGroup    *domain.AgeGroup       `json:"age_group,omitempty"`
	StudyMode   *domain.StudyMode      `json:"study_mode,omitempty"   validate:"omitempty,oneof=study revision exam_sprint light"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}

func (r ProfileRequest) toUpdate() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		DisplayName: r.DisplayName,
		AgeGroup:    r.AgeGroup,
		StudyMode:   r.StudyMode,
		Preferences: r.Preferences,
	}
}

// CheckinRequest is the body of POST /api/checkins.
type CheckinRequest struct {
	EnergyLevel    domain.EnergyLevel `json:"energy_level"    validate:"required,oneof=low medium high"`
	SleepHours     float64            `json:"sleep_hours"     validate:"gte=0,lte=24"`
	AvailableHours float64            `json:"available_hours" validate:"gte=0,lte=24"`
	MissedDays     int                `json:"missed_days"     validate:"gte=0"`
	Note           string             `json:"note"            validate:"max=500"`
}

func (r CheckinRequest) toDomain() domain.DailyCheckin {
	return domain.DailyCheckin{
		EnergyLevel:    r.EnergyLevel,
		SleepHours:     r.SleepHours,
		AvailableHours: r.AvailableHours,
		MissedDays:     r.MissedDays,
		Note:           r.Note,
	}
}

// StatusResponse is returned by the public status endpoints.
type StatusResponse struct {
	Message   string `json:"message,omitempty"`
	Status    string `json:"status,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
