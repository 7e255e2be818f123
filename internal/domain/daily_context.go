package domain

import "encoding/json"

// Defaults applied when optional fields are omitted from a payload.
const (
	DefaultConfidenceLevel = 5
	DefaultEstimatedHours  = 1.0
)

// Subject is a course the student is taking.
type Subject struct {
	Name            string  `json:"name"             validate:"required"`
	Credits         int     `json:"credits"          validate:"gte=0"`
	LastStudied     *string `json:"last_studied"`
	ConfidenceLevel int     `json:"confidence_level" validate:"gte=1,lte=10"`
	RevisionCount   int     `json:"revision_count"   validate:"gte=0"`
}

// UnmarshalJSON applies defaults for omitted optional fields.
func (s *Subject) UnmarshalJSON(data []byte) error {
	type plain Subject
	p := plain{ConfidenceLevel: DefaultConfidenceLevel}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Subject(p)
	return nil
}

// HasBeenStudied reports whether a non-empty last-studied date is recorded.
func (s Subject) HasBeenStudied() bool {
	return s.LastStudied != nil && *s.LastStudied != ""
}

// Assignment is a piece of graded work with a deadline.
type Assignment struct {
	Title          string   `json:"title"           validate:"required"`
	Subject        string   `json:"subject"`
	Deadline       string   `json:"deadline"`
	Priority       Priority `json:"priority"`
	EstimatedHours float64  `json:"estimated_hours" validate:"gte=0"`
}

// UnmarshalJSON applies defaults for omitted optional fields.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	type plain Assignment
	p := plain{EstimatedHours: DefaultEstimatedHours}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Assignment(p)
	return nil
}

// DailyContext is everything the planner knows about the student's day.
// Slices keep input order; the planner relies on it.
type DailyContext struct {
	Subjects       []Subject    `json:"subjects"        validate:"dive"`
	Assignments    []Assignment `json:"assignments"     validate:"dive"`
	SleepHours     float64      `json:"sleep_hours"     validate:"gte=0,lte=24"`
	EnergyLevel    EnergyLevel  `json:"energy_level"    validate:"required,oneof=low medium high"`
	AvailableHours float64      `json:"available_hours" validate:"gte=0,lte=24"`
	AgeGroup       AgeGroup     `json:"age_group"`
	MissedDays     int          `json:"missed_days"     validate:"gte=0"`
	ConfusionDump  *string      `json:"confusion_dump,omitempty"`
	StudyMode      StudyMode    `json:"study_mode,omitempty"`
}

// UnmarshalJSON applies defaults for omitted optional fields.
func (c *DailyContext) UnmarshalJSON(data []byte) error {
	type plain DailyContext
	p := plain{StudyMode: StudyModeStudy}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = DailyContext(p)
	return nil
}
