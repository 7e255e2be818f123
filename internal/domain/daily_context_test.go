package domain

import (
	"encoding/json"
	"testing"
)

func TestDailyContextUnmarshalDefaults(t *testing.T) {
	t.Parallel()
	payload := `{
		"subjects": [{"name": "Physics", "credits": 4}],
		"assignments": [{"title": "Lab", "subject": "Physics", "deadline": "2024-06-01", "priority": "high"}],
		"sleep_hours": 7,
		"energy_level": "medium",
		"available_hours": 3,
		"age_group": "class12"
	}`

	var c DailyContext
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if c.StudyMode != StudyModeStudy {
		t.Errorf("Expected study mode %q, got %q", StudyModeStudy, c.StudyMode)
	}
	if c.MissedDays != 0 {
		t.Errorf("Expected missed days 0, got %d", c.MissedDays)
	}
	if c.ConfusionDump != nil {
		t.Errorf("Expected nil confusion dump, got %q", *c.ConfusionDump)
	}
	if len(c.Subjects) != 1 || c.Subjects[0].ConfidenceLevel != DefaultConfidenceLevel {
		t.Errorf("Expected subject confidence %d, got %+v", DefaultConfidenceLevel, c.Subjects)
	}
	if c.Subjects[0].RevisionCount != 0 {
		t.Errorf("Expected revision count 0, got %d", c.Subjects[0].RevisionCount)
	}
	if len(c.Assignments) != 1 || c.Assignments[0].EstimatedHours != DefaultEstimatedHours {
		t.Errorf("Expected estimated hours %v, got %+v", DefaultEstimatedHours, c.Assignments)
	}
}

func TestDailyContextUnmarshalKeepsExplicitValues(t *testing.T) {
	t.Parallel()
	payload := `{
		"subjects": [{"name": "Art", "credits": 2, "confidence_level": 8, "revision_count": 2, "last_studied": "2024-01-01"}],
		"assignments": [{"title": "Sketch", "estimated_hours": 2.5}],
		"energy_level": "low",
		"available_hours": 1,
		"missed_days": 3,
		"study_mode": "exam_sprint",
		"confusion_dump": "I'm lost"
	}`

	var c DailyContext
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if c.StudyMode != StudyModeExamSprint {
		t.Errorf("Expected study mode %q, got %q", StudyModeExamSprint, c.StudyMode)
	}
	if c.MissedDays != 3 {
		t.Errorf("Expected missed days 3, got %d", c.MissedDays)
	}
	if c.ConfusionDump == nil || *c.ConfusionDump != "I'm lost" {
		t.Errorf("Expected confusion dump to be set, got %v", c.ConfusionDump)
	}
	if got := c.Subjects[0]; got.ConfidenceLevel != 8 || got.RevisionCount != 2 || !got.HasBeenStudied() {
		t.Errorf("Unexpected subject %+v", got)
	}
	if got := c.Assignments[0].EstimatedHours; got != 2.5 {
		t.Errorf("Expected estimated hours 2.5, got %v", got)
	}
}

func TestSubjectHasBeenStudied(t *testing.T) {
	t.Parallel()
	empty := ""
	date := "2024-01-01"

	tests := []struct {
		name        string
		lastStudied *string
		want        bool
	}{
		{"nil", nil, false},
		{"empty string", &empty, false},
		{"date", &date, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Subject{Name: "x", LastStudied: tc.lastStudied}
			if got := s.HasBeenStudied(); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}
