package planner

import (
	"fmt"

	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/domain/tone"
)

// RecoveryMessage is shown whenever the student has missed at least one day.
const RecoveryMessage = "Yesterday didn't go well. That's okay. Let's reset and build momentum."

// Revision reminders use a fixed elapsed-days value instead of diffing
// last_studied against today.
const (
	revisionDaysAgo       = 6
	revisionReminderAfter = 5
)

// Plan is a composed plan along with the rule that picked its action.
type Plan struct {
	Rule     string
	Response domain.PlanResponse
}

// Compose builds the full plan for c.
func Compose(c domain.DailyContext) Plan {
	t := tone.Resolve(c.AgeGroup)
	decision := Select(c)

	var recovery *string
	if c.MissedDays > 0 {
		recovery = strPtr(RecoveryMessage)
	}

	encouragement := t.Encouragement
	return Plan{
		Rule: decision.Rule,
		Response: domain.PlanResponse{
			NextAction:       decision.Action,
			PlanMessage:      planMessage(c.EnergyLevel, t),
			RecoveryMessage:  recovery,
			ConfidenceBoost:  &encouragement,
			RevisionReminder: revisionReminder(c.Subjects),
		},
	}
}

// GeneratePlan returns the PlanResponse for c.
func GeneratePlan(c domain.DailyContext) domain.PlanResponse {
	return Compose(c).Response
}

func planMessage(energy domain.EnergyLevel, t tone.Profile) string {
	switch energy {
	case domain.EnergyHigh:
		return "Your energy is high today. Perfect time to tackle challenging work. " + t.Encouragement
	case domain.EnergyLow:
		return "Low energy day - that's normal. Focus on easier tasks and revision. " + t.Encouragement
	default:
		return "Steady energy today. Good balance of work and breaks. " + t.Encouragement
	}
}

func revisionReminder(subjects []domain.Subject) *string {
	for _, s := range subjects {
		if !s.HasBeenStudied() {
			continue
		}
		daysAgo := revisionDaysAgo
		if daysAgo < revisionReminderAfter {
			return nil
		}
		return strPtr(fmt.Sprintf(
			"You studied %s %d days ago. A quick revision today will help.", s.Name, daysAgo))
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
