package planner

import (
	"fmt"

	"github.com/planwise/planwise-api/internal/domain"
)

// Rule names, in evaluation order.
const (
	RuleOverloadGuard       = "overload_guard"
	RuleMissedDayRecovery   = "missed_day_recovery"
	RuleHighEnergyChallenge = "high_energy_challenge"
	RuleLowEnergyRevision   = "low_energy_revision"
	RuleFirstAssignment     = "first_assignment"
	RuleFirstSubject        = "first_subject"
	RulePlanTomorrow        = "plan_tomorrow"
)

// Thresholds used by the decision table.
const (
	minAvailableHours    = 2.0
	overloadAssignments  = 3
	maxRevisionsForQuick = 3
)

// Rule pairs a predicate with the action it produces.
// Action is only called when Matches returned true for the same context.
type Rule struct {
	Name    string
	Matches func(c domain.DailyContext) bool
	Action  func(c domain.DailyContext) domain.NextAction
}

// decisionTable is evaluated top to bottom; the last rule always matches.
var decisionTable = []Rule{
	{
		Name: RuleOverloadGuard,
		// hours < 2 OR (low energy AND more than 3 assignments)
		Matches: func(c domain.DailyContext) bool {
			return c.AvailableHours < minAvailableHours ||
				(c.EnergyLevel == domain.EnergyLow && len(c.Assignments) > overloadAssignments)
		},
		Action: func(domain.DailyContext) domain.NextAction {
			return domain.NextAction{
				Task:       "Take a break - you're overloaded",
				Duration:   30,
				Reason:     "Preventing burnout is more important than pushing through",
				Difficulty: domain.DifficultyEasy,
				Type:       domain.ActionBreak,
			}
		},
	},
	{
		Name: RuleMissedDayRecovery,
		Matches: func(c domain.DailyContext) bool {
			_, ok := firstAssignmentWithPriority(c.Assignments, domain.PriorityLow)
			return c.MissedDays > 0 && ok
		},
		Action: func(c domain.DailyContext) domain.NextAction {
			a, _ := firstAssignmentWithPriority(c.Assignments, domain.PriorityLow)
			return domain.NextAction{
				Task:       fmt.Sprintf("Finish %s (easy win)", a.Title),
				Duration:   30,
				Reason:     "Building momentum after missed days",
				Difficulty: domain.DifficultyEasy,
				Type:       domain.ActionRecovery,
			}
		},
	},
	{
		Name: RuleHighEnergyChallenge,
		Matches: func(c domain.DailyContext) bool {
			_, ok := firstAssignmentWithPriority(c.Assignments, domain.PriorityHigh)
			return c.EnergyLevel == domain.EnergyHigh && ok
		},
		Action: func(c domain.DailyContext) domain.NextAction {
			a, _ := firstAssignmentWithPriority(c.Assignments, domain.PriorityHigh)
			return domain.NextAction{
				Task:       fmt.Sprintf("Work on %s", a.Title),
				Duration:   90,
				Reason:     "High energy = perfect for challenging work",
				Difficulty: domain.DifficultyHard,
				Type:       domain.ActionStudy,
			}
		},
	},
	{
		Name: RuleLowEnergyRevision,
		Matches: func(c domain.DailyContext) bool {
			_, ok := firstRevisableSubject(c.Subjects)
			return c.EnergyLevel == domain.EnergyLow && ok
		},
		Action: func(c domain.DailyContext) domain.NextAction {
			s, _ := firstRevisableSubject(c.Subjects)
			return domain.NextAction{
				Task:       fmt.Sprintf("Quick revision: %s (20 min)", s.Name),
				Duration:   20,
				Reason:     "Low energy is perfect for light revision",
				Difficulty: domain.DifficultyEasy,
				Type:       domain.ActionRevision,
			}
		},
	},
	{
		Name: RuleFirstAssignment,
		Matches: func(c domain.DailyContext) bool {
			return len(c.Assignments) > 0
		},
		Action: func(c domain.DailyContext) domain.NextAction {
			return domain.NextAction{
				Task:       fmt.Sprintf("Work on %s", c.Assignments[0].Title),
				Duration:   60,
				Reason:     "Steady progress on your priorities",
				Difficulty: domain.DifficultyMedium,
				Type:       domain.ActionStudy,
			}
		},
	},
	{
		Name: RuleFirstSubject,
		Matches: func(c domain.DailyContext) bool {
			return len(c.Subjects) > 0
		},
		Action: func(c domain.DailyContext) domain.NextAction {
			return domain.NextAction{
				Task:       fmt.Sprintf("Review %s notes", c.Subjects[0].Name),
				Duration:   45,
				Reason:     "Strengthening your foundation",
				Difficulty: domain.DifficultyMedium,
				Type:       domain.ActionRevision,
			}
		},
	},
	{
		Name:    RulePlanTomorrow,
		Matches: func(domain.DailyContext) bool { return true },
		Action: func(domain.DailyContext) domain.NextAction {
			return domain.NextAction{
				Task:       "Plan tomorrow's work",
				Duration:   15,
				Reason:     "Preparation leads to success",
				Difficulty: domain.DifficultyEasy,
				Type:       domain.ActionStudy,
			}
		},
	},
}

func firstAssignmentWithPriority(assignments []domain.Assignment, p domain.Priority) (domain.Assignment, bool) {
	for _, a := range assignments {
		if a.Priority == p {
			return a, true
		}
	}
	return domain.Assignment{}, false
}

func firstRevisableSubject(subjects []domain.Subject) (domain.Subject, bool) {
	for _, s := range subjects {
		if s.HasBeenStudied() && s.RevisionCount < maxRevisionsForQuick {
			return s, true
		}
	}
	return domain.Subject{}, false
}

// Rules returns a copy of the decision table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(decisionTable))
	copy(out, decisionTable)
	return out
}
