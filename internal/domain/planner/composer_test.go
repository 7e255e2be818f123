package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/domain/tone"
)

func TestGeneratePlanScenarios(t *testing.T) {
	t.Parallel()

	t.Run("high energy class12 student with urgent work", func(t *testing.T) {
		t.Parallel()
		c := domain.DailyContext{
			Subjects:       []domain.Subject{{Name: "Mathematics", Credits: 4, ConfidenceLevel: 5}},
			Assignments:    []domain.Assignment{{Title: "Calculus HW", Priority: domain.PriorityHigh, EstimatedHours: 1}},
			SleepHours:     8,
			EnergyLevel:    domain.EnergyHigh,
			AvailableHours: 4,
			AgeGroup:       domain.AgeGroupClass12,
		}

		got := GeneratePlan(c)

		assert.Equal(t, "Work on Calculus HW", got.NextAction.Task)
		assert.Equal(t, 90, got.NextAction.Duration)
		assert.Equal(t, domain.DifficultyHard, got.NextAction.Difficulty)
		assert.Equal(t, domain.ActionStudy, got.NextAction.Type)
		assert.Equal(t,
			"Your energy is high today. Perfect time to tackle challenging work. Solid work. This will help in your exams.",
			got.PlanMessage)
		assert.Nil(t, got.RecoveryMessage)
		assert.Nil(t, got.RevisionReminder)
		require.NotNil(t, got.ConfidenceBoost)
		assert.Equal(t, "Solid work. This will help in your exams.", *got.ConfidenceBoost)
	})

	t.Run("overloaded class8 student", func(t *testing.T) {
		t.Parallel()
		c := domain.DailyContext{
			EnergyLevel:    domain.EnergyMedium,
			AvailableHours: 1.5,
			AgeGroup:       domain.AgeGroupClass8,
		}

		got := GeneratePlan(c)

		assert.Equal(t, domain.ActionBreak, got.NextAction.Type)
		assert.Equal(t, 30, got.NextAction.Duration)
		assert.Equal(t,
			"Steady energy today. Good balance of work and breaks. You're making good progress. Keep it up!",
			got.PlanMessage)
		assert.Nil(t, got.RecoveryMessage)
	})

	t.Run("low energy college student after missed days", func(t *testing.T) {
		t.Parallel()
		c := domain.DailyContext{
			Subjects: []domain.Subject{
				{Name: "Physics", ConfidenceLevel: 5, LastStudied: studied("2024-01-10"), RevisionCount: 1},
			},
			EnergyLevel:    domain.EnergyLow,
			AvailableHours: 3,
			AgeGroup:       domain.AgeGroupCollege,
			MissedDays:     2,
		}

		got := GeneratePlan(c)

		assert.Equal(t, "Quick revision: Physics (20 min)", got.NextAction.Task)
		assert.Equal(t, 20, got.NextAction.Duration)
		require.NotNil(t, got.RecoveryMessage)
		assert.Equal(t, RecoveryMessage, *got.RecoveryMessage)
		require.NotNil(t, got.RevisionReminder)
		assert.Equal(t, "You studied Physics 6 days ago. A quick revision today will help.", *got.RevisionReminder)
		assert.Equal(t,
			"Low energy day - that's normal. Focus on easier tasks and revision. Good momentum. Trust your process.",
			got.PlanMessage)
	})
}

func TestGeneratePlanMessagesFollowTone(t *testing.T) {
	t.Parallel()

	groups := []domain.AgeGroup{
		domain.AgeGroupClass3, domain.AgeGroupClass8, domain.AgeGroupClass12, domain.AgeGroupCollege, "phd", "",
	}
	for _, g := range groups {
		g := g
		t.Run(string(g), func(t *testing.T) {
			t.Parallel()
			got := GeneratePlan(domain.DailyContext{EnergyLevel: domain.EnergyMedium, AvailableHours: 3, AgeGroup: g})

			enc := tone.Resolve(g).Encouragement
			require.NotNil(t, got.ConfidenceBoost)
			assert.Equal(t, enc, *got.ConfidenceBoost)
			assert.Contains(t, got.PlanMessage, enc)
		})
	}
}

func TestGeneratePlanRecoveryMessage(t *testing.T) {
	t.Parallel()

	for _, missed := range []int{0, 1, 5} {
		got := GeneratePlan(domain.DailyContext{EnergyLevel: domain.EnergyHigh, AvailableHours: 3, MissedDays: missed})
		if missed > 0 {
			require.NotNil(t, got.RecoveryMessage)
			assert.Equal(t, RecoveryMessage, *got.RecoveryMessage)
		} else {
			assert.Nil(t, got.RecoveryMessage)
		}
	}
}

func TestGeneratePlanRevisionReminderUsesFirstStudiedSubject(t *testing.T) {
	t.Parallel()

	c := domain.DailyContext{
		Subjects: []domain.Subject{
			{Name: "Art", ConfidenceLevel: 5},
			{Name: "Biology", ConfidenceLevel: 5, LastStudied: studied("2024-05-01")},
			{Name: "Chemistry", ConfidenceLevel: 5, LastStudied: studied("2024-05-02")},
		},
		EnergyLevel:    domain.EnergyMedium,
		AvailableHours: 3,
	}

	got := GeneratePlan(c)

	require.NotNil(t, got.RevisionReminder)
	assert.Equal(t, "You studied Biology 6 days ago. A quick revision today will help.", *got.RevisionReminder)
}

func TestComposeReportsRule(t *testing.T) {
	t.Parallel()

	c := domain.DailyContext{EnergyLevel: domain.EnergyMedium, AvailableHours: 0.5}
	p := Compose(c)

	assert.Equal(t, RuleOverloadGuard, p.Rule)
	assert.Equal(t, GeneratePlan(c), p.Response)
}

func TestGeneratePlanIsIdempotent(t *testing.T) {
	t.Parallel()

	c := domain.DailyContext{
		Subjects:       []domain.Subject{{Name: "Geo", ConfidenceLevel: 5, LastStudied: studied("2024-01-01")}},
		Assignments:    []domain.Assignment{{Title: "Map", Priority: domain.PriorityLow}},
		EnergyLevel:    domain.EnergyLow,
		AvailableHours: 3,
		MissedDays:     1,
		AgeGroup:       domain.AgeGroupClass3,
	}

	assert.Equal(t, GeneratePlan(c), GeneratePlan(c))
}

func TestEndToEndScenarios(t *testing.T) {
	t.Parallel()

	t.Run("high energy picks the high priority assignment", func(t *testing.T) {
		got := GeneratePlan(domain.DailyContext{
			EnergyLevel: domain.EnergyHigh,
			Assignments: []domain.Assignment{
				{Title: "Reading", Priority: domain.PriorityLow},
				{Title: "Thermo HW", Priority: domain.PriorityHigh},
			},
			AvailableHours: 5,
		})
		assert.Equal(t, domain.NextAction{
			Task:       "Work on Thermo HW",
			Duration:   90,
			Reason:     "High energy = perfect for challenging work",
			Difficulty: domain.DifficultyHard,
			Type:       domain.ActionStudy,
		}, got.NextAction)
	})

	t.Run("low energy revises a studied subject", func(t *testing.T) {
		got := GeneratePlan(domain.DailyContext{
			EnergyLevel:    domain.EnergyLow,
			Subjects:       []domain.Subject{{Name: "Bio", ConfidenceLevel: 5, LastStudied: studied("2024-01-01"), RevisionCount: 1}},
			AvailableHours: 4,
		})
		assert.Equal(t, "Quick revision: Bio (20 min)", got.NextAction.Task)
		assert.Equal(t, 20, got.NextAction.Duration)
		assert.Equal(t, domain.DifficultyEasy, got.NextAction.Difficulty)
		assert.Equal(t, domain.ActionRevision, got.NextAction.Type)
	})

	t.Run("missed days recover with an easy win", func(t *testing.T) {
		got := GeneratePlan(domain.DailyContext{
			EnergyLevel:    domain.EnergyMedium,
			MissedDays:     2,
			Assignments:    []domain.Assignment{{Title: "Reading", Priority: domain.PriorityLow}},
			AgeGroup:       domain.AgeGroupClass3,
			AvailableHours: 3,
		})
		require.NotNil(t, got.RecoveryMessage)
		assert.Equal(t, domain.ActionRecovery, got.NextAction.Type)
		assert.Contains(t, got.NextAction.Task, "Reading")
	})
}
