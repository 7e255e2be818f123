package domain

// NextAction is the single recommendation produced for a request.
type NextAction struct {
	Task       string     `json:"task"`
	Duration   int        `json:"duration"` // minutes
	Reason     string     `json:"reason"`
	Difficulty Difficulty `json:"difficulty"`
	Type       ActionType `json:"type"`
}

// PlanResponse wraps the next action with tone-aware messaging.
type PlanResponse struct {
	NextAction       NextAction `json:"next_action"`
	PlanMessage      string     `json:"plan_message"`
	RecoveryMessage  *string    `json:"recovery_message"`
	ConfidenceBoost  *string    `json:"confidence_boost"`
	RevisionReminder *string    `json:"revision_reminder"`
}
