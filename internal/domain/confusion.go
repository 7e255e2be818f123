package domain

// ConfusionDump is a free-text description of what the student is stuck on.
type ConfusionDump struct {
	Confusion string   `json:"confusion" validate:"required"`
	AgeGroup  AgeGroup `json:"age_group"`
}

// ConfusionResponse is the structured guidance returned for a ConfusionDump.
type ConfusionResponse struct {
	CalmResponse   string   `json:"calm_response"   validate:"required"`
	ActionItems    []string `json:"action_items"    validate:"required,min=2,max=3,dive,required"`
	PlanAdjustment string   `json:"plan_adjustment" validate:"required"`
}
