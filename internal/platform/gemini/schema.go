package gemini

import "google.golang.org/genai"

// ConfusionResponseSchema matches domain.ConfusionResponse.
var ConfusionResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"calm_response": {
			Type:        genai.TypeString,
			Description: "A calm, reassuring response (1-2 sentences)",
		},
		"action_items": {
			Type:        genai.TypeArray,
			Description: "2-3 specific action items",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"plan_adjustment": {
			Type:        genai.TypeString,
			Description: "How to adjust today's plan",
		},
	},
	Required: []string{"calm_response", "action_items", "plan_adjustment"},
}
