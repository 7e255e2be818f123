package confusion

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/domain/tone"
)

const promptText = `A student (age group: {{.AgeGroup}}) is feeling: "{{.Confusion}}"

Respond in a {{.Style}} tone. Provide:
1. A calm, reassuring response (1-2 sentences)
2. 2-3 specific action items
3. How to adjust today's plan

Return JSON:
{
  "calm_response": "reassuring message",
  "action_items": ["action1", "action2", "action3"],
  "plan_adjustment": "how to modify today's plan"
}`

var promptTemplate = template.Must(template.New("confusion").Parse(promptText))

type promptData struct {
	AgeGroup  domain.AgeGroup
	Confusion string
	Style     string
}

// buildPrompt renders the instruction sent to the text generator.
func buildPrompt(dump domain.ConfusionDump, t tone.Profile) (string, error) {
	var buf bytes.Buffer
	err := promptTemplate.Execute(&buf, promptData{
		AgeGroup:  dump.AgeGroup,
		Confusion: dump.Confusion,
		Style:     t.Style,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
