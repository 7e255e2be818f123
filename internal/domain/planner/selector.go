package planner

import "github.com/planwise/planwise-api/internal/domain"

// Decision is a selected action together with the rule that produced it.
type Decision struct {
	Rule   string
	Action domain.NextAction
}

// Select evaluates the decision table and returns the first match.
func Select(c domain.DailyContext) Decision {
	for _, r := range decisionTable {
		if r.Matches(c) {
			return Decision{Rule: r.Name, Action: r.Action(c)}
		}
	}
	// Unreachable: the final rule always matches.
	last := decisionTable[len(decisionTable)-1]
	return Decision{Rule: last.Name, Action: last.Action(c)}
}

// SelectNextAction returns the recommended next action for c.
func SelectNextAction(c domain.DailyContext) domain.NextAction {
	return Select(c).Action
}
