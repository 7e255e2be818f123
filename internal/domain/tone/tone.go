// Package tone maps learner age groups to the phrasing used in plans and
// confusion responses.
package tone

import "github.com/planwise/planwise-api/internal/domain"

// Profile bundles the style and phrasing for one age group.
type Profile struct {
	Style         string `json:"style"`
	Encouragement string `json:"encouragement"`
	BreakMsg      string `json:"break_msg"`
}

var profiles = map[domain.AgeGroup]Profile{
	domain.AgeGroupClass3: {
		Style:         "friendly and playful",
		Encouragement: "Great job! You're doing amazing!",
		BreakMsg:      "Time for a fun break! 🎮",
	},
	domain.AgeGroupClass8: {
		Style:         "supportive and guiding",
		Encouragement: "You're making good progress. Keep it up!",
		BreakMsg:      "Take a break - you've earned it! 😊",
	},
	domain.AgeGroupClass12: {
		Style:         "direct and exam-focused",
		Encouragement: "Solid work. This will help in your exams.",
		BreakMsg:      "Strategic break time. Stay focused.",
	},
	domain.AgeGroupCollege: {
		Style:         "flexible and independent",
		Encouragement: "Good momentum. Trust your process.",
		BreakMsg:      "Break time. You know what you need.",
	},
}

// Default is the profile used for unrecognized age groups.
var Default = profiles[domain.AgeGroupCollege]

// Resolve returns the profile for ageGroup. Every input resolves; unknown or
// empty groups get Default.
func Resolve(ageGroup domain.AgeGroup) Profile {
	if p, ok := profiles[ageGroup]; ok {
		return p
	}
	return Default
}

// Known reports whether ageGroup has its own profile.
func Known(ageGroup domain.AgeGroup) bool {
	_, ok := profiles[ageGroup]
	return ok
}
