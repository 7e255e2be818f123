package domain

// EnergyLevel is the student's self-reported energy for the day.
type EnergyLevel string

// Energy levels.
const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// Priority classifies how urgent an assignment is.
type Priority string

// Assignment priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AgeGroup is the learner category that selects a tone profile.
type AgeGroup string

// Recognized age groups. Any other value is treated as AgeGroupCollege by the
// tone resolver.
const (
	AgeGroupClass3  AgeGroup = "class3"
	AgeGroupClass8  AgeGroup = "class8"
	AgeGroupClass12 AgeGroup = "class12"
	AgeGroupCollege AgeGroup = "college"
)

// Difficulty rates how demanding a recommended action is.
type Difficulty string

// Difficulties.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ActionType categorizes a recommended action.
type ActionType string

// Action types.
const (
	ActionStudy    ActionType = "study"
	ActionRevision ActionType = "revision"
	ActionBreak    ActionType = "break"
	ActionRecovery ActionType = "recovery"
)

// StudyMode is the student's preferred working mode for the day.
type StudyMode string

// Study modes.
const (
	StudyModeStudy      StudyMode = "study"
	StudyModeRevision   StudyMode = "revision"
	StudyModeExamSprint StudyMode = "exam_sprint"
	StudyModeLight      StudyMode = "light"
)
