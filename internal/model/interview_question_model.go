package model

const (
	QuestionTypeTechnical   = "technical"
	QuestionTypeBehavioral  = "behavioral"
	QuestionTypeSituational = "situational"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type InterviewQuestion struct {
	ID           string `json:"id"`
	ResumeID     string `json:"resumeId"`
	Question     string `json:"question" validate:"required"`
	SampleAnswer string `json:"sampleAnswer"`
	Type         string `json:"type" validate:"oneof=technical behavioral situational"`
	Difficulty   string `json:"difficulty" validate:"oneof=easy medium hard"`
}
