package model

type SkillLevel struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level"`
}

type RecommendedSkill struct {
	Name        string `json:"name" validate:"required"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

type ActionItem struct {
	Task           string `json:"task" validate:"required"`
	EstimatedWeeks int    `json:"estimatedWeeks" validate:"min=0"`
	Priority       int    `json:"priority" validate:"min=0"`
}

// Roadmap shares its ID with the resume it was generated for.
type Roadmap struct {
	ID                string             `json:"id"`
	ResumeID          string             `json:"resumeId"`
	CurrentSkills     []SkillLevel       `json:"currentSkills" validate:"dive"`
	RecommendedSkills []RecommendedSkill `json:"recommendedSkills" validate:"dive"`
	ActionPlan        []ActionItem       `json:"actionPlan" validate:"dive"`
	TimelineWeeks     int                `json:"timelineWeeks" validate:"min=0"`
}
