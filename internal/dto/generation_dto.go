package dto

import "github.com/fadilmartias/resume-reviewer/internal/model"

// GenerationBundle holds the three generator outputs for one resume text.
// Records in it carry no IDs until they are committed to the store.
type GenerationBundle struct {
	Analysis           model.Analysis            `json:"analysis"`
	TechnicalQuestions []model.InterviewQuestion `json:"technicalQuestions"`
	Roadmap            model.Roadmap             `json:"roadmap"`
}
