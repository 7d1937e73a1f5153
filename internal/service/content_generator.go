package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/resume-reviewer/internal/config"
	"github.com/fadilmartias/resume-reviewer/internal/model"
)

// ContentGeneratorInterface is the AI provider boundary. Returned records carry
// no IDs; the caller assigns them when it stores the results.
type ContentGeneratorInterface interface {
	Name() string
	AnalyzeResume(ctx context.Context, resumeText string) (model.Analysis, error)
	GenerateTechnicalQuestions(ctx context.Context, resumeText string, count int) ([]model.InterviewQuestion, error)
	GenerateCareerRoadmap(ctx context.Context, resumeText string, skills []string) (model.Roadmap, error)
}

// NewContentGenerator builds the generator selected by AI_PROVIDER.
func NewContentGenerator(ctx context.Context, provider string) (ContentGeneratorInterface, error) {
	switch provider {
	case config.ProviderOpenRouter:
		return NewOpenRouterService()
	case config.ProviderGemini, "":
		return NewGeminiService(ctx)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", provider)
	}
}
