package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fadilmartias/resume-reviewer/internal/model"
)

type fakeGenerator struct {
	analyze   func(ctx context.Context, text string) (model.Analysis, error)
	questions func(ctx context.Context, text string, count int) ([]model.InterviewQuestion, error)
	roadmap   func(ctx context.Context, text string, skills []string) (model.Roadmap, error)

	roadmapCalls atomic.Int32
}

func (f *fakeGenerator) Name() string { return "Fake" }

func (f *fakeGenerator) AnalyzeResume(ctx context.Context, text string) (model.Analysis, error) {
	if f.analyze != nil {
		return f.analyze(ctx, text)
	}
	return sampleAnalysis(72), nil
}

func (f *fakeGenerator) GenerateTechnicalQuestions(ctx context.Context, text string, count int) ([]model.InterviewQuestion, error) {
	if f.questions != nil {
		return f.questions(ctx, text, count)
	}
	return sampleTechnical(count), nil
}

func (f *fakeGenerator) GenerateCareerRoadmap(ctx context.Context, text string, skills []string) (model.Roadmap, error) {
	f.roadmapCalls.Add(1)
	if f.roadmap != nil {
		return f.roadmap(ctx, text, skills)
	}
	return sampleRoadmap(skills), nil
}

func sampleAnalysis(ats int) model.Analysis {
	return model.Analysis{
		AtsScore:         ats,
		OverallScore:     70,
		KeywordMatch:     65,
		FormatQuality:    80,
		GrammarStyle:     85,
		ContentStrength:  60,
		Feedback:         model.Feedback{Strengths: []string{"Clear"}, Improvements: []string{"Metrics"}, Issues: []string{}},
		SkillsIdentified: []string{"Go", "PostgreSQL", "Docker"},
		CareerStage:      "mid",
	}
}

func sampleTechnical(n int) []model.InterviewQuestion {
	qs := make([]model.InterviewQuestion, n)
	for i := range qs {
		qs[i] = model.InterviewQuestion{
			Question:     fmt.Sprintf("Technical question %d", i+1),
			SampleAnswer: "Answer",
			Type:         model.QuestionTypeTechnical,
			Difficulty:   model.DifficultyMedium,
		}
	}
	return qs
}

func sampleRoadmap(skills []string) model.Roadmap {
	current := make([]model.SkillLevel, 0, len(skills))
	for _, s := range skills {
		current = append(current, model.SkillLevel{Name: s, Level: "intermediate"})
	}
	return model.Roadmap{
		CurrentSkills:     current,
		RecommendedSkills: []model.RecommendedSkill{{Name: "System Design", Priority: "high", Description: "Design scalable systems"}},
		ActionPlan:        []model.ActionItem{{Task: "Deploy app to cloud", EstimatedWeeks: 4, Priority: 2}},
		TimelineWeeks:     16,
	}
}
