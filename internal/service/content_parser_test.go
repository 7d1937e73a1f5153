package service

import (
	"testing"

	"github.com/fadilmartias/resume-reviewer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":{"b":2}}`, extractJSON(`Sure! {"a":{"b":2}} hope that helps`))
	assert.Equal(t, "plain", extractJSON("  plain "))
}

func TestParseAnalysis(t *testing.T) {
	raw := `{
		"ats_score": 82.6, "overall_score": 77, "keyword_match": 64,
		"format_quality": 90, "grammar_style": 88, "content_strength": 71,
		"feedback": {"strengths": ["Clear impact", " "], "improvements": ["Add metrics"], "issues": ["Dates inconsistent"]},
		"skillsIdentified": ["Go", "Kubernetes"],
		"careerStage": "senior"
	}`

	a, err := parseAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, 82, a.AtsScore)
	assert.Equal(t, 77, a.OverallScore)
	assert.Equal(t, 64, a.KeywordMatch)
	assert.Equal(t, 90, a.FormatQuality)
	assert.Equal(t, 88, a.GrammarStyle)
	assert.Equal(t, 71, a.ContentStrength)
	assert.Equal(t, []string{"Clear impact"}, a.Feedback.Strengths)
	assert.Equal(t, []string{"Go", "Kubernetes"}, a.SkillsIdentified)
	assert.Equal(t, "senior", a.CareerStage)
	assert.Empty(t, a.ID)
}

func TestParseAnalysis_Defaults(t *testing.T) {
	a, err := parseAnalysis(`{}`)
	require.NoError(t, err)
	assert.Equal(t, defaultAtsScore, a.AtsScore)
	assert.Equal(t, defaultOverallScore, a.OverallScore)
	assert.Equal(t, defaultKeywordMatch, a.KeywordMatch)
	assert.Equal(t, defaultFormatQuality, a.FormatQuality)
	assert.Equal(t, defaultGrammarStyle, a.GrammarStyle)
	assert.Equal(t, defaultContentStrength, a.ContentStrength)
	assert.Equal(t, defaultCareerStage, a.CareerStage)
	assert.NotNil(t, a.SkillsIdentified)
	assert.NotNil(t, a.Feedback.Issues)
}

func TestParseAnalysis_Rejects(t *testing.T) {
	_, err := parseAnalysis(`not json at all`)
	assert.Error(t, err)

	_, err = parseAnalysis(`{"ats_score": 140}`)
	assert.ErrorContains(t, err, "invalid analysis")

	_, err = parseAnalysis(``)
	assert.Error(t, err)
}

func TestParseQuestions_TruncatesToCount(t *testing.T) {
	raw := `{"questions": [
		{"question": "What is a goroutine?", "sampleAnswer": "A lightweight thread.", "type": "technical", "difficulty": "easy"},
		{"question": "Explain channels.", "sampleAnswer": "Typed conduits.", "difficulty": "Medium"},
		{"question": "Design a rate limiter.", "sampleAnswer": "Token bucket.", "type": "technical", "difficulty": "hard"}
	]}`

	qs, err := parseQuestions(raw, 2)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "What is a goroutine?", qs[0].Question)
	assert.Equal(t, model.QuestionTypeTechnical, qs[1].Type)
	assert.Equal(t, model.DifficultyMedium, qs[1].Difficulty)
}

func TestParseQuestions_ForcesTechnicalType(t *testing.T) {
	qs, err := parseQuestions(`{"questions": [{"question": "Q", "type": "behavioral", "difficulty": "easy"}]}`, 5)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, model.QuestionTypeTechnical, qs[0].Type)
}

func TestParseQuestions_Invalid(t *testing.T) {
	_, err := parseQuestions(`{"questions": [{"question": "", "difficulty": "easy"}]}`, 5)
	assert.Error(t, err)

	_, err = parseQuestions(`{"questions": [{"question": "Q", "difficulty": "impossible"}]}`, 5)
	assert.Error(t, err)

	qs, err := parseQuestions(`{"questions": []}`, 5)
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func TestParseRoadmap(t *testing.T) {
	raw := `{
		"currentSkills": [{"name": "Go", "level": "advanced"}],
		"recommendedSkills": [{"name": "System Design", "priority": "high", "description": "Scale systems"}],
		"actionPlan": [{"task": "Ship a service", "estimatedWeeks": 4, "priority": 1}],
		"timelineWeeks": 24
	}`

	rm, err := parseRoadmap(raw)
	require.NoError(t, err)
	assert.Equal(t, []model.SkillLevel{{Name: "Go", Level: "advanced"}}, rm.CurrentSkills)
	assert.Equal(t, "System Design", rm.RecommendedSkills[0].Name)
	assert.Equal(t, 4, rm.ActionPlan[0].EstimatedWeeks)
	assert.Equal(t, 24, rm.TimelineWeeks)
}

func TestParseRoadmap_RejectsUnnamedSkill(t *testing.T) {
	_, err := parseRoadmap(`{"currentSkills": [{"level": "expert"}], "timelineWeeks": 12}`)
	assert.ErrorContains(t, err, "invalid roadmap")
}
