package service

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/resume-reviewer/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

var validate = validator.New()

// Fallbacks used when the provider omits an analysis field.
const (
	defaultAtsScore        = 75
	defaultOverallScore    = 75
	defaultKeywordMatch    = 70
	defaultFormatQuality   = 80
	defaultGrammarStyle    = 85
	defaultContentStrength = 75
	defaultCareerStage     = "mid"
)

// extractJSON strips markdown fences and any prose around the outermost object.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func parseDocument(raw, what string) (gjson.Result, error) {
	body := extractJSON(raw)
	if body == "" {
		return gjson.Result{}, fmt.Errorf("empty %s response", what)
	}
	if !gjson.Valid(body) {
		return gjson.Result{}, fmt.Errorf("malformed %s JSON from provider", what)
	}
	doc := gjson.Parse(body)
	if !doc.IsObject() {
		return gjson.Result{}, fmt.Errorf("%s response is not a JSON object", what)
	}
	return doc, nil
}

func intOr(r gjson.Result, fallback int) int {
	if !r.Exists() || r.Type == gjson.Null {
		return fallback
	}
	return int(r.Float())
}

func stringOr(r gjson.Result, fallback string) string {
	if s := strings.TrimSpace(r.String()); s != "" {
		return s
	}
	return fallback
}

func stringList(r gjson.Result) []string {
	out := []string{}
	for _, item := range r.Array() {
		if s := strings.TrimSpace(item.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseAnalysis(raw string) (model.Analysis, error) {
	doc, err := parseDocument(raw, "analysis")
	if err != nil {
		return model.Analysis{}, err
	}

	analysis := model.Analysis{
		AtsScore:        intOr(doc.Get("ats_score"), defaultAtsScore),
		OverallScore:    intOr(doc.Get("overall_score"), defaultOverallScore),
		KeywordMatch:    intOr(doc.Get("keyword_match"), defaultKeywordMatch),
		FormatQuality:   intOr(doc.Get("format_quality"), defaultFormatQuality),
		GrammarStyle:    intOr(doc.Get("grammar_style"), defaultGrammarStyle),
		ContentStrength: intOr(doc.Get("content_strength"), defaultContentStrength),
		Feedback: model.Feedback{
			Strengths:    stringList(doc.Get("feedback.strengths")),
			Improvements: stringList(doc.Get("feedback.improvements")),
			Issues:       stringList(doc.Get("feedback.issues")),
		},
		SkillsIdentified: stringList(doc.Get("skillsIdentified")),
		CareerStage:      stringOr(doc.Get("careerStage"), defaultCareerStage),
	}
	if err := validate.Struct(analysis); err != nil {
		return model.Analysis{}, fmt.Errorf("invalid analysis from provider: %w", err)
	}
	return analysis, nil
}

func parseQuestions(raw string, count int) ([]model.InterviewQuestion, error) {
	doc, err := parseDocument(raw, "questions")
	if err != nil {
		return nil, err
	}

	questions := []model.InterviewQuestion{}
	for _, item := range doc.Get("questions").Array() {
		if len(questions) == count {
			break
		}
		q := model.InterviewQuestion{
			Question:     strings.TrimSpace(item.Get("question").String()),
			SampleAnswer: strings.TrimSpace(item.Get("sampleAnswer").String()),
			Type:         model.QuestionTypeTechnical,
			Difficulty:   strings.ToLower(stringOr(item.Get("difficulty"), model.DifficultyMedium)),
		}
		if err := validate.Struct(q); err != nil {
			return nil, fmt.Errorf("invalid question %d from provider: %w", len(questions)+1, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func parseRoadmap(raw string) (model.Roadmap, error) {
	doc, err := parseDocument(raw, "roadmap")
	if err != nil {
		return model.Roadmap{}, err
	}

	roadmap := model.Roadmap{
		CurrentSkills:     []model.SkillLevel{},
		RecommendedSkills: []model.RecommendedSkill{},
		ActionPlan:        []model.ActionItem{},
		TimelineWeeks:     intOr(doc.Get("timelineWeeks"), 0),
	}
	for _, s := range doc.Get("currentSkills").Array() {
		roadmap.CurrentSkills = append(roadmap.CurrentSkills, model.SkillLevel{
			Name:  s.Get("name").String(),
			Level: s.Get("level").String(),
		})
	}
	for _, s := range doc.Get("recommendedSkills").Array() {
		roadmap.RecommendedSkills = append(roadmap.RecommendedSkills, model.RecommendedSkill{
			Name:        s.Get("name").String(),
			Priority:    s.Get("priority").String(),
			Description: s.Get("description").String(),
		})
	}
	for _, a := range doc.Get("actionPlan").Array() {
		roadmap.ActionPlan = append(roadmap.ActionPlan, model.ActionItem{
			Task:           a.Get("task").String(),
			EstimatedWeeks: intOr(a.Get("estimatedWeeks"), 0),
			Priority:       intOr(a.Get("priority"), 0),
		})
	}
	if err := validate.Struct(roadmap); err != nil {
		return model.Roadmap{}, fmt.Errorf("invalid roadmap from provider: %w", err)
	}
	return roadmap, nil
}
