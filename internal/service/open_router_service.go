package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/resume-reviewer/internal/config"
	"github.com/fadilmartias/resume-reviewer/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenRouterService talks to an OpenAI-compatible chat completions endpoint.
// It has no schema-constrained output, so the expected JSON shape is spelled
// out in the system prompt instead.
type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
}

func NewOpenRouterService() (*OpenRouterService, error) {
	cfg := config.LoadOpenRouterConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	return newOpenRouterService(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
}

func newOpenRouterService(baseURL, apiKey, modelName string) *OpenRouterService {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(90*time.Second).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)
	return &OpenRouterService{APIKey: apiKey, Model: modelName, client: client}
}

func (s *OpenRouterService) Name() string {
	return "OpenRouter"
}

func (s *OpenRouterService) AnalyzeResume(ctx context.Context, resumeText string) (model.Analysis, error) {
	raw, err := s.complete(ctx, analysisSystemPrompt+jsonInstruction(analysisJSONShape), analysisUserPrompt(resumeText))
	if err != nil {
		return model.Analysis{}, fmt.Errorf("analyze resume: %w", err)
	}
	return parseAnalysis(raw)
}

func (s *OpenRouterService) GenerateTechnicalQuestions(ctx context.Context, resumeText string, count int) ([]model.InterviewQuestion, error) {
	raw, err := s.complete(ctx, questionsSystemPrompt(count)+jsonInstruction(questionsJSONShape), questionsUserPrompt(resumeText))
	if err != nil {
		return nil, fmt.Errorf("generate technical questions: %w", err)
	}
	return parseQuestions(raw, count)
}

func (s *OpenRouterService) GenerateCareerRoadmap(ctx context.Context, resumeText string, skills []string) (model.Roadmap, error) {
	raw, err := s.complete(ctx, roadmapSystemPrompt+jsonInstruction(roadmapJSONShape), roadmapUserPrompt(resumeText, skills))
	if err != nil {
		return model.Roadmap{}, fmt.Errorf("generate career roadmap: %w", err)
	}
	return parseRoadmap(raw)
}

func (s *OpenRouterService) complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.APIKey).
		SetBody(map[string]any{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": prompt},
			},
			"response_format": map[string]string{"type": "json_object"},
			"temperature":     0.1,
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("openrouter returned %d: %s", resp.StatusCode(), msg)
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
