package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fadilmartias/resume-reviewer/internal/config"
	"github.com/fadilmartias/resume-reviewer/internal/model"
	"google.golang.org/genai"
)

type GeminiService struct {
	Client            *genai.Client
	FastModel         string
	QualityModel      string
	RequestTimeout    time.Duration
	consecutiveErrors atomic.Int32
	lastFailure       atomic.Int64
	circuitBreakerMax int32
	// CircuitCooldown is how long the breaker stays open before a trial call is let through.
	CircuitCooldown time.Duration
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	apiKey := geminiConfig.APIKey
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY or GOOGLE_API_KEY environment variable")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:            client,
		FastModel:         geminiConfig.FastModel,
		QualityModel:      geminiConfig.QualityModel,
		RequestTimeout:    90 * time.Second,
		circuitBreakerMax: 5,
		CircuitCooldown:   time.Minute,
	}, nil
}

func (s *GeminiService) Name() string {
	return "Gemini"
}

func (s *GeminiService) AnalyzeResume(ctx context.Context, resumeText string) (model.Analysis, error) {
	raw, err := s.generateJSON(ctx, s.FastModel, analysisSystemPrompt, analysisUserPrompt(resumeText), analysisSchema())
	if err != nil {
		return model.Analysis{}, fmt.Errorf("analyze resume: %w", err)
	}
	return parseAnalysis(raw)
}

func (s *GeminiService) GenerateTechnicalQuestions(ctx context.Context, resumeText string, count int) ([]model.InterviewQuestion, error) {
	raw, err := s.generateJSON(ctx, s.FastModel, questionsSystemPrompt(count), questionsUserPrompt(resumeText), questionsSchema())
	if err != nil {
		return nil, fmt.Errorf("generate technical questions: %w", err)
	}
	return parseQuestions(raw, count)
}

func (s *GeminiService) GenerateCareerRoadmap(ctx context.Context, resumeText string, skills []string) (model.Roadmap, error) {
	raw, err := s.generateJSON(ctx, s.QualityModel, roadmapSystemPrompt, roadmapUserPrompt(resumeText, skills), roadmapSchema())
	if err != nil {
		return model.Roadmap{}, fmt.Errorf("generate career roadmap: %w", err)
	}
	return parseRoadmap(raw)
}

func (s *GeminiService) generateJSON(ctx context.Context, modelName, systemPrompt, prompt string, schema *genai.Schema) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(0.1)),
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	}
	result, err := s.GenerateContent(ctx, modelName, prompt, genConfig)
	if err != nil {
		return "", err
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}

// GenerateContent makes a single call to modelName. Failures are returned as
// they are and count toward the circuit breaker.
func (s *GeminiService) GenerateContent(ctx context.Context, modelName string, prompt string, genConfig *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}

	if n, open := s.GetCircuitBreakerStatus(); open {
		return nil, fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", n)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	started := time.Now()
	result, err := s.Client.Models.GenerateContent(timeoutCtx, modelName, genai.Text(prompt), genConfig)
	if err != nil {
		log.Printf("Gemini %s failed after %v: %v", modelName, time.Since(started), err)
		s.recordFailure()
		return nil, err
	}
	s.consecutiveErrors.Store(0)

	if err := s.validateGenerateResponse(result); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	return result, nil
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

func (s *GeminiService) recordFailure() {
	s.consecutiveErrors.Add(1)
	s.lastFailure.Store(time.Now().UnixNano())
}

// GetCircuitBreakerStatus reports the breaker as open while the error streak is
// at the limit and the last failure is younger than CircuitCooldown.
func (s *GeminiService) GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	n := s.consecutiveErrors.Load()
	if n < s.circuitBreakerMax {
		return int(n), false
	}
	since := time.Since(time.Unix(0, s.lastFailure.Load()))
	return int(n), since < s.CircuitCooldown
}
