package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey       string
	FastModel    string
	QualityModel string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		geminiConfig = &GeminiConfig{
			APIKey:       apiKey,
			FastModel:    getEnv("GEMINI_FAST_MODEL", "gemini-2.0-flash"),
			QualityModel: getEnv("GEMINI_QUALITY_MODEL", "gemini-2.5-pro"),
		}
	})
	return geminiConfig
}
