package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"

	// MinGenerationWorkers is the number of generator calls that may be in flight for one upload.
	MinGenerationWorkers = 3
)

type GenerationConfig struct {
	Provider      string
	Workers       int
	QuestionCount int
	Timeout       time.Duration
}

var (
	generationConfig *GenerationConfig
	generationOnce   sync.Once
)

func LoadGenerationConfig() *GenerationConfig {
	generationOnce.Do(func() {
		provider := strings.ToLower(getEnv("AI_PROVIDER", ProviderGemini))
		if provider != ProviderGemini && provider != ProviderOpenRouter {
			log.Printf("Warning: unknown AI_PROVIDER %q, defaulting to %s", provider, ProviderGemini)
			provider = ProviderGemini
		}

		workers := getEnvInt("GENERATION_WORKERS", MinGenerationWorkers)
		if workers < MinGenerationWorkers {
			workers = MinGenerationWorkers
		}

		count := getEnvInt("TECHNICAL_QUESTION_COUNT", 10)
		if count <= 0 {
			count = 10
		}

		timeout, err := time.ParseDuration(getEnv("GENERATION_TIMEOUT", "3m"))
		if err != nil || timeout <= 0 {
			log.Printf("Warning: invalid GENERATION_TIMEOUT, defaulting to 3m")
			timeout = 3 * time.Minute
		}

		generationConfig = &GenerationConfig{
			Provider:      provider,
			Workers:       workers,
			QuestionCount: count,
			Timeout:       timeout,
		}
	})
	return generationConfig
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, defaulting to %d", key, raw, fallback)
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
