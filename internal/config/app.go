package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		name := os.Getenv("APP_NAME")
		if name == "" {
			name = "Resume Reviewer"
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":5000"
		}
		appConfig = &AppConfig{
			Name:  name,
			Env:   env,
			Port:  port,
			Debug: getEnvBool("APP_DEBUG", false),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// ExposeErrorDetails reports whether error responses may carry the underlying
// error and a stack trace. It needs APP_DEBUG and is never true in production.
func (c *AppConfig) ExposeErrorDetails() bool {
	return c.Debug && !c.IsProduction()
}
