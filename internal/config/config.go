package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Completion providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all application configuration.
type Config struct {
	// Server
	Env            string
	Port           string
	AllowedOrigins []string
	StaticDir      string

	// Logging
	LogLevel  string
	LogFormat string

	// Aladin catalog API
	AladinAPIKey   string
	AladinBaseURL  string
	CatalogTimeout time.Duration

	// Completion API
	LLMProvider       string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	GeminiAPIKey      string
	GeminiModel       string
	CompletionTimeout time.Duration
}

// Load reads configuration from environment variables.
// .env.local and .env are loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getEnv("ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		StaticDir:     getEnv("STATIC_DIR", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", ""),
		AladinAPIKey:  getEnv("ALADIN_API_KEY", ""),
		AladinBaseURL: getEnv("ALADIN_BASE_URL", "http://www.aladin.co.kr/ttb/api"),
		LLMProvider:   strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
		if cfg.IsProduction() {
			cfg.LogFormat = "json"
		}
	}

	if !cfg.IsProduction() {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, "http://localhost:5173", "http://localhost:5001")
	}
	if cloudRunURL := os.Getenv("CLOUD_RUN_URL"); cloudRunURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, cloudRunURL)
	}
	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	var err error
	cfg.CatalogTimeout, err = time.ParseDuration(getEnv("CATALOG_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_TIMEOUT: %w", err)
	}

	cfg.CompletionTimeout, err = time.ParseDuration(getEnv("COMPLETION_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMPLETION_TIMEOUT: %w", err)
	}

	switch cfg.LLMProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (must be 'openai' or 'gemini')", cfg.LLMProvider)
	}

	return cfg, nil
}

// IsProduction reports whether ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ValidateForCatalog checks configuration needed for the Aladin catalog.
func (c *Config) ValidateForCatalog() error {
	if c.AladinAPIKey == "" {
		return errors.New("ALADIN_API_KEY is required for catalog access")
	}
	return nil
}

// ValidateForCompletion checks configuration needed for the selected completion provider.
func (c *Config) ValidateForCompletion() error {
	switch c.LLMProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required when LLM_PROVIDER is gemini")
		}
	default:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required when LLM_PROVIDER is openai")
		}
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
