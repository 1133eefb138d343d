package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"linguatutor/services/llm"

	"github.com/joho/godotenv"
)

// Config is an explicit value object handed to constructors; nothing in the
// rest of the codebase reads the environment.
type Config struct {
	Port string

	DatabaseDriver string
	DatabaseDSN    string

	ModelProvider   string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	OllamaBaseURL   string
	OllamaModel     string
	Temperature     float64

	InvokeTimeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] No .env file found, using environment variables")
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		DatabaseDriver: getEnv("DB_DRIVER", "sqlite3"),
		DatabaseDSN:    getEnv("DB_DSN", "data/progress.db"),

		ModelProvider:   getEnv("MODEL_PROVIDER", llm.ProviderOllama),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", llm.DefaultOllamaBaseURL),
		OllamaModel:     getEnv("OLLAMA_MODEL", "llama3.1"),
		Temperature:     getEnvFloat("MODEL_TEMPERATURE", llm.DefaultTemperature),

		InvokeTimeout: getEnvDuration("INVOKE_TIMEOUT", 60*time.Second),
	}
}

// ModelConfig maps the loaded configuration onto the provider selection the
// llm package understands. Required-option validation happens in llm.New.
func (c *Config) ModelConfig() llm.Config {
	cfg := llm.Config{
		Provider:    c.ModelProvider,
		Temperature: c.Temperature,
	}

	switch c.ModelProvider {
	case llm.ProviderOpenAI:
		cfg.Model = c.OpenAIModel
		cfg.APIKey = c.OpenAIAPIKey
	case llm.ProviderAnthropic:
		cfg.Model = c.AnthropicModel
		cfg.APIKey = c.AnthropicAPIKey
	case llm.ProviderOllama:
		cfg.Model = c.OllamaModel
		cfg.BaseURL = c.OllamaBaseURL
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("[ERROR] Invalid float for %s: %q, using default", key, value)
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[ERROR] Invalid duration for %s: %q, using default", key, value)
		return fallback
	}
	return parsed
}
