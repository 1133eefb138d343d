package llm

import (
	"context"
	"errors"
	"fmt"

	"linguatutor/models"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"

	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultTemperature   = 0.7
)

// ErrProviderUnavailable indicates the selected backend client could not be
// constructed at all. It is fatal at initialization.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ConfigurationError indicates a required option for the chosen provider is
// missing or invalid. It is fatal at initialization.
type ConfigurationError struct {
	Provider string
	Option   string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s configuration: %s %s", e.Provider, e.Option, e.Reason)
}

// InvocationError wraps any failure during a live model call. Callers are
// expected to recover from it rather than crash the conversation.
type InvocationError struct {
	Provider string
	Err      error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s invocation failed: %v", e.Provider, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Config selects and parameterizes one model backend. Selection happens once
// at construction, never per call.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
}

// Provider is the single call shape the tutor engine depends on. The message
// list carries system prompt, history and the new turn in dialogue order.
type Provider interface {
	Invoke(ctx context.Context, messages []models.Message) (string, error)
}

// New constructs the configured provider. There is no retry policy at this
// layer; retries, if any, belong to the caller.
func New(cfg Config) (Provider, error) {
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return newOpenAIProvider(cfg)
	case ProviderAnthropic:
		return newAnthropicProvider(cfg)
	case ProviderOllama:
		return newOllamaProvider(cfg)
	default:
		return nil, &ConfigurationError{Provider: cfg.Provider, Option: "provider", Reason: "is not supported"}
	}
}
