package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"linguatutor/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

type ollamaProvider struct {
	llm         llms.Model
	temperature float64
}

func newOllamaProvider(cfg Config) (*ollamaProvider, error) {
	if cfg.Model == "" {
		return nil, &ConfigurationError{Provider: ProviderOllama, Option: "model", Reason: "is required"}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOllamaBaseURL
	}
	if !strings.HasPrefix(baseURL, "http") {
		return nil, &ConfigurationError{Provider: ProviderOllama, Option: "base_url", Reason: "must be a valid HTTP URL"}
	}

	model, err := ollama.New(
		ollama.WithModel(cfg.Model),
		ollama.WithServerURL(baseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: ollama client: %v", ErrProviderUnavailable, err)
	}

	return &ollamaProvider{llm: model, temperature: cfg.Temperature}, nil
}

func (p *ollamaProvider) Invoke(ctx context.Context, messages []models.Message) (string, error) {
	resp, err := p.llm.GenerateContent(ctx, toLangchainMessages(messages), llms.WithTemperature(p.temperature))
	if err != nil {
		log.Printf("[ERROR] Ollama call failed: %v", err)
		return "", &InvocationError{Provider: ProviderOllama, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &InvocationError{Provider: ProviderOllama, Err: fmt.Errorf("no response choices returned")}
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}
