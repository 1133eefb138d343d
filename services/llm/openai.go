package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"linguatutor/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

type openAIProvider struct {
	llm         llms.Model
	temperature float64
}

func newOpenAIProvider(cfg Config) (*openAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigurationError{Provider: ProviderOpenAI, Option: "api_key", Reason: "is required"}
	}
	if cfg.Model == "" {
		return nil, &ConfigurationError{Provider: ProviderOpenAI, Option: "model", Reason: "is required"}
	}

	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: openai client: %v", ErrProviderUnavailable, err)
	}

	return &openAIProvider{llm: model, temperature: cfg.Temperature}, nil
}

func (p *openAIProvider) Invoke(ctx context.Context, messages []models.Message) (string, error) {
	resp, err := p.llm.GenerateContent(ctx, toLangchainMessages(messages), llms.WithTemperature(p.temperature))
	if err != nil {
		log.Printf("[ERROR] OpenAI call failed: %v", err)
		return "", &InvocationError{Provider: ProviderOpenAI, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &InvocationError{Provider: ProviderOpenAI, Err: fmt.Errorf("no response choices returned")}
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func toLangchainMessages(messages []models.Message) []llms.MessageContent {
	history := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		var msgType schema.ChatMessageType
		switch msg.Role {
		case models.RoleSystem:
			msgType = schema.ChatMessageTypeSystem
		case models.RoleTutor:
			msgType = schema.ChatMessageTypeAI
		default:
			msgType = schema.ChatMessageTypeHuman
		}
		history = append(history, llms.TextParts(msgType, msg.Content))
	}
	return history
}
