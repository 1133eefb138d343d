package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"linguatutor/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 2048

type anthropicProvider struct {
	client      *anthropic.Client
	model       anthropic.Model
	temperature float64
}

func newAnthropicProvider(cfg Config) (*anthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigurationError{Provider: ProviderAnthropic, Option: "api_key", Reason: "is required"}
	}
	if cfg.Model == "" {
		return nil, &ConfigurationError{Provider: ProviderAnthropic, Option: "model", Reason: "is required"}
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))

	return &anthropicProvider{
		client:      &client,
		model:       anthropic.Model(cfg.Model),
		temperature: cfg.Temperature,
	}, nil
}

func (p *anthropicProvider) Invoke(ctx context.Context, messages []models.Message) (string, error) {
	// Anthropic takes the system prompt as a dedicated parameter rather than
	// as a message in the conversation.
	var system []anthropic.TextBlockParam
	var anthropicMessages []anthropic.MessageParam

	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case models.RoleTutor:
			anthropicMessages = append(anthropicMessages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			anthropicMessages = append(anthropicMessages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       p.model,
		MaxTokens:   anthropicMaxTokens,
		Messages:    anthropicMessages,
		System:      system,
		Temperature: anthropic.Float(p.temperature),
	})
	if err != nil {
		log.Printf("[ERROR] Anthropic call failed: %v", err)
		return "", &InvocationError{Provider: ProviderAnthropic, Err: err}
	}

	var text strings.Builder
	for _, block := range response.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", &InvocationError{Provider: ProviderAnthropic, Err: fmt.Errorf("no text content returned")}
	}

	return strings.TrimSpace(text.String()), nil
}
