package llm

import (
	"errors"
	"testing"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantOption string
	}{
		{
			"unsupported provider",
			Config{Provider: "bard", Model: "m"},
			"provider",
		},
		{
			"openai without api key",
			Config{Provider: ProviderOpenAI, Model: "gpt-4"},
			"api_key",
		},
		{
			"openai without model",
			Config{Provider: ProviderOpenAI, APIKey: "sk-test"},
			"model",
		},
		{
			"anthropic without api key",
			Config{Provider: ProviderAnthropic, Model: "claude-sonnet-4-0"},
			"api_key",
		},
		{
			"ollama without model",
			Config{Provider: ProviderOllama},
			"model",
		},
		{
			"ollama with malformed base url",
			Config{Provider: ProviderOllama, Model: "llama3.1", BaseURL: "localhost:11434"},
			"base_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)

			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if cfgErr.Option != tt.wantOption {
				t.Errorf("option = %q, expected %q", cfgErr.Option, tt.wantOption)
			}
		})
	}
}

func TestNewConstructsConfiguredProvider(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"openai", Config{Provider: ProviderOpenAI, Model: "gpt-4", APIKey: "sk-test"}},
		{"anthropic", Config{Provider: ProviderAnthropic, Model: "claude-sonnet-4-0", APIKey: "sk-ant-test"}},
		{"ollama", Config{Provider: ProviderOllama, Model: "llama3.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if provider == nil {
				t.Fatal("New returned a nil provider")
			}
		})
	}
}
