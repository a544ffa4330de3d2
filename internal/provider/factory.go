package provider

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Default model identifiers per backend. Overridable via *_MODEL env vars.
const (
	defaultGeminiModel    = "gemini-2.5-flash-lite"
	defaultAnthropicModel = "claude-haiku-4-5-20251001"
	defaultOpenAIModel    = "gpt-4o-mini"
)

// FromEnv builds the Client selected by LLM_PROVIDER (default "gemini").
// A missing API key for the selected backend is a hard error: there is no
// embedded fallback credential.
func FromEnv(ctx context.Context) (Client, error) {
	if os.Getenv("MOCK_GENERATOR") == "true" {
		log.Println("Provider using mock data")
		return NewMockClient(), nil
	}

	name := os.Getenv("LLM_PROVIDER")
	if name == "" {
		name = "gemini"
	}

	switch name {
	case "gemini":
		return NewGeminiClient(ctx, GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", defaultGeminiModel),
		})
	case "anthropic":
		return NewAnthropicClient(AnthropicConfig{
			APIKey: os.Getenv("ANTHROPIC_API_KEY"),
			Model:  getEnv("ANTHROPIC_MODEL", defaultAnthropicModel),
		})
	case "openai":
		return NewOpenAIClient(OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getEnv("OPENAI_MODEL", defaultOpenAIModel),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		})
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", name)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
