// Package provider is the boundary to the hosted generative-AI services.
// A provider turns a system instruction, a prompt, and a JSON schema into
// schema-conforming JSON; everything else in the backend treats it as an
// opaque function.
package provider

import (
	"context"
	"encoding/json"
	"strings"
)

// Client is implemented by each provider backend and by the mock.
type Client interface {
	// Generate sends the prompt to the model and returns its output. When
	// req.Schema is set the provider requests native structured output
	// and the returned Content is validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model identifier requests are served with.
	// It is folded into every cache key.
	ModelID() string
}

// Request is a single-turn completion request.
type Request struct {
	// System sets the model's role and hard constraints.
	System string

	// Prompt is the per-request user message.
	Prompt string

	// Schema, when set, constrains the output shape.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls sampling randomness, 0.0 - 1.0. The proxies
	// run low temperatures to favor determinism and constraint adherence.
	Temperature float64
}

// Schema is a JSON Schema document the provider output must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "sprint-plan".
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated JSON payload.
	Content json.RawMessage

	// Model is the model that actually served the request.
	Model string

	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// StripCodeFences removes a leading ```json / ``` fence pair that models
// sometimes wrap JSON output in despite instructions not to.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}
