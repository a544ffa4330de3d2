package provider

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name: "test-shape",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 10,
			},
		},
		"required": []any{"title", "score"},
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"title": "ok", "score": 7}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title": "ok"}`)
	err := validateResponse(testSchema, raw)
	if err == nil {
		t.Fatal("expected validation error for missing required field")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"title": "ok", "score": 42}`)
	if err := validateResponse(testSchema, raw); err == nil {
		t.Fatal("expected validation error for score above maximum")
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	raw := json.RawMessage(`{"title": "ok"`)
	err := validateResponse(testSchema, raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got: %v", err)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		if got := StripCodeFences(tt.input); got != tt.expected {
			t.Errorf("%s: StripCodeFences(%q) = %q, want %q", tt.name, tt.input, got, tt.expected)
		}
	}
}
