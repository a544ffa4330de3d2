package evaluator

import "github.com/dsa-sprint/backend/internal/provider"

// EvaluationSchema constrains the model's verdict on a submitted answer.
var EvaluationSchema = &provider.Schema{
	Name:        "answer-evaluation",
	Description: "Scored feedback on a free-text answer to a practice problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 10,
			},
			"correctness": map[string]any{
				"type": "string",
				"enum": []any{"correct", "partially_correct", "incorrect"},
			},
			"main_mistakes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"ideal_approach": map[string]any{"type": "string"},
			"next_practice": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"score", "correctness", "main_mistakes", "ideal_approach", "next_practice"},
	},
}
