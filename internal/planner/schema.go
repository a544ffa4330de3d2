package planner

import "github.com/dsa-sprint/backend/internal/provider"

// SprintSchema is the declarative contract for sprint generation output.
// Every field is required; block and practice ordering is meaningful.
var SprintSchema = &provider.Schema{
	Name:        "sprint-plan",
	Description: "A single-day coding-interview study sprint",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":         map[string]any{"type": "string"},
			"total_minutes": map[string]any{"type": "integer"},
			"blocks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":      map[string]any{"type": "string"},
						"minutes":   map[string]any{"type": "integer"},
						"objective": map[string]any{"type": "string"},
					},
					"required": []any{"name", "minutes", "objective"},
				},
			},
			"practice": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"platform":      map[string]any{"type": "string"},
						"problem_title": map[string]any{"type": "string"},
						"difficulty":    map[string]any{"type": "string"},
						"why_this":      map[string]any{"type": "string"},
					},
					"required": []any{"platform", "problem_title", "difficulty", "why_this"},
				},
			},
			"quick_revision": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"common_mistakes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"title", "total_minutes", "blocks", "practice", "quick_revision", "common_mistakes"},
	},
}
