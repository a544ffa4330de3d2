package roadmap

import "github.com/dsa-sprint/backend/internal/provider"

// RoadmapSchema constrains the multi-week plan the provider returns for
// an onboarded profile.
var RoadmapSchema = &provider.Schema{
	Name:        "study-roadmap",
	Description: "A multi-week coding-interview preparation roadmap",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"plan_meta": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"duration_days": map[string]any{"type": "integer"},
					"target_role":   map[string]any{"type": "string"},
					"level":         map[string]any{"type": "string"},
				},
				"required": []any{"duration_days", "target_role", "level"},
			},
			"weeks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week_goal": map[string]any{"type": "string"},
						"topics": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"daily_schedule": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"week_goal", "topics", "daily_schedule"},
				},
			},
			"daily_practice_templates": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"resources": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"success_metrics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"plan_meta", "weeks", "daily_practice_templates", "resources", "success_metrics"},
	},
}
