package models

import (
	"encoding/json"
	"time"
)

// RoadmapPlan is a multi-week study roadmap generated from a profile.
type RoadmapPlan struct {
	PlanMeta               PlanMeta   `json:"plan_meta"`
	Weeks                  []WeekPlan `json:"weeks"`
	DailyPracticeTemplates []string   `json:"daily_practice_templates"`
	Resources              []string   `json:"resources"`
	SuccessMetrics         []string   `json:"success_metrics"`
}

type PlanMeta struct {
	DurationDays int    `json:"duration_days"`
	TargetRole   string `json:"target_role"`
	Level        string `json:"level"`
}

type WeekPlan struct {
	WeekGoal      string   `json:"week_goal"`
	Topics        []string `json:"topics"`
	DailySchedule []string `json:"daily_schedule"`
}

// StoredPlan is a persisted roadmap row. PlanJSON holds the provider
// payload verbatim.
type StoredPlan struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	PlanJSON  json.RawMessage `json:"plan_json"`
	ModelUsed string          `json:"model_used"`
	CreatedAt time.Time       `json:"created_at"`
}

type GeneratePlanRequest struct {
	UserID int64 `json:"user_id"`
}

// DailyTask is one cell of the roadmap's daily schedule, resolved by date.
type DailyTask struct {
	Date     string `json:"date"`
	Summary  string `json:"summary"`
	WeekGoal string `json:"week_goal"`
	DayIndex int    `json:"day_index"`
}
