package models

import "strings"

// PlanRequest is the input for one-shot sprint generation. All three
// fields are required; a zero minutes_available counts as missing.
type PlanRequest struct {
	MinutesAvailable int    `json:"minutes_available"`
	Topic            string `json:"topic"`
	Level            string `json:"level"`
}

// PlanResponse is a generated study sprint: timed blocks, practice
// problems, revision notes, and common mistakes for a single session.
type PlanResponse struct {
	Title          string         `json:"title"`
	TotalMinutes   int            `json:"total_minutes"`
	Blocks         []Block        `json:"blocks"`
	Practice       []PracticeItem `json:"practice"`
	QuickRevision  []string       `json:"quick_revision"`
	CommonMistakes []string       `json:"common_mistakes"`
}

type Block struct {
	Name      string `json:"name"`
	Minutes   int    `json:"minutes"`
	Objective string `json:"objective"`
}

type PracticeItem struct {
	Platform     string `json:"platform"`
	ProblemTitle string `json:"problem_title"`
	Difficulty   string `json:"difficulty"`
	WhyThis      string `json:"why_this"`
}

// DifficultyBucket maps a free-text difficulty label onto the three
// display buckets clients style against. The match is case-insensitive;
// unrecognized labels land in "hard".
func DifficultyBucket(difficulty string) string {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "beginner", "easy":
		return "easy"
	case "intermediate", "medium":
		return "medium"
	default:
		return "hard"
	}
}
