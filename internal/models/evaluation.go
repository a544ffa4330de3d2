package models

import "time"

// EvaluationRequest is a free-text answer submitted for AI scoring.
type EvaluationRequest struct {
	UserID             int64  `json:"user_id"`
	QuestionID         string `json:"question_id"`
	UserAnswer         string `json:"user_answer"`
	ProblemDescription string `json:"problem_description"`
}

// EvaluationResponse is the model's verdict on a submitted answer.
type EvaluationResponse struct {
	Score         int      `json:"score"`
	Correctness   string   `json:"correctness"`
	MainMistakes  []string `json:"main_mistakes"`
	IdealApproach string   `json:"ideal_approach"`
	NextPractice  []string `json:"next_practice"`
}

// Attempt is a persisted evaluation record.
type Attempt struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	QuestionID  string    `json:"question_id"`
	Score       int       `json:"score"`
	Correctness string    `json:"correctness"`
	CreatedAt   time.Time `json:"created_at"`
}

// PracticeStats summarizes a user's attempt history.
type PracticeStats struct {
	TotalAttempts int     `json:"total_attempts"`
	AverageScore  float64 `json:"average_score"`
	CurrentStreak int     `json:"current_streak"`
}

type AttemptHistoryResponse struct {
	Attempts []Attempt     `json:"attempts"`
	Stats    PracticeStats `json:"stats"`
}
