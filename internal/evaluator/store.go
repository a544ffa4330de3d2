package evaluator

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dsa-sprint/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordAttempt persists one evaluation result, full feedback included.
func (s *Store) RecordAttempt(userID int64, questionID string, eval *models.EvaluationResponse) error {
	feedback, err := json.Marshal(eval)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO attempts (user_id, question_id, score, correctness, feedback_json, created_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())`,
		userID, questionID, eval.Score, eval.Correctness, feedback,
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// ListAttempts returns the user's most recent attempts, newest first.
func (s *Store) ListAttempts(userID int64, limit int) ([]models.Attempt, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, question_id, score, correctness, created_at
		 FROM attempts
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []models.Attempt
	for rows.Next() {
		var a models.Attempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.QuestionID, &a.Score, &a.Correctness, &a.CreatedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// ScoreStats returns the attempt count and average score for a user.
func (s *Store) ScoreStats(userID int64) (int, float64, error) {
	var total int
	var avg float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0) FROM attempts WHERE user_id = $1`,
		userID,
	).Scan(&total, &avg)
	if err != nil {
		return 0, 0, err
	}
	return total, avg, nil
}

// AttemptDays returns the distinct days the user practiced, newest first.
func (s *Store) AttemptDays(userID int64) ([]time.Time, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT DATE(created_at) AS day
		 FROM attempts
		 WHERE user_id = $1
		 ORDER BY day DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
