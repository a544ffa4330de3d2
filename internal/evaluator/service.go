package evaluator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dsa-sprint/backend/internal/cache"
	"github.com/dsa-sprint/backend/internal/models"
	"github.com/dsa-sprint/backend/internal/provider"
)

const (
	requestTimeout = 60 * time.Second
	maxTokens      = 4096
	temperature    = 0.2
)

// ValidationError reports missing request fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Service is the evaluation proxy. It mirrors the generation proxy with a
// different prompt and schema. Answers are cached by content hash so an
// identical resubmission does not pay for a second provider call; each
// successful evaluation is also recorded as an attempt when a store is
// attached.
type Service struct {
	llm   provider.Client
	cache *cache.Store
	store *Store
}

// NewService builds the evaluation proxy. store may be nil, which
// disables attempt persistence (used in tests).
func NewService(llm provider.Client, c *cache.Store, store *Store) *Service {
	return &Service{llm: llm, cache: c, store: store}
}

// CacheKey hashes the free-text answer so arbitrarily long submissions
// produce fixed-size keys. Question, answer digest, and model identifier
// all participate.
func CacheKey(req models.EvaluationRequest, model string) string {
	sum := sha256.Sum256([]byte(req.UserAnswer))
	return fmt.Sprintf("%s-%s-%s", req.QuestionID, hex.EncodeToString(sum[:]), model)
}

// Evaluate scores a free-text answer. Provider and parse failures are
// terminal with no cache write; a failed attempt insert is logged but
// does not fail the evaluation.
func (s *Service) Evaluate(ctx context.Context, req models.EvaluationRequest) (*models.EvaluationResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	key := CacheKey(req, s.llm.ModelID())
	if raw, ok := s.cache.Get(key); ok {
		log.Printf("[evaluator] cache hit %s", key)
		var eval models.EvaluationResponse
		if err := json.Unmarshal(raw, &eval); err != nil {
			return nil, fmt.Errorf("decode cached evaluation: %w", err)
		}
		s.recordAttempt(req, &eval)
		return &eval, nil
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := s.llm.Generate(ctx, provider.Request{
		System:      SystemInstruction(),
		Prompt:      UserPrompt(req),
		Schema:      EvaluationSchema,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate answer: %w", err)
	}

	eval, cleaned, err := parseEvaluation(resp.Content)
	if err != nil {
		return nil, err
	}

	s.cache.Put(key, cleaned)
	s.recordAttempt(req, eval)
	return eval, nil
}

// History returns the user's recent attempts with summary stats.
func (s *Service) History(userID int64, limit int) (*models.AttemptHistoryResponse, error) {
	attempts, err := s.store.ListAttempts(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	if attempts == nil {
		attempts = []models.Attempt{}
	}

	total, avg, err := s.store.ScoreStats(userID)
	if err != nil {
		return nil, fmt.Errorf("score stats: %w", err)
	}

	days, err := s.store.AttemptDays(userID)
	if err != nil {
		return nil, fmt.Errorf("attempt days: %w", err)
	}

	return &models.AttemptHistoryResponse{
		Attempts: attempts,
		Stats: models.PracticeStats{
			TotalAttempts: total,
			AverageScore:  avg,
			CurrentStreak: CurrentStreak(days, time.Now()),
		},
	}, nil
}

func (s *Service) recordAttempt(req models.EvaluationRequest, eval *models.EvaluationResponse) {
	if s.store == nil {
		return
	}
	if err := s.store.RecordAttempt(req.UserID, req.QuestionID, eval); err != nil {
		log.Printf("[evaluator] failed to record attempt for user %d: %v", req.UserID, err)
	}
}

func validate(req models.EvaluationRequest) error {
	var missing []string
	if req.UserID <= 0 {
		missing = append(missing, "user_id")
	}
	if req.QuestionID == "" {
		missing = append(missing, "question_id")
	}
	if req.UserAnswer == "" {
		missing = append(missing, "user_answer")
	}
	if req.ProblemDescription == "" {
		missing = append(missing, "problem_description")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func parseEvaluation(raw json.RawMessage) (*models.EvaluationResponse, json.RawMessage, error) {
	cleaned := provider.StripCodeFences(string(raw))
	if cleaned == "" {
		return nil, nil, fmt.Errorf("empty response from provider")
	}

	var eval models.EvaluationResponse
	if err := json.Unmarshal([]byte(cleaned), &eval); err != nil {
		return nil, nil, fmt.Errorf("failed to parse evaluation JSON: %w", err)
	}
	return &eval, json.RawMessage(cleaned), nil
}
