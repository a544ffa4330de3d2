package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dsa-sprint/backend/internal/cache"
	"github.com/dsa-sprint/backend/internal/models"
	"github.com/dsa-sprint/backend/internal/provider"
)

var validReq = models.EvaluationRequest{
	UserID:             1,
	QuestionID:         "daily-2026-08-28",
	UserAnswer:         "Use a hash map to store seen values, then scan once.",
	ProblemDescription: "Find two numbers in an array that sum to a target.",
}

const validEvalJSON = `{
  "score": 8,
  "correctness": "correct",
  "main_mistakes": [],
  "ideal_approach": "Single pass with a hash map, O(n) time and space.",
  "next_practice": ["3Sum", "Subarray Sum Equals K"]
}`

func newTestService(responses ...provider.MockResponse) (*Service, *provider.MockClient, *cache.Store) {
	mock := provider.NewMockClient(responses...)
	c := cache.New(6 * time.Hour)
	return NewService(mock, c, nil), mock, c
}

func TestEvaluate_Valid(t *testing.T) {
	svc, mock, _ := newTestService(provider.MockResponse{Content: json.RawMessage(validEvalJSON)})

	eval, err := svc.Evaluate(context.Background(), validReq)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if eval.Score != 8 {
		t.Errorf("score = %d, want 8", eval.Score)
	}
	if eval.Correctness != "correct" {
		t.Errorf("correctness = %q", eval.Correctness)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestEvaluate_IdenticalResubmissionHitsCache(t *testing.T) {
	svc, mock, _ := newTestService(provider.MockResponse{Content: json.RawMessage(validEvalJSON)})

	if _, err := svc.Evaluate(context.Background(), validReq); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := svc.Evaluate(context.Background(), validReq); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Errorf("identical resubmission should not reach the provider, calls = %d", mock.CallCount())
	}
}

func TestEvaluate_ChangedAnswerMissesCache(t *testing.T) {
	svc, mock, _ := newTestService(
		provider.MockResponse{Content: json.RawMessage(validEvalJSON)},
		provider.MockResponse{Content: json.RawMessage(validEvalJSON)},
	)

	if _, err := svc.Evaluate(context.Background(), validReq); err != nil {
		t.Fatalf("first call: %v", err)
	}

	changed := validReq
	changed.UserAnswer = validReq.UserAnswer + " Also handle duplicates."
	if _, err := svc.Evaluate(context.Background(), changed); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if mock.CallCount() != 2 {
		t.Errorf("edited answer should miss the cache, calls = %d", mock.CallCount())
	}
}

func TestEvaluate_ValidationRejectsBeforeProviderCall(t *testing.T) {
	tests := []struct {
		name string
		mod  func(r *models.EvaluationRequest)
	}{
		{"zero user_id", func(r *models.EvaluationRequest) { r.UserID = 0 }},
		{"empty question_id", func(r *models.EvaluationRequest) { r.QuestionID = "" }},
		{"empty answer", func(r *models.EvaluationRequest) { r.UserAnswer = "" }},
		{"empty problem", func(r *models.EvaluationRequest) { r.ProblemDescription = "" }},
	}

	for _, tt := range tests {
		svc, mock, _ := newTestService()

		req := validReq
		tt.mod(&req)

		_, err := svc.Evaluate(context.Background(), req)
		if err == nil {
			t.Errorf("%s: expected validation error", tt.name)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected *ValidationError, got %T", tt.name, err)
		}
		if mock.CallCount() != 0 {
			t.Errorf("%s: invalid request reached the provider", tt.name)
		}
	}
}

func TestEvaluate_EmptyProviderTextNoCacheWrite(t *testing.T) {
	svc, _, c := newTestService(provider.MockResponse{Content: json.RawMessage("")})

	if _, err := svc.Evaluate(context.Background(), validReq); err == nil {
		t.Fatal("expected error for empty provider text")
	}
	if c.Len() != 0 {
		t.Errorf("failed evaluation must not write the cache, Len = %d", c.Len())
	}
}

func TestEvaluate_ProviderErrorSurfaced(t *testing.T) {
	svc, _, c := newTestService(provider.MockResponse{Err: &provider.ErrUnavailable{}})

	if _, err := svc.Evaluate(context.Background(), validReq); err == nil {
		t.Fatal("expected provider error to surface")
	}
	if c.Len() != 0 {
		t.Errorf("provider failure must not write the cache, Len = %d", c.Len())
	}
}

func TestCacheKey_AnswerHashing(t *testing.T) {
	base := CacheKey(validReq, "mock")

	if CacheKey(validReq, "mock") != base {
		t.Error("identical requests must produce identical keys")
	}

	changed := validReq
	changed.UserAnswer = "different answer"
	if CacheKey(changed, "mock") == base {
		t.Error("different answer must change the key")
	}

	otherQuestion := validReq
	otherQuestion.QuestionID = "daily-2026-08-29"
	if CacheKey(otherQuestion, "mock") == base {
		t.Error("different question must change the key")
	}

	if CacheKey(validReq, "other-model") == base {
		t.Error("different model must change the key")
	}
}
