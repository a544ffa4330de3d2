package planner

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

var validReq = models.PlanRequest{MinutesAvailable: 60, Topic: "Graphs", Level: "intermediate"}

const validPlanJSON = `{
  "title": "Graph Sprint",
  "total_minutes": 60,
  "blocks": [{"name": "BFS review", "minutes": 60, "objective": "Refresh traversal order"}],
  "practice": [{"platform": "LeetCode", "problem_title": "Number of Islands", "difficulty": "medium", "why_this": "Canonical grid BFS"}],
  "quick_revision": ["BFS uses a queue"],
  "common_mistakes": ["Forgetting the visited set"]
}`

func newTestService(responses ...provider.MockResponse) (*Service, *provider.MockClient, *cache.Store) {
	mock := provider.NewMockClient(responses...)
	c := cache.New(6 * time.Hour)
	return NewService(mock, c), mock, c
}

func TestGenerate_Valid(t *testing.T) {
	svc, mock, _ := newTestService(provider.MockResponse{Content: json.RawMessage(validPlanJSON)})

	plan, err := svc.Generate(context.Background(), validReq)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if plan.TotalMinutes != 60 {
		t.Errorf("total_minutes = %d, want 60", plan.TotalMinutes)
	}
	if len(plan.Blocks) == 0 {
		t.Error("expected non-empty blocks")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestGenerate_CacheHit(t *testing.T) {
	svc, mock, _ := newTestService(provider.MockResponse{Content: json.RawMessage(validPlanJSON)})

	first, err := svc.Generate(context.Background(), validReq)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.Generate(context.Background(), validReq)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Errorf("identical repeat within TTL should not reach the provider, calls = %d", mock.CallCount())
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Error("cached response differs from original")
	}
}

func TestGenerate_CaseSensitiveTopicMisses(t *testing.T) {
	svc, mock, _ := newTestService(
		provider.MockResponse{Content: json.RawMessage(validPlanJSON)},
		provider.MockResponse{Content: json.RawMessage(validPlanJSON)},
	)

	if _, err := svc.Generate(context.Background(), validReq); err != nil {
		t.Fatalf("first call: %v", err)
	}

	lower := validReq
	lower.Topic = "graphs"
	if _, err := svc.Generate(context.Background(), lower); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if mock.CallCount() != 2 {
		t.Errorf("different topic case should miss the cache, calls = %d", mock.CallCount())
	}
}

func TestGenerate_TTLExpiryTriggersNewCall(t *testing.T) {
	mock := provider.NewMockClient(
		provider.MockResponse{Content: json.RawMessage(validPlanJSON)},
		provider.MockResponse{Content: json.RawMessage(validPlanJSON)},
	)
	// Zero TTL: every entry is stale by the time it is read.
	svc := NewService(mock, cache.New(0))

	if _, err := svc.Generate(context.Background(), validReq); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := svc.Generate(context.Background(), validReq); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if mock.CallCount() != 2 {
		t.Errorf("expired entry should trigger exactly one new provider call, calls = %d", mock.CallCount())
	}
}

func TestGenerate_ValidationRejectsBeforeProviderCall(t *testing.T) {
	tests := []struct {
		name string
		req  models.PlanRequest
	}{
		{"zero minutes", models.PlanRequest{MinutesAvailable: 0, Topic: "Graphs", Level: "intermediate"}},
		{"negative minutes", models.PlanRequest{MinutesAvailable: -5, Topic: "Graphs", Level: "intermediate"}},
		{"empty topic", models.PlanRequest{MinutesAvailable: 60, Topic: "", Level: "intermediate"}},
		{"empty level", models.PlanRequest{MinutesAvailable: 60, Topic: "Graphs", Level: ""}},
		{"all missing", models.PlanRequest{}},
	}

	for _, tt := range tests {
		svc, mock, _ := newTestService()

		_, err := svc.Generate(context.Background(), tt.req)
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

func TestGenerate_EmptyProviderTextNoCacheWrite(t *testing.T) {
	svc, _, c := newTestService(provider.MockResponse{Content: json.RawMessage("")})

	if _, err := svc.Generate(context.Background(), validReq); err == nil {
		t.Fatal("expected error for empty provider text")
	}
	if c.Len() != 0 {
		t.Errorf("failed generation must not write the cache, Len = %d", c.Len())
	}
}

func TestGenerate_InvalidJSONNoCacheWrite(t *testing.T) {
	svc, _, c := newTestService(provider.MockResponse{Content: json.RawMessage(`{"title": "broken"`)})

	if _, err := svc.Generate(context.Background(), validReq); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if c.Len() != 0 {
		t.Errorf("failed parse must not write the cache, Len = %d", c.Len())
	}
}

func TestGenerate_ProviderErrorSurfaced(t *testing.T) {
	svc, _, c := newTestService(provider.MockResponse{Err: &provider.ErrUnavailable{}})

	if _, err := svc.Generate(context.Background(), validReq); err == nil {
		t.Fatal("expected provider error to surface")
	}
	if c.Len() != 0 {
		t.Errorf("provider failure must not write the cache, Len = %d", c.Len())
	}
}

func TestGenerate_CodeFencedResponseParses(t *testing.T) {
	fenced := "```json\n" + validPlanJSON + "\n```"
	svc, _, _ := newTestService(provider.MockResponse{Content: json.RawMessage(fenced)})

	plan, err := svc.Generate(context.Background(), validReq)
	if err != nil {
		t.Fatalf("expected fenced JSON to parse, got: %v", err)
	}
	if plan.Title != "Graph Sprint" {
		t.Errorf("title = %q", plan.Title)
	}
}

func TestCacheKey_SensitiveToEveryField(t *testing.T) {
	base := CacheKey(validReq, "gemini-2.5-flash-lite")

	variants := []struct {
		name string
		key  string
	}{
		{"minutes", CacheKey(models.PlanRequest{MinutesAvailable: 90, Topic: "Graphs", Level: "intermediate"}, "gemini-2.5-flash-lite")},
		{"topic", CacheKey(models.PlanRequest{MinutesAvailable: 60, Topic: "DP", Level: "intermediate"}, "gemini-2.5-flash-lite")},
		{"level", CacheKey(models.PlanRequest{MinutesAvailable: 60, Topic: "Graphs", Level: "advanced"}, "gemini-2.5-flash-lite")},
		{"model", CacheKey(validReq, "gemini-2.5-pro")},
		{"topic case", CacheKey(models.PlanRequest{MinutesAvailable: 60, Topic: "graphs", Level: "intermediate"}, "gemini-2.5-flash-lite")},
		{"topic whitespace", CacheKey(models.PlanRequest{MinutesAvailable: 60, Topic: " Graphs", Level: "intermediate"}, "gemini-2.5-flash-lite")},
	}

	for _, v := range variants {
		if v.key == base {
			t.Errorf("changing %s alone should change the cache key", v.name)
		}
	}

	if CacheKey(validReq, "gemini-2.5-flash-lite") != base {
		t.Error("identical inputs must produce identical keys")
	}
}
