package planner

import (
	"context"
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
	maxTokens      = 8192
	temperature    = 0.3
)

// ValidationError reports missing or falsy request fields. A request that
// fails validation never reaches the provider.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Service is the generation proxy: request-scoped validation, a
// deterministic TTL cache in front of the provider, schema-constrained
// prompting. The cache is injected at construction; the service holds no
// other state.
type Service struct {
	llm   provider.Client
	cache *cache.Store
}

func NewService(llm provider.Client, c *cache.Store) *Service {
	return &Service{llm: llm, cache: c}
}

// CacheKey joins the raw request fields and the model identifier with a
// fixed delimiter. It is deliberately case-sensitive and does not trim
// whitespace: "Graphs" and "graphs" are distinct keys.
func CacheKey(req models.PlanRequest, model string) string {
	return fmt.Sprintf("%d-%s-%s-%s", req.MinutesAvailable, req.Topic, req.Level, model)
}

// Generate returns a study sprint for the request, serving from cache
// when a fresh entry exists. On a miss the provider is called once;
// provider and parse failures are terminal, with no cache write and no
// retry.
func (s *Service) Generate(ctx context.Context, req models.PlanRequest) (*models.PlanResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	key := CacheKey(req, s.llm.ModelID())
	if raw, ok := s.cache.Get(key); ok {
		log.Printf("[planner] cache hit %s", key)
		var plan models.PlanResponse
		if err := json.Unmarshal(raw, &plan); err != nil {
			return nil, fmt.Errorf("decode cached plan: %w", err)
		}
		return &plan, nil
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := s.llm.Generate(ctx, provider.Request{
		System:      SystemInstruction(req.MinutesAvailable),
		Prompt:      UserPrompt(req),
		Schema:      SprintSchema,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate sprint: %w", err)
	}

	plan, cleaned, err := parsePlan(resp.Content)
	if err != nil {
		return nil, err
	}

	s.cache.Put(key, cleaned)
	return plan, nil
}

func validate(req models.PlanRequest) error {
	var missing []string
	if req.MinutesAvailable <= 0 {
		missing = append(missing, "minutes_available")
	}
	if req.Topic == "" {
		missing = append(missing, "topic")
	}
	if req.Level == "" {
		missing = append(missing, "level")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func parsePlan(raw json.RawMessage) (*models.PlanResponse, json.RawMessage, error) {
	cleaned := provider.StripCodeFences(string(raw))
	if cleaned == "" {
		return nil, nil, fmt.Errorf("empty response from provider")
	}

	var plan models.PlanResponse
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}
	return &plan, json.RawMessage(cleaned), nil
}
