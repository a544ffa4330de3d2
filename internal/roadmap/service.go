package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dsa-sprint/backend/internal/models"
	"github.com/dsa-sprint/backend/internal/provider"
)

const (
	requestTimeout = 90 * time.Second
	maxTokens      = 8192
	temperature    = 0.3

	defaultDurationDays = 28
	minDurationDays     = 7
	maxDurationDays     = 84
)

// ValidationError reports missing request fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Service owns profiles and multi-week roadmaps. Roadmap generation is
// the same proxy shape as sprint generation, but the result is persisted
// instead of cached: a roadmap stays current until the user regenerates.
type Service struct {
	llm   provider.Client
	store *Store
	now   func() time.Time
}

func NewService(llm provider.Client, store *Store) *Service {
	return &Service{llm: llm, store: store, now: time.Now}
}

// UpsertProfile normalizes the email and writes the profile.
func (s *Service) UpsertProfile(req models.ProfileRequest) (*models.User, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" {
		return nil, &ValidationError{Fields: []string{"email"}}
	}

	var deadline *time.Time
	if req.DeadlineDate != "" {
		d, err := time.Parse("2006-01-02", req.DeadlineDate)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline_date %q: %w", req.DeadlineDate, err)
		}
		deadline = &d
	}

	return s.store.UpsertProfile(req, deadline)
}

func (s *Service) UserByEmail(email string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, &ValidationError{Fields: []string{"email"}}
	}
	return s.store.GetUserByEmail(email)
}

func (s *Service) CurrentPlan(userID int64) (*models.StoredPlan, error) {
	return s.store.CurrentPlan(userID)
}

// GeneratePlan builds a roadmap from the stored profile and persists it.
// Each call produces and stores a fresh plan; the newest one is current.
func (s *Service) GeneratePlan(ctx context.Context, userID int64) (*models.StoredPlan, error) {
	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	durationDays := planDurationDays(user, s.now())

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := s.llm.Generate(ctx, provider.Request{
		System:      SystemInstruction(durationDays),
		Prompt:      UserPrompt(user, durationDays),
		Schema:      RoadmapSchema,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate roadmap: %w", err)
	}

	cleaned := provider.StripCodeFences(string(resp.Content))
	if cleaned == "" {
		return nil, fmt.Errorf("empty response from provider")
	}

	var roadmap models.RoadmapPlan
	if err := json.Unmarshal([]byte(cleaned), &roadmap); err != nil {
		return nil, fmt.Errorf("failed to parse roadmap JSON: %w", err)
	}
	if len(roadmap.Weeks) == 0 {
		return nil, fmt.Errorf("roadmap has no weeks")
	}

	return s.store.SavePlan(userID, json.RawMessage(cleaned), s.llm.ModelID())
}

// DailyTask resolves the schedule entry for a date against the user's
// current roadmap.
func (s *Service) DailyTask(userID int64, dateStr string) (*models.DailyTask, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"date"}}
	}

	plan, err := s.store.CurrentPlan(userID)
	if err != nil {
		return nil, err
	}

	var roadmap models.RoadmapPlan
	if err := json.Unmarshal(plan.PlanJSON, &roadmap); err != nil {
		return nil, fmt.Errorf("decode stored plan: %w", err)
	}

	return TaskForDate(&roadmap, plan.CreatedAt, date)
}

// planDurationDays derives the roadmap length from the profile deadline,
// clamped to a sane range; profiles without a deadline get four weeks.
func planDurationDays(user *models.User, now time.Time) int {
	if user.DeadlineDate == nil {
		return defaultDurationDays
	}
	days := int(user.DeadlineDate.Sub(now).Hours()/24) + 1
	if days < minDurationDays {
		return minDurationDays
	}
	if days > maxDurationDays {
		return maxDurationDays
	}
	return days
}
