package roadmap

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dsa-sprint/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const userColumns = `id, email, current_year, target_role, hours_per_day, days_per_week,
	current_level_dsa, preferred_language, weak_topics, deadline_date, created_at, updated_at`

// UpsertProfile creates the profile row for an email or updates it in
// place. Email is the sole identity; there are no credentials.
func (s *Store) UpsertProfile(req models.ProfileRequest, deadline *time.Time) (*models.User, error) {
	row := s.db.QueryRow(
		`INSERT INTO users (email, current_year, target_role, hours_per_day, days_per_week,
		                    current_level_dsa, preferred_language, weak_topics, deadline_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		 ON CONFLICT (email) DO UPDATE SET
		     current_year = EXCLUDED.current_year,
		     target_role = EXCLUDED.target_role,
		     hours_per_day = EXCLUDED.hours_per_day,
		     days_per_week = EXCLUDED.days_per_week,
		     current_level_dsa = EXCLUDED.current_level_dsa,
		     preferred_language = EXCLUDED.preferred_language,
		     weak_topics = EXCLUDED.weak_topics,
		     deadline_date = EXCLUDED.deadline_date,
		     updated_at = NOW()
		 RETURNING `+userColumns,
		req.Email, req.CurrentYear, req.TargetRole, req.HoursPerDay, req.DaysPerWeek,
		req.CurrentLevelDSA, req.PreferredLanguage, joinTopics(req.WeakTopics), deadline,
	)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	row := s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (s *Store) GetUserByID(id int64) (*models.User, error) {
	row := s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// SavePlan persists a generated roadmap verbatim.
func (s *Store) SavePlan(userID int64, planJSON json.RawMessage, modelUsed string) (*models.StoredPlan, error) {
	var plan models.StoredPlan
	err := s.db.QueryRow(
		`INSERT INTO plans (user_id, plan_json, model_used, created_at)
		 VALUES ($1, $2, $3, NOW())
		 RETURNING id, user_id, plan_json, model_used, created_at`,
		userID, []byte(planJSON), modelUsed,
	).Scan(&plan.ID, &plan.UserID, &plan.PlanJSON, &plan.ModelUsed, &plan.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}
	return &plan, nil
}

// CurrentPlan returns the user's most recent roadmap.
func (s *Store) CurrentPlan(userID int64) (*models.StoredPlan, error) {
	var plan models.StoredPlan
	err := s.db.QueryRow(
		`SELECT id, user_id, plan_json, model_used, created_at
		 FROM plans
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&plan.ID, &plan.UserID, &plan.PlanJSON, &plan.ModelUsed, &plan.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var topics string
	var deadline sql.NullTime
	err := row.Scan(&user.ID, &user.Email, &user.CurrentYear, &user.TargetRole,
		&user.HoursPerDay, &user.DaysPerWeek, &user.CurrentLevelDSA,
		&user.PreferredLanguage, &topics, &deadline, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	user.WeakTopics = splitTopics(topics)
	if deadline.Valid {
		user.DeadlineDate = &deadline.Time
	}
	return &user, nil
}

func joinTopics(topics []string) string {
	var cleaned []string
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return strings.Join(cleaned, ",")
}

func splitTopics(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
