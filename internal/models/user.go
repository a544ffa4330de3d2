package models

import "time"

// User is a learner profile. Users are identified by a bare email string;
// there is no authentication in front of this API.
type User struct {
	ID                int64      `json:"id"`
	Email             string     `json:"email"`
	CurrentYear       int        `json:"current_year"`
	TargetRole        string     `json:"target_role"`
	HoursPerDay       int        `json:"hours_per_day"`
	DaysPerWeek       int        `json:"days_per_week"`
	CurrentLevelDSA   string     `json:"current_level_dsa"`
	PreferredLanguage string     `json:"preferred_language"`
	WeakTopics        []string   `json:"weak_topics"`
	DeadlineDate      *time.Time `json:"deadline_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ProfileRequest creates or updates the profile stored under an email.
type ProfileRequest struct {
	Email             string   `json:"email"`
	CurrentYear       int      `json:"current_year"`
	TargetRole        string   `json:"target_role"`
	HoursPerDay       int      `json:"hours_per_day"`
	DaysPerWeek       int      `json:"days_per_week"`
	CurrentLevelDSA   string   `json:"current_level_dsa"`
	PreferredLanguage string   `json:"preferred_language"`
	WeakTopics        []string `json:"weak_topics"`
	DeadlineDate      string   `json:"deadline_date"` // YYYY-MM-DD, optional
}

type ErrorResponse struct {
	Error string `json:"error"`
}
