package roadmap

import (
	"fmt"
	"strings"

	"github.com/dsa-sprint/backend/internal/models"
)

// SystemInstruction sets the coach role for roadmap generation.
func SystemInstruction(durationDays int) string {
	return fmt.Sprintf(`You are an expert DSA interview coach.
Design a week-by-week study roadmap the learner can actually sustain.
Rules:
- The roadmap must cover exactly %d days, split into weeks.
- Each week's daily_schedule must have one entry per study day.
- Prioritize the learner's weak topics early.
- Output ONLY valid JSON.
- No markdown formatting.`, durationDays)
}

// UserPrompt embeds the learner's profile.
func UserPrompt(user *models.User, durationDays int) string {
	weakTopics := "none listed"
	if len(user.WeakTopics) > 0 {
		weakTopics = strings.Join(user.WeakTopics, ", ")
	}

	deadline := "none"
	if user.DeadlineDate != nil {
		deadline = user.DeadlineDate.Format("2006-01-02")
	}

	return fmt.Sprintf(`Create a %d-day roadmap for:
- Target role: %s
- Year of study: %d
- DSA level: %s
- Hours per day: %d
- Study days per week: %d
- Preferred language: %s
- Weak topics: %s
- Deadline: %s`,
		durationDays, user.TargetRole, user.CurrentYear, user.CurrentLevelDSA,
		user.HoursPerDay, user.DaysPerWeek, user.PreferredLanguage, weakTopics, deadline)
}
