package roadmap

import (
	"fmt"
	"time"

	"github.com/dsa-sprint/backend/internal/models"
)

// ErrNoTask marks dates with no schedule entry: before the plan started,
// past its end, or on a rest day.
type ErrNoTask struct {
	Date   string
	Reason string
}

func (e *ErrNoTask) Error() string {
	return fmt.Sprintf("no task for %s: %s", e.Date, e.Reason)
}

// TaskForDate picks the schedule cell for a date. Day 0 is the day the
// plan was created; weeks advance every 7 calendar days. Weeks whose
// daily_schedule is shorter than 7 entries leave the remaining calendar
// days as rest days.
func TaskForDate(plan *models.RoadmapPlan, planCreated time.Time, date time.Time) (*models.DailyTask, error) {
	dateStr := date.Format("2006-01-02")

	idx := daysBetween(planCreated, date)
	if idx < 0 {
		return nil, &ErrNoTask{Date: dateStr, Reason: "date precedes plan start"}
	}

	week := idx / 7
	if week >= len(plan.Weeks) {
		return nil, &ErrNoTask{Date: dateStr, Reason: "date is past the end of the plan"}
	}

	w := plan.Weeks[week]
	day := idx % 7
	if day >= len(w.DailySchedule) {
		return nil, &ErrNoTask{Date: dateStr, Reason: "rest day"}
	}

	return &models.DailyTask{
		Date:     dateStr,
		Summary:  w.DailySchedule[day],
		WeekGoal: w.WeekGoal,
		DayIndex: idx,
	}, nil
}

func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
