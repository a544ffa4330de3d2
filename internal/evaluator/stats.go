package evaluator

import "time"

// CurrentStreak counts consecutive practice days ending today or
// yesterday. days must be distinct calendar days ordered newest first, as
// returned by Store.AttemptDays. A streak whose most recent day is before
// yesterday has already been broken and counts as zero.
func CurrentStreak(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	cursor := truncateDay(now)
	latest := truncateDay(days[0])

	if !latest.Equal(cursor) {
		// Practicing yesterday keeps the streak alive until today ends.
		cursor = cursor.AddDate(0, 0, -1)
		if !latest.Equal(cursor) {
			return 0
		}
	}

	streak := 0
	for _, d := range days {
		if !truncateDay(d).Equal(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
