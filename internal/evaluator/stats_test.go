package evaluator

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCurrentStreak(t *testing.T) {
	now := day("2026-08-28")

	tests := []struct {
		name     string
		days     []time.Time
		expected int
	}{
		{"no attempts", nil, 0},
		{"today only", []time.Time{day("2026-08-28")}, 1},
		{"yesterday only", []time.Time{day("2026-08-27")}, 1},
		{"three consecutive ending today", []time.Time{day("2026-08-28"), day("2026-08-27"), day("2026-08-26")}, 3},
		{"two consecutive ending yesterday", []time.Time{day("2026-08-27"), day("2026-08-26")}, 2},
		{"gap breaks streak", []time.Time{day("2026-08-28"), day("2026-08-26"), day("2026-08-25")}, 1},
		{"stale streak", []time.Time{day("2026-08-25"), day("2026-08-24")}, 0},
	}

	for _, tt := range tests {
		if got := CurrentStreak(tt.days, now); got != tt.expected {
			t.Errorf("%s: CurrentStreak = %d, want %d", tt.name, got, tt.expected)
		}
	}
}
