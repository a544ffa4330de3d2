package models

import "testing"

func TestDifficultyBucket(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"easy", "easy"},
		{"Beginner", "easy"},
		{"BEGINNER", "easy"},
		{"medium", "medium"},
		{"Intermediate", "medium"},
		{"hard", "hard"},
		{"Advanced", "hard"},
		{" easy ", "easy"},
		{"Leetcode Hard", "hard"},
		{"", "hard"},
	}

	for _, tt := range tests {
		if got := DifficultyBucket(tt.input); got != tt.expected {
			t.Errorf("DifficultyBucket(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
