package datemath_test

import (
	"testing"
	"time"

	"todo-assistant/pkg/datemath"
)

func TestDecideOverride(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		instruction string
		modelDate   string
		want        bool
		wantReason  string
	}{
		{
			name:        "No relative cue keeps model date",
			instruction: "submit report on friday",
			modelDate:   "2025-01-01",
			want:        false,
			wantReason:  datemath.ReasonNoRelativeCue,
		},
		{
			name:        "Model date ten days away",
			instruction: "tomorrow 5pm",
			modelDate:   "2024-06-20",
			want:        true,
			wantReason:  datemath.ReasonDriftTooLarge,
		},
		{
			name:        "Model date is tomorrow",
			instruction: "tomorrow 5pm",
			modelDate:   "2024-06-11",
			want:        false,
			wantReason:  datemath.ReasonWithinRange,
		},
		{
			name:        "Model date missing",
			instruction: "tomorrow",
			modelDate:   "",
			want:        true,
			wantReason:  datemath.ReasonModelDateMissing,
		},
		{
			name:        "Model date malformed",
			instruction: "today",
			modelDate:   "someday maybe",
			want:        true,
			wantReason:  datemath.ReasonModelDateInvalid,
		},
		{
			name:        "Model date exactly seven days away",
			instruction: "next week",
			modelDate:   "2024-06-17",
			want:        false,
			wantReason:  datemath.ReasonWithinRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.DecideOverride(tt.instruction, tt.modelDate, now)
			if got.Override != tt.want {
				t.Errorf("Override = %v, want %v (reason %q)", got.Override, tt.want, got.Reason)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestDecideOverride_YearBoundary(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 12, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		modelDate string
		want      bool
	}{
		{name: "Next day in the new year", modelDate: "2025-01-01", want: false},
		{name: "Two days into the new year", modelDate: "2025-01-02", want: true},
		{name: "Model stuck in the previous year", modelDate: "2023-12-31", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.DecideOverride("tomorrow", tt.modelDate, now)
			if got.Override != tt.want {
				t.Errorf("Override = %v, want %v (reason %q)", got.Override, tt.want, got.Reason)
			}
		})
	}
}
