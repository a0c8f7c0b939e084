package metrics

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
	}{
		{
			name: "monday morning",
			now:  time.Date(2026, 8, 24, 0, 0, 1, 0, time.UTC),
		},
		{
			name: "monday midnight exactly",
			now:  monday,
		},
		{
			name: "wednesday",
			now:  time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday night",
			now:  time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.now)
			if !got.Equal(monday) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.now, got, monday)
			}
		})
	}

	// The next Monday starts a fresh window
	nextMonday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if got := StartOfWeek(nextMonday); !got.Equal(nextMonday) {
		t.Errorf("StartOfWeek(%v) = %v, want %v", nextMonday, got, nextMonday)
	}
}

func TestFilterWeek(t *testing.T) {
	startOfWeek := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	posts := []NormalizedPost{
		{Timestamp: startOfWeek.Add(-time.Second), Text: "last week"},
		{Timestamp: startOfWeek, Text: "boundary"},
		{Timestamp: startOfWeek.Add(48 * time.Hour), Text: "midweek"},
	}

	week := FilterWeek(posts, startOfWeek)
	if len(week) != 2 {
		t.Fatalf("expected 2 in-week posts, got %d", len(week))
	}
	if week[0].Text != "boundary" {
		t.Errorf("boundary post (ts == startOfWeek) must be included, got %q first", week[0].Text)
	}
	if week[1].Text != "midweek" {
		t.Errorf("expected midweek post second, got %q", week[1].Text)
	}
}
