package metrics

import (
	"testing"

	"github.com/creatorpulse/creatorpulse/internal/models"
)

func mustFormula(t *testing.T, platform string) Formula {
	t.Helper()
	f, err := FormulaFor(platform)
	if err != nil {
		t.Fatalf("FormulaFor(%q): %v", platform, err)
	}
	return f
}

func TestFormulaForUnknown(t *testing.T) {
	if _, err := FormulaFor("friendster"); err == nil {
		t.Error("expected error for unknown platform")
	}
}

func TestHandleScore(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		avg      float64
		bias     float64
		expected int
	}{
		{
			name:     "instagram three-post scenario",
			platform: models.PlatformInstagram,
			avg:      38.0 / 3.0, // 12.67
			bias:     0,
			expected: 9, // round(12.67*0.7 + 0.36)
		},
		{
			name:     "instagram zero activity",
			platform: models.PlatformInstagram,
			avg:      0,
			bias:     0,
			expected: 0, // round(0.36) = 0
		},
		{
			name:     "linkedin base offset",
			platform: models.PlatformLinkedIn,
			avg:      0,
			bias:     0,
			expected: 100,
		},
		{
			name:     "linkedin typical",
			platform: models.PlatformLinkedIn,
			avg:      2.5,
			bias:     0,
			expected: 108, // round(7.5) + 100
		},
		{
			name:     "twitter typical",
			platform: models.PlatformTwitter,
			avg:      10,
			bias:     0,
			expected: 90, // round(40) + 50
		},
		{
			name:     "bias shifts the score",
			platform: models.PlatformTwitter,
			avg:      10,
			bias:     25,
			expected: 115,
		},
		{
			name:     "extreme average clamps to 1000",
			platform: models.PlatformInstagram,
			avg:      1e6,
			bias:     0,
			expected: 1000,
		},
		{
			name:     "extreme average clamps on every platform",
			platform: models.PlatformLinkedIn,
			avg:      1e6,
			bias:     0,
			expected: 1000,
		},
		{
			name:     "large negative bias clamps to 0",
			platform: models.PlatformTwitter,
			avg:      10,
			bias:     -5000,
			expected: 0,
		},
		{
			name:     "bias cannot push past the cap",
			platform: models.PlatformLinkedIn,
			avg:      300,
			bias:     1e9,
			expected: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFormula(t, tt.platform)
			got := f.HandleScore(tt.avg, tt.bias)
			if got != tt.expected {
				t.Errorf("HandleScore(%f, %f) on %s = %d, want %d",
					tt.avg, tt.bias, tt.platform, got, tt.expected)
			}
			if got < 0 || got > 1000 {
				t.Errorf("HandleScore out of bounds: %d", got)
			}
		})
	}
}

func TestEngagementAndPowerFormulas(t *testing.T) {
	post := NormalizedPost{Likes: 10, Comments: 3, Shares: 2, Views: 9999}

	ig := mustFormula(t, models.PlatformInstagram)
	if got := ig.Engagement(post); got != 13 {
		t.Errorf("instagram engagement = %d, want 13", got)
	}
	if got := ig.PowerScore(post); got != 16 {
		t.Errorf("instagram power = %d, want 16", got)
	}

	li := mustFormula(t, models.PlatformLinkedIn)
	if got := li.Engagement(post); got != 13 {
		t.Errorf("linkedin engagement = %d, want 13 (shares excluded)", got)
	}
	if got := li.PowerScore(post); got != 22 {
		t.Errorf("linkedin power = %d, want 22", got)
	}

	tw := mustFormula(t, models.PlatformTwitter)
	if got := tw.Engagement(post); got != 15 {
		t.Errorf("twitter engagement = %d, want 15 (views excluded)", got)
	}
	if got := tw.PowerScore(post); got != 22 {
		t.Errorf("twitter power = %d, want 22", got)
	}
}
