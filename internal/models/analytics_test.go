package models

import "testing"

func TestMetricsForRoundTrip(t *testing.T) {
	row := &UserAnalytics{}

	m := PlatformMetrics{HandleScore: 420, PostCount: 7, EngagementSum: 1234, AvgEngagement: 176.3}
	row.SetMetricsFor(PlatformLinkedIn, m)

	if got := row.MetricsFor(PlatformLinkedIn); got != m {
		t.Errorf("MetricsFor(linkedin) = %+v, want %+v", got, m)
	}

	// Other platforms untouched
	if got := row.MetricsFor(PlatformInstagram); got != (PlatformMetrics{}) {
		t.Errorf("instagram metrics should be zero, got %+v", got)
	}
	if got := row.MetricsFor(PlatformTwitter); got != (PlatformMetrics{}) {
		t.Errorf("twitter metrics should be zero, got %+v", got)
	}
}

func TestValidPlatform(t *testing.T) {
	for _, p := range Platforms {
		if !ValidPlatform(p) {
			t.Errorf("ValidPlatform(%q) = false", p)
		}
	}
	if ValidPlatform("orkut") {
		t.Error("ValidPlatform(\"orkut\") = true")
	}
	if ValidPlatform("") {
		t.Error("ValidPlatform(\"\") = true")
	}
}
