package metrics

import (
	"time"

	"github.com/creatorpulse/creatorpulse/internal/models"
)

// streakBreakGap is the silence after which the consistency streak resets:
// more than 8 days without an update means two whole weeks were missed.
const streakBreakGap = 8 * 24 * time.Hour

// ApplyRun folds one scrape run into the analytics row: platform metrics,
// the shared consistency streak and the carried-over previous score.
//
// Crossing into a new week rolls the platform's pre-update score into
// previous_handle_score as the baseline for delta display. The streak
// increments once per week crossed with at least one post, resets after
// streakBreakGap of silence, and bootstraps to 1 on the first posting week.
func ApplyRun(row *models.UserAnalytics, platform string, totals Totals, score int, now time.Time) {
	startOfWeek := StartOfWeek(now)

	if row.LastUpdated.Before(startOfWeek) {
		// New week
		row.PreviousHandleScore = row.MetricsFor(platform).HandleScore
		if totals.PostCount >= 1 {
			row.ConsistencyWeeks++
		} else if now.Sub(row.LastUpdated) > streakBreakGap {
			row.ConsistencyWeeks = 0
		}
	} else if totals.PostCount >= 1 && row.ConsistencyWeeks == 0 {
		// Same week, first qualifying post ever
		row.ConsistencyWeeks = 1
	}

	row.SetMetricsFor(platform, models.PlatformMetrics{
		HandleScore:   score,
		PostCount:     totals.PostCount,
		EngagementSum: totals.EngagementSum,
		AvgEngagement: totals.AvgEngagement,
	})
	row.LastUpdated = now
}
