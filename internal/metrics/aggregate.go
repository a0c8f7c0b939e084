package metrics

import "time"

// Totals is the reduction of one week's posts.
type Totals struct {
	PostCount       int
	EngagementSum   int64
	AvgEngagement   float64
	TodayEngagement int64
}

// Aggregate reduces the in-week posts to count, engagement sum, average and
// today's engagement bucket. Pure: deterministic for a given input and now,
// and independent of input order.
func Aggregate(posts []NormalizedPost, engagement func(NormalizedPost) int64, now time.Time) Totals {
	var t Totals
	for _, p := range posts {
		e := engagement(p)
		t.PostCount++
		t.EngagementSum += e
		if sameDay(p.Timestamp, now) {
			t.TodayEngagement += e
		}
	}
	if t.PostCount > 0 {
		t.AvgEngagement = float64(t.EngagementSum) / float64(t.PostCount)
	}
	return t
}
