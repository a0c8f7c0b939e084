package metrics

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC) // Wednesday

func likesPlusComments(p NormalizedPost) int64 { return p.Likes + p.Comments }

func TestAggregate(t *testing.T) {
	posts := []NormalizedPost{
		{Timestamp: testNow.Add(-48 * time.Hour), Likes: 10, Comments: 2}, // Monday
		{Timestamp: testNow.Add(-24 * time.Hour), Likes: 20, Comments: 1}, // Tuesday
		{Timestamp: testNow.Add(-time.Hour), Likes: 5, Comments: 0},       // today
	}

	totals := Aggregate(posts, likesPlusComments, testNow)

	if totals.PostCount != 3 {
		t.Errorf("PostCount = %d, want 3", totals.PostCount)
	}
	if totals.EngagementSum != 38 {
		t.Errorf("EngagementSum = %d, want 38", totals.EngagementSum)
	}
	if math.Abs(totals.AvgEngagement-38.0/3.0) > 1e-9 {
		t.Errorf("AvgEngagement = %f, want %f", totals.AvgEngagement, 38.0/3.0)
	}
	if totals.TodayEngagement != 5 {
		t.Errorf("TodayEngagement = %d, want 5 (only today's post)", totals.TodayEngagement)
	}
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil, likesPlusComments, testNow)
	if totals.PostCount != 0 || totals.EngagementSum != 0 || totals.TodayEngagement != 0 {
		t.Errorf("empty input must produce zero totals, got %+v", totals)
	}
	if totals.AvgEngagement != 0 {
		t.Errorf("AvgEngagement of empty input = %f, want 0", totals.AvgEngagement)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	posts := []NormalizedPost{
		{Timestamp: testNow.Add(-time.Hour), Likes: 7},
		{Timestamp: testNow.Add(-50 * time.Hour), Likes: 3, Comments: 4},
		{Timestamp: testNow.Add(-30 * time.Hour), Likes: 11, Comments: 1},
	}
	reversed := []NormalizedPost{posts[2], posts[1], posts[0]}

	a := Aggregate(posts, likesPlusComments, testNow)
	b := Aggregate(reversed, likesPlusComments, testNow)

	if a != b {
		t.Errorf("aggregation must be order independent: %+v vs %+v", a, b)
	}
}

func TestAggregateTodayBoundary(t *testing.T) {
	// 23:59 yesterday vs 00:00 today
	midnight := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	posts := []NormalizedPost{
		{Timestamp: midnight.Add(-time.Minute), Likes: 100},
		{Timestamp: midnight, Likes: 1},
	}

	totals := Aggregate(posts, likesPlusComments, testNow)
	if totals.TodayEngagement != 1 {
		t.Errorf("TodayEngagement = %d, want 1 (yesterday's post excluded)", totals.TodayEngagement)
	}
	if totals.EngagementSum != 101 {
		t.Errorf("EngagementSum = %d, want 101 (both posts count for the week)", totals.EngagementSum)
	}
}
