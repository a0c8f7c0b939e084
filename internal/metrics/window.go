package metrics

import "time"

// StartOfWeek returns the most recent Monday 00:00 UTC at or before now.
func StartOfWeek(now time.Time) time.Time {
	now = now.UTC()
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	d := now.AddDate(0, 0, -daysSinceMonday)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterWeek keeps the posts published at or after startOfWeek, preserving
// input order.
func FilterWeek(posts []NormalizedPost, startOfWeek time.Time) []NormalizedPost {
	week := make([]NormalizedPost, 0, len(posts))
	for _, p := range posts {
		if !p.Timestamp.Before(startOfWeek) {
			week = append(week, p)
		}
	}
	return week
}

// sameDay reports whether two instants fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
