package metrics

import (
	"fmt"
	"time"
)

// NormalizedPost is the uniform post record every platform normalizes into.
// It lives for one scrape run and is never persisted.
type NormalizedPost struct {
	Timestamp time.Time
	Likes     int64
	Comments  int64
	Shares    int64
	Views     int64 // X only, 0 elsewhere
	Text      string
	Permalink string
}

// epochMillisThreshold separates second from millisecond epochs. 1e10
// seconds is year 2286; any millisecond value for the current era exceeds it.
const epochMillisThreshold = int64(1e10)

// ParseEpoch converts an epoch value of unknown unit into a UTC time,
// guessing the unit from the magnitude.
func ParseEpoch(raw int64) (time.Time, error) {
	if raw <= 0 {
		return time.Time{}, fmt.Errorf("invalid epoch value %d", raw)
	}
	if raw > epochMillisThreshold {
		return time.UnixMilli(raw).UTC(), nil
	}
	return time.Unix(raw, 0).UTC(), nil
}

// linkedinDateLayouts are tried in order for LinkedIn's string timestamps.
var linkedinDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseLinkedInDate parses LinkedIn's date-string timestamp variants.
func ParseLinkedInDate(raw string) (time.Time, error) {
	for _, layout := range linkedinDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable linkedin date %q", raw)
}

// ParseTwitterDate parses X's native created_at format.
func ParseTwitterDate(raw string) (time.Time, error) {
	ts, err := time.Parse(time.RubyDate, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable twitter date %q: %w", raw, err)
	}
	return ts.UTC(), nil
}
