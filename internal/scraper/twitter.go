package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/creatorpulse/creatorpulse/pkg/telemetry"
)

// ErrHandleNotFound is returned when a handle does not resolve to an account.
var ErrHandleNotFound = fmt.Errorf("handle not found")

// TimelineEntry is one raw entry of an X user timeline. Besides authored
// tweets the timeline carries promoted content and recommendation widgets,
// distinguishable only by their entry identifier.
type TimelineEntry struct {
	EntryID string    `json:"entry_id"`
	Tweet   *RawTweet `json:"tweet"`
}

// RawTweet is the tweet payload inside a timeline entry. RetweetedStatus is
// non-empty when the entry is a retweet of someone else's post.
type RawTweet struct {
	ID              string          `json:"id_str"`
	CreatedAt       string          `json:"created_at"` // native format, e.g. "Wed Oct 10 20:19:24 +0000 2018"
	FullText        string          `json:"full_text"`
	FavoriteCount   int64           `json:"favorite_count"`
	ReplyCount      int64           `json:"reply_count"`
	RetweetCount    int64           `json:"retweet_count"`
	ViewCount       int64           `json:"view_count"`
	RetweetedStatus json.RawMessage `json:"retweeted_status,omitempty"`
}

// IsRetweet reports whether the tweet carries a retweeted-status reference.
func (t *RawTweet) IsRetweet() bool {
	return len(t.RetweetedStatus) > 0 && string(t.RetweetedStatus) != "null"
}

type twitterUserResponse struct {
	User struct {
		RestID string `json:"rest_id"`
	} `json:"user"`
}

type twitterTimelineResponse struct {
	Timeline []TimelineEntry `json:"timeline"`
}

// ResolveTwitterID resolves an X handle to the account's numeric ID. The
// timeline endpoint only accepts IDs, so this call must precede it.
func (c *Client) ResolveTwitterID(ctx context.Context, handle string) (string, error) {
	ctx, span := telemetry.StartSpan(ctx, "scraper.resolve_twitter_id")
	defer span.End()

	query := url.Values{}
	query.Set("username", handle)

	var resp twitterUserResponse
	if err := c.getJSON(ctx, c.cfg.TwitterURL, "/user/details", query, &resp); err != nil {
		return "", fmt.Errorf("failed to resolve twitter handle %s: %w", handle, err)
	}
	if resp.User.RestID == "" {
		return "", fmt.Errorf("%w: %s", ErrHandleNotFound, handle)
	}

	c.logger.Debug("Resolved twitter handle",
		zap.String("handle", handle),
		zap.String("user_id", resp.User.RestID))

	return resp.User.RestID, nil
}

// TwitterTimeline fetches the recent timeline entries of an X account by ID.
func (c *Client) TwitterTimeline(ctx context.Context, userID string) ([]TimelineEntry, error) {
	ctx, span := telemetry.StartSpan(ctx, "scraper.twitter_timeline")
	defer span.End()

	query := url.Values{}
	query.Set("user_id", userID)
	query.Set("limit", "40")

	var resp twitterTimelineResponse
	if err := c.getJSON(ctx, c.cfg.TwitterURL, "/user/tweets", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch twitter timeline for %s: %w", userID, err)
	}

	c.logger.Debug("Fetched twitter timeline",
		zap.String("user_id", userID),
		zap.Int("entries", len(resp.Timeline)))

	return resp.Timeline, nil
}
