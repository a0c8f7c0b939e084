package scraper

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/creatorpulse/creatorpulse/pkg/telemetry"
)

// InstagramPost is one raw item from the Instagram scraping API.
type InstagramPost struct {
	Shortcode        string `json:"shortcode"`
	TakenAtTimestamp int64  `json:"taken_at_timestamp"` // unix seconds
	LikeCount        int64  `json:"like_count"`
	CommentCount     int64  `json:"comment_count"`
	Caption          string `json:"caption"`
}

type instagramPostsResponse struct {
	Data struct {
		Items []InstagramPost `json:"items"`
	} `json:"data"`
}

// InstagramPosts fetches the recent posts of an Instagram handle.
func (c *Client) InstagramPosts(ctx context.Context, handle string) ([]InstagramPost, error) {
	ctx, span := telemetry.StartSpan(ctx, "scraper.instagram_posts")
	defer span.End()

	query := url.Values{}
	query.Set("username_or_id_or_url", handle)

	var resp instagramPostsResponse
	if err := c.getJSON(ctx, c.cfg.InstagramURL, "/v1.2/posts", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch instagram posts for %s: %w", handle, err)
	}

	c.logger.Debug("Fetched instagram posts",
		zap.String("handle", handle),
		zap.Int("count", len(resp.Data.Items)))

	return resp.Data.Items, nil
}
