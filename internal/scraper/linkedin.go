package scraper

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/creatorpulse/creatorpulse/pkg/telemetry"
)

// LinkedInPost is one raw item from the LinkedIn scraping API. Timestamps
// arrive either as a date string in PostedAt or as an epoch value of
// unspecified unit in PostedTimestamp.
type LinkedInPost struct {
	Text               string `json:"text"`
	TotalReactionCount int64  `json:"totalReactionCount"`
	CommentsCount      int64  `json:"commentsCount"`
	RepostsCount       int64  `json:"repostsCount"`
	PostedAt           string `json:"postedAt"`
	PostedTimestamp    int64  `json:"postedDateTimestamp"`
	ShareURL           string `json:"shareUrl"`
}

type linkedinPostsResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []LinkedInPost `json:"data"`
}

// LinkedInPosts fetches the recent posts of a LinkedIn member.
func (c *Client) LinkedInPosts(ctx context.Context, handle string) ([]LinkedInPost, error) {
	ctx, span := telemetry.StartSpan(ctx, "scraper.linkedin_posts")
	defer span.End()

	query := url.Values{}
	query.Set("username", handle)

	var resp linkedinPostsResponse
	if err := c.getJSON(ctx, c.cfg.LinkedInURL, "/get-profile-posts", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch linkedin posts for %s: %w", handle, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("linkedin scrape for %s rejected: %s", handle, resp.Message)
	}

	c.logger.Debug("Fetched linkedin posts",
		zap.String("handle", handle),
		zap.Int("count", len(resp.Data)))

	return resp.Data, nil
}
