package metrics

import (
	"context"
	"fmt"

	"github.com/creatorpulse/creatorpulse/internal/cache"
	"github.com/creatorpulse/creatorpulse/internal/models"
	"github.com/creatorpulse/creatorpulse/internal/scraper"
)

// Source fetches and normalizes the recent posts of a handle on one
// platform. A fetch failure aborts the run; there are no retries.
type Source interface {
	Platform() string
	RecentPosts(ctx context.Context, handle string) ([]NormalizedPost, error)
}

// InstagramSource feeds the pipeline from the Instagram scraping API.
type InstagramSource struct {
	client *scraper.Client
}

// NewInstagramSource creates an Instagram source
func NewInstagramSource(client *scraper.Client) *InstagramSource {
	return &InstagramSource{client: client}
}

// Platform returns the platform name
func (s *InstagramSource) Platform() string { return models.PlatformInstagram }

// RecentPosts fetches and normalizes recent Instagram posts
func (s *InstagramSource) RecentPosts(ctx context.Context, handle string) ([]NormalizedPost, error) {
	raw, err := s.client.InstagramPosts(ctx, handle)
	if err != nil {
		return nil, err
	}
	return NormalizeInstagram(raw), nil
}

// LinkedInSource feeds the pipeline from the LinkedIn scraping API.
type LinkedInSource struct {
	client *scraper.Client
}

// NewLinkedInSource creates a LinkedIn source
func NewLinkedInSource(client *scraper.Client) *LinkedInSource {
	return &LinkedInSource{client: client}
}

// Platform returns the platform name
func (s *LinkedInSource) Platform() string { return models.PlatformLinkedIn }

// RecentPosts fetches and normalizes recent LinkedIn posts
func (s *LinkedInSource) RecentPosts(ctx context.Context, handle string) ([]NormalizedPost, error) {
	raw, err := s.client.LinkedInPosts(ctx, handle)
	if err != nil {
		return nil, err
	}
	return NormalizeLinkedIn(raw), nil
}

// TwitterSource feeds the pipeline from the X scraping API. The two-stage
// fetch (resolve handle to ID, then pull the timeline) is sequential;
// a resolution failure is fatal before any timeline call. Resolutions are
// memoized in Redis when available.
type TwitterSource struct {
	client *scraper.Client
	cache  *cache.Cache
}

// NewTwitterSource creates an X source
func NewTwitterSource(client *scraper.Client, c *cache.Cache) *TwitterSource {
	return &TwitterSource{client: client, cache: c}
}

// Platform returns the platform name
func (s *TwitterSource) Platform() string { return models.PlatformTwitter }

// RecentPosts resolves the handle, fetches the timeline and normalizes it
func (s *TwitterSource) RecentPosts(ctx context.Context, handle string) ([]NormalizedPost, error) {
	userID, _ := s.cache.GetResolvedID(ctx, models.PlatformTwitter, handle)
	if userID == "" {
		var err error
		userID, err = s.client.ResolveTwitterID(ctx, handle)
		if err != nil {
			return nil, fmt.Errorf("handle resolution failed: %w", err)
		}
		// Best effort; a cache failure must not fail the run
		_ = s.cache.SetResolvedID(ctx, models.PlatformTwitter, handle, userID)
	}

	entries, err := s.client.TwitterTimeline(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NormalizeTwitter(handle, entries), nil
}
