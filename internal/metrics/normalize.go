package metrics

import (
	"fmt"
	"strings"

	"github.com/creatorpulse/creatorpulse/internal/scraper"
)

// Normalizers map raw per-platform payloads to NormalizedPosts. Items
// without a parseable timestamp are dropped silently: they cannot be placed
// in any time window. Non-original content never becomes a NormalizedPost.

// NormalizeInstagram converts raw Instagram items.
func NormalizeInstagram(raw []scraper.InstagramPost) []NormalizedPost {
	posts := make([]NormalizedPost, 0, len(raw))
	for _, item := range raw {
		ts, err := ParseEpoch(item.TakenAtTimestamp)
		if err != nil {
			continue
		}
		posts = append(posts, NormalizedPost{
			Timestamp: ts,
			Likes:     item.LikeCount,
			Comments:  item.CommentCount,
			Text:      item.Caption,
			Permalink: fmt.Sprintf("https://www.instagram.com/p/%s/", item.Shortcode),
		})
	}
	return posts
}

// NormalizeLinkedIn converts raw LinkedIn items. The date string is
// preferred; the epoch field is the fallback with unit guessed by magnitude.
func NormalizeLinkedIn(raw []scraper.LinkedInPost) []NormalizedPost {
	posts := make([]NormalizedPost, 0, len(raw))
	for _, item := range raw {
		ts, err := ParseLinkedInDate(item.PostedAt)
		if err != nil {
			ts, err = ParseEpoch(item.PostedTimestamp)
		}
		if err != nil {
			continue
		}
		posts = append(posts, NormalizedPost{
			Timestamp: ts,
			Likes:     item.TotalReactionCount,
			Comments:  item.CommentsCount,
			Shares:    item.RepostsCount,
			Text:      item.Text,
			Permalink: item.ShareURL,
		})
	}
	return posts
}

// skippedEntryMarkers identify timeline entries that are not authored
// content: promoted tweets and the who-to-follow recommendation widget.
var skippedEntryMarkers = []string{"promoted", "who-to-follow", "whotofollow"}

func isContentEntry(entryID string) bool {
	id := strings.ToLower(entryID)
	for _, marker := range skippedEntryMarkers {
		if strings.Contains(id, marker) {
			return false
		}
	}
	return true
}

// NormalizeTwitter converts raw timeline entries, keeping only originally
// authored tweets. Retweets are excluded even when they outscore everything
// else in the batch.
func NormalizeTwitter(handle string, entries []scraper.TimelineEntry) []NormalizedPost {
	posts := make([]NormalizedPost, 0, len(entries))
	for _, entry := range entries {
		if !isContentEntry(entry.EntryID) {
			continue
		}
		tweet := entry.Tweet
		if tweet == nil || tweet.IsRetweet() {
			continue
		}
		ts, err := ParseTwitterDate(tweet.CreatedAt)
		if err != nil {
			continue
		}
		posts = append(posts, NormalizedPost{
			Timestamp: ts,
			Likes:     tweet.FavoriteCount,
			Comments:  tweet.ReplyCount,
			Shares:    tweet.RetweetCount,
			Views:     tweet.ViewCount,
			Text:      tweet.FullText,
			Permalink: fmt.Sprintf("https://x.com/%s/status/%s", handle, tweet.ID),
		})
	}
	return posts
}
