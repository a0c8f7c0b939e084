package models

import (
	"time"

	"github.com/google/uuid"
)

// UserAnalytics holds one row of per-user analytics. Per-platform metric
// columns are only written by that platform's run; consistency_weeks,
// previous_handle_score and last_updated are shared across platforms and
// written by every run (last writer wins).
type UserAnalytics struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id"`

	InstagramHandleScore   int     `gorm:"not null;default:0;column:instagram_handle_score"`
	InstagramPostCount     int     `gorm:"not null;default:0;column:instagram_post_count"`
	InstagramEngagementSum int64   `gorm:"not null;default:0;column:instagram_engagement_sum"`
	InstagramAvgEngagement float64 `gorm:"type:float(8);not null;default:0;column:instagram_avg_engagement"`

	LinkedInHandleScore   int     `gorm:"not null;default:0;column:linkedin_handle_score"`
	LinkedInPostCount     int     `gorm:"not null;default:0;column:linkedin_post_count"`
	LinkedInEngagementSum int64   `gorm:"not null;default:0;column:linkedin_engagement_sum"`
	LinkedInAvgEngagement float64 `gorm:"type:float(8);not null;default:0;column:linkedin_avg_engagement"`

	TwitterHandleScore   int     `gorm:"not null;default:0;column:twitter_handle_score"`
	TwitterPostCount     int     `gorm:"not null;default:0;column:twitter_post_count"`
	TwitterEngagementSum int64   `gorm:"not null;default:0;column:twitter_engagement_sum"`
	TwitterAvgEngagement float64 `gorm:"type:float(8);not null;default:0;column:twitter_avg_engagement"`

	// Shared fields, racy across concurrent platform runs by design
	ConsistencyWeeks    int       `gorm:"not null;default:0;column:consistency_weeks"`
	PreviousHandleScore int       `gorm:"not null;default:0;column:previous_handle_score"`
	LastUpdated         time.Time `gorm:"not null;default:'1970-01-01 00:00:00';column:last_updated"`
}

// TableName specifies the table name for UserAnalytics
func (UserAnalytics) TableName() string {
	return "user_analytics"
}

// PlatformMetrics is the per-platform slice of a UserAnalytics row.
type PlatformMetrics struct {
	HandleScore   int
	PostCount     int
	EngagementSum int64
	AvgEngagement float64
}

// MetricsFor returns the metrics stored for one platform.
func (a *UserAnalytics) MetricsFor(platform string) PlatformMetrics {
	switch platform {
	case PlatformInstagram:
		return PlatformMetrics{a.InstagramHandleScore, a.InstagramPostCount, a.InstagramEngagementSum, a.InstagramAvgEngagement}
	case PlatformLinkedIn:
		return PlatformMetrics{a.LinkedInHandleScore, a.LinkedInPostCount, a.LinkedInEngagementSum, a.LinkedInAvgEngagement}
	case PlatformTwitter:
		return PlatformMetrics{a.TwitterHandleScore, a.TwitterPostCount, a.TwitterEngagementSum, a.TwitterAvgEngagement}
	}
	return PlatformMetrics{}
}

// SetMetricsFor replaces the metrics stored for one platform. Metrics of
// other platforms are left untouched.
func (a *UserAnalytics) SetMetricsFor(platform string, m PlatformMetrics) {
	switch platform {
	case PlatformInstagram:
		a.InstagramHandleScore = m.HandleScore
		a.InstagramPostCount = m.PostCount
		a.InstagramEngagementSum = m.EngagementSum
		a.InstagramAvgEngagement = m.AvgEngagement
	case PlatformLinkedIn:
		a.LinkedInHandleScore = m.HandleScore
		a.LinkedInPostCount = m.PostCount
		a.LinkedInEngagementSum = m.EngagementSum
		a.LinkedInAvgEngagement = m.AvgEngagement
	case PlatformTwitter:
		a.TwitterHandleScore = m.HandleScore
		a.TwitterPostCount = m.PostCount
		a.TwitterEngagementSum = m.EngagementSum
		a.TwitterAvgEngagement = m.AvgEngagement
	}
}
