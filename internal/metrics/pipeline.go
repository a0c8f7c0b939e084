package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/creatorpulse/creatorpulse/internal/models"
	"github.com/creatorpulse/creatorpulse/pkg/logging"
	"github.com/creatorpulse/creatorpulse/pkg/telemetry"
)

// Store is the persistence surface the pipeline writes to. The three
// upserts are independent calls; there is no cross-call transaction, so the
// pipeline builds every payload before issuing the first write.
type Store interface {
	GetAnalytics(ctx context.Context, userID uuid.UUID) (*models.UserAnalytics, error)
	UpsertAnalytics(ctx context.Context, row *models.UserAnalytics, platform string) error
	UpsertDailyEngagement(ctx context.Context, point *models.DailyEngagement) error
	UpsertBestPost(ctx context.Context, post *models.BestPost) error
}

// Result is the caller-facing outcome of one run.
type Result struct {
	HandleScore int `json:"handle_score"`
	PostCount   int `json:"post_count"`
}

// Pipeline runs the full scrape-to-score computation for one platform.
// Each Run is stateless; concurrent runs for the same user are tolerated
// and race only on the shared analytics fields (last writer wins).
type Pipeline struct {
	source  Source
	formula Formula
	store   Store
	logger  *zap.Logger
	now     func() time.Time
}

// NewPipeline creates a pipeline for the source's platform.
func NewPipeline(source Source, store Store) (*Pipeline, error) {
	formula, err := FormulaFor(source.Platform())
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		source:  source,
		formula: formula,
		store:   store,
		logger:  logging.GetLogger().With(zap.String("component", "pipeline"), zap.String("platform", source.Platform())),
		now:     time.Now,
	}, nil
}

// Run fetches the handle's recent posts and reduces them into the user's
// analytics row, today's engagement point and the best post of the week.
func (p *Pipeline) Run(ctx context.Context, userID uuid.UUID, handle string, bias float64) (*Result, error) {
	ctx, span := telemetry.StartSpan(ctx, "metrics.run")
	defer span.End()

	platform := p.source.Platform()

	posts, err := p.source.RecentPosts(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts for %s: %w", handle, err)
	}

	now := p.now().UTC()
	week := FilterWeek(posts, StartOfWeek(now))
	totals := Aggregate(week, p.formula.Engagement, now)
	score := p.formula.HandleScore(totals.AvgEngagement, bias)
	best, hasBest := SelectBest(week, p.formula.PowerScore)

	row, err := p.store.GetAnalytics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load analytics row: %w", err)
	}
	if row == nil {
		row = &models.UserAnalytics{UserID: userID}
	}

	ApplyRun(row, platform, totals, score, now)

	// Build all write payloads up front
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	daily := &models.DailyEngagement{
		UserID:     userID,
		Date:       today,
		Platform:   platform,
		Engagement: totals.TodayEngagement,
		UpdatedAt:  now,
	}
	var bestRow *models.BestPost
	if hasBest {
		bestRow = &models.BestPost{
			UserID:    userID,
			Platform:  platform,
			Text:      best.Text,
			Likes:     best.Likes,
			Comments:  best.Comments,
			Shares:    best.Shares,
			Views:     best.Views,
			Permalink: best.Permalink,
			PostedAt:  best.Timestamp,
			UpdatedAt: now,
		}
	}

	if err := p.store.UpsertAnalytics(ctx, row, platform); err != nil {
		return nil, fmt.Errorf("failed to upsert analytics row: %w", err)
	}
	if err := p.store.UpsertDailyEngagement(ctx, daily); err != nil {
		return nil, fmt.Errorf("failed to upsert daily engagement: %w", err)
	}
	if bestRow != nil {
		if err := p.store.UpsertBestPost(ctx, bestRow); err != nil {
			return nil, fmt.Errorf("failed to upsert best post: %w", err)
		}
	}

	p.logger.Info("Scrape run complete",
		zap.String("user_id", userID.String()),
		zap.String("handle", handle),
		zap.Int("post_count", totals.PostCount),
		zap.Int("handle_score", score),
		zap.Int("consistency_weeks", row.ConsistencyWeeks))

	return &Result{HandleScore: score, PostCount: totals.PostCount}, nil
}
