package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/creatorpulse/creatorpulse/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AnalyticsRepository provides analytics-related database operations
type AnalyticsRepository struct {
	*Repository
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(repo *Repository) *AnalyticsRepository {
	return &AnalyticsRepository{Repository: repo}
}

// GetAnalytics retrieves the analytics row for a user, or nil if none exists
func (r *AnalyticsRepository) GetAnalytics(ctx context.Context, userID uuid.UUID) (*models.UserAnalytics, error) {
	var row models.UserAnalytics
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// analyticsUpdateColumns lists the columns one platform's run is allowed to
// touch on conflict: that platform's metric columns plus the shared fields.
// Other platforms' columns must never appear here or a run would clobber
// metrics it did not compute.
func analyticsUpdateColumns(platform string) ([]string, error) {
	if !models.ValidPlatform(platform) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownPlatform, platform)
	}
	return []string{
		platform + "_handle_score",
		platform + "_post_count",
		platform + "_engagement_sum",
		platform + "_avg_engagement",
		"consistency_weeks",
		"previous_handle_score",
		"last_updated",
	}, nil
}

// UpsertAnalytics inserts or merges the analytics row, updating only the
// given platform's columns and the shared fields.
func (r *AnalyticsRepository) UpsertAnalytics(ctx context.Context, row *models.UserAnalytics, platform string) error {
	cols, err := analyticsUpdateColumns(platform)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(row).Error
}

// UpsertDailyEngagement inserts or overwrites the engagement point for one
// (user, date, platform). Re-running on the same day replaces the value.
func (r *AnalyticsRepository) UpsertDailyEngagement(ctx context.Context, point *models.DailyEngagement) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{"engagement", "updated_at"}),
	}).Create(point).Error
}

// UpsertBestPost inserts or fully overwrites the best-post row for one
// (user, platform).
func (r *AnalyticsRepository) UpsertBestPost(ctx context.Context, post *models.BestPost) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"text", "likes", "comments", "shares", "views", "permalink", "posted_at", "updated_at",
		}),
	}).Create(post).Error
}

// AccountRepository provides connected-account database operations
type AccountRepository struct {
	*Repository
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(repo *Repository) *AccountRepository {
	return &AccountRepository{Repository: repo}
}

// Upsert inserts or replaces the handle for a (user, platform)
func (r *AccountRepository) Upsert(ctx context.Context, account *models.ConnectedAccount) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{"handle"}),
	}).Create(account).Error
}

// List retrieves all connected accounts
func (r *AccountRepository) List(ctx context.Context) ([]*models.ConnectedAccount, error) {
	var accounts []*models.ConnectedAccount
	if err := r.db.WithContext(ctx).Order("user_id, platform").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetByUser retrieves the connected accounts of one user
func (r *AccountRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*models.ConnectedAccount, error) {
	var accounts []*models.ConnectedAccount
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
