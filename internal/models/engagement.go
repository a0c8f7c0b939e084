package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyEngagement is one engagement data point per (user, date, platform).
// Only the current day is ever written; re-running the scrape on the same
// day overwrites the value instead of adding to it.
type DailyEngagement struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id"`
	Date       time.Time `gorm:"type:date;primaryKey;column:date"`
	Platform   string    `gorm:"type:varchar(16);primaryKey;column:platform"`
	Engagement int64     `gorm:"not null;default:0;column:engagement"`
	UpdatedAt  time.Time `gorm:"not null;column:updated_at"`
}

// TableName specifies the table name for DailyEngagement
func (DailyEngagement) TableName() string {
	return "daily_engagement"
}
