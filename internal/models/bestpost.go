package models

import (
	"time"

	"github.com/google/uuid"
)

// BestPost is the highest-power-score original post of the current week's
// batch, one row per (user, platform). Each scrape fully overwrites the
// row: it reflects the best of the latest batch, not a running maximum.
type BestPost struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id"`
	Platform string    `gorm:"type:varchar(16);primaryKey;column:platform"`

	Text      string `gorm:"type:text;not null;default:'';column:text"`
	Likes     int64  `gorm:"not null;default:0;column:likes"`
	Comments  int64  `gorm:"not null;default:0;column:comments"`
	Shares    int64  `gorm:"not null;default:0;column:shares"`
	Views     int64  `gorm:"not null;default:0;column:views"` // X only
	Permalink string `gorm:"type:varchar(1024);not null;default:'';column:permalink"`

	PostedAt  time.Time `gorm:"not null;column:posted_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`
}

// TableName specifies the table name for BestPost
func (BestPost) TableName() string {
	return "best_posts"
}
