package models

import (
	"time"

	"github.com/google/uuid"
)

// ConnectedAccount maps a user to the handle they connected on a platform.
// The refresher walks these rows to re-run scrapes in batch.
type ConnectedAccount struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id"`
	Platform  string    `gorm:"type:varchar(16);primaryKey;column:platform"`
	Handle    string    `gorm:"type:varchar(64);not null;column:handle"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
}

// TableName specifies the table name for ConnectedAccount
func (ConnectedAccount) TableName() string {
	return "connected_accounts"
}
