package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	UserID     uuid.UUID `gorm:"type:varchar(36);not null;index"`
	AccountID  string    `gorm:"type:varchar(64);not null"`
	LocationID string    `gorm:"type:varchar(64);not null;index"`
	PostName   string    `gorm:"type:varchar(255)"`
	Summary    string    `gorm:"type:text;not null"`
	MediaURL   string    `gorm:"type:text"`
	State      string    `gorm:"type:varchar(32)"`
	TopicType  string    `gorm:"type:varchar(32)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

func (m *PostModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
