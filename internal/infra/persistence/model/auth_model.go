package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OAuthTokenModel mirrors the 'oauth_tokens' table, one row per user.
type OAuthTokenModel struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	UserID       uuid.UUID `gorm:"type:varchar(36);uniqueIndex;not null"`
	AccessToken  string    `gorm:"type:text;not null"`
	RefreshToken string    `gorm:"type:text"`
	TokenType    string    `gorm:"type:varchar(32);not null"`
	ExpiresAt    *time.Time
	Scopes       string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthTokenModel) TableName() string {
	return "oauth_tokens"
}

func (m *OAuthTokenModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
