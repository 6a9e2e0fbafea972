package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActiveLocationModel mirrors the 'active_locations' table.
type ActiveLocationModel struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	UserID       uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_active_location_user_account_location"`
	AccountID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_active_location_user_account_location"`
	LocationID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_active_location_user_account_location;index"`
	LocationName string    `gorm:"type:varchar(255)"`
	ActivatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ActiveLocationModel) TableName() string {
	return "active_locations"
}

func (m *ActiveLocationModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
