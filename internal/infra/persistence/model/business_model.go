package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoogleAccountModel mirrors the 'google_accounts' table.
type GoogleAccountModel struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_google_account_user_account"`
	AccountID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_google_account_user_account"`
	AccountName string    `gorm:"type:varchar(255)"`
	Type        string    `gorm:"type:varchar(64)"`
	Role        string    `gorm:"type:varchar(64)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GoogleAccountModel) TableName() string {
	return "google_accounts"
}

func (m *GoogleAccountModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// LocationModel mirrors the 'locations' table.
type LocationModel struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	GoogleAccountID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_location_account_location"`
	LocationID      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_location_account_location"`
	Title           string    `gorm:"type:varchar(255)"`
	Address         string    `gorm:"type:text"`
	Phone           string    `gorm:"type:varchar(64)"`
	Website         string    `gorm:"type:varchar(512)"`
	Status          string    `gorm:"type:varchar(64)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

func (m *LocationModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
