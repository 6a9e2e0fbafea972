package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActiveLocation marks an upstream location as managed by the user.
// (UserID, AccountID, LocationID) is unique.
type ActiveLocation struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	AccountID    string // bare account id, without the "accounts/" prefix
	LocationID   string // bare location id, without the "locations/" prefix
	LocationName string
	ActivatedAt  time.Time
}
