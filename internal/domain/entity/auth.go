package entity

import (
	"time"

	"github.com/google/uuid"
)

// OAuthToken is the Google credential pair stored for a user. There is at most one per user.
type OAuthToken struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresAt    *time.Time // nil when the provider did not report an expiry
	Scopes       string     // space separated
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsExpired reports whether the access token is known to be expired at now.
func (t *OAuthToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}
