package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims are the validated contents of a session access token.
type Claims struct {
	UserID    uuid.UUID
	Type      string
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed session token for a given user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the signature, expiry and type of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
