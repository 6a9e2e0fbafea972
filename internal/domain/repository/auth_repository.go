package repository

import (
	"context"

	"nativoseo/internal/domain/entity"
	"nativoseo/internal/errors"

	"github.com/google/uuid"
)

// ErrOAuthTokenNotFound is returned when the user has not connected Google yet.
var ErrOAuthTokenNotFound = errors.New("oauth token not found")

// OAuthTokenRepository stores the Google credentials of each user.
type OAuthTokenRepository interface {
	// FindByUserID returns the stored token or ErrOAuthTokenNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.OAuthToken, error)

	// Upsert inserts the token or replaces the existing one for the same user.
	// An empty RefreshToken keeps the stored refresh token.
	Upsert(ctx context.Context, token *entity.OAuthToken) error
}
