package service

import (
	"context"
	"time"

	"nativoseo/internal/domain/entity"

	"github.com/google/uuid"
)

// OAuthFlow selects which redirect URI a consent round trip uses.
type OAuthFlow string

const (
	// OAuthFlowBound stores the tokens for the user bound to the state.
	OAuthFlowBound OAuthFlow = "bound"
	// OAuthFlowTest hands the tokens back to the frontend, which saves them with /save-token.
	OAuthFlowTest OAuthFlow = "test"
)

// OAuthState is what a consent round trip carries through the state parameter.
type OAuthState struct {
	Value     string
	Flow      OAuthFlow
	UserID    *uuid.UUID // nil for the test flow
	ExpiresAt time.Time
}

// OAuthStateStore issues single-use CSRF states.
type OAuthStateStore interface {
	// Issue creates and remembers a new state.
	Issue(flow OAuthFlow, userID *uuid.UUID) (*OAuthState, error)

	// Consume returns the state and forgets it. Unknown or expired states fail.
	Consume(value string) (*OAuthState, error)
}

// GoogleOAuthService runs the Google consent flow for Business Profile access.
type GoogleOAuthService interface {
	// AuthCodeURL builds the consent URL for the given state.
	AuthCodeURL(state *OAuthState) string

	// Exchange trades an authorization code for tokens.
	Exchange(ctx context.Context, code string, flow OAuthFlow) (*entity.OAuthToken, error)

	// Refresh returns a usable token, refreshing it when expired.
	// The bool reports whether the access token changed.
	Refresh(ctx context.Context, token *entity.OAuthToken) (*entity.OAuthToken, bool, error)
}
