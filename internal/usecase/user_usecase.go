// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"nativoseo/internal/domain/entity"
	"nativoseo/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput holds form-encoded credentials.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int // seconds
	User        *entity.User
}

// CallbackOutput is the result of a finished consent round trip.
type CallbackOutput struct {
	Flow   service.OAuthFlow
	UserID *uuid.UUID
	Token  *entity.OAuthToken
}

// UserUsecase covers registration, login and the session profile.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

// GoogleConnectUsecase links a user to Google Business Profile.
type GoogleConnectUsecase interface {
	// ConsentURL issues a state and returns the Google consent URL. userID is required for OAuthFlowBound.
	ConsentURL(ctx context.Context, flow service.OAuthFlow, userID *uuid.UUID) (string, error)

	// HandleCallback validates the state and exchanges the code. Bound flows persist the tokens.
	HandleCallback(ctx context.Context, code, state string) (*CallbackOutput, error)

	// SaveToken stores an externally obtained token pair for the user.
	SaveToken(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string) error
}
