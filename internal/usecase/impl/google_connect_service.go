package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "nativoseo/internal/delivery/context"
	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"
	"nativoseo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type googleConnectService struct {
	tokenRepo  repository.OAuthTokenRepository
	oauth      service.GoogleOAuthService
	stateStore service.OAuthStateStore
	logger     *slog.Logger
}

// GoogleConnectServiceParams holds dependencies for the Google connect flow.
type GoogleConnectServiceParams struct {
	fx.In

	TokenRepo  repository.OAuthTokenRepository
	OAuth      service.GoogleOAuthService
	StateStore service.OAuthStateStore
	Logger     *slog.Logger
}

// NewGoogleConnectService is the constructor for googleConnectService.
func NewGoogleConnectService(params GoogleConnectServiceParams) usecase.GoogleConnectUsecase {
	return &googleConnectService{
		tokenRepo:  params.TokenRepo,
		oauth:      params.OAuth,
		stateStore: params.StateStore,
		logger:     params.Logger,
	}
}

func (srv *googleConnectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ConsentURL issues a CSRF state bound to the flow and returns the consent URL.
func (srv *googleConnectService) ConsentURL(ctx context.Context, flow service.OAuthFlow, userID *uuid.UUID) (string, error) {
	if flow == service.OAuthFlowBound && userID == nil {
		return "", domainerrors.ErrUnauthorized
	}

	state, err := srv.stateStore.Issue(flow, userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue oauth state")
	}

	srv.log(ctx).Debug("Issued oauth state", slog.String("flow", string(flow)))

	return srv.oauth.AuthCodeURL(state), nil
}

// HandleCallback consumes the state, exchanges the code and, for bound flows, stores the tokens.
func (srv *googleConnectService) HandleCallback(ctx context.Context, code, state string) (*usecase.CallbackOutput, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domainerrors.ErrOAuthCodeInvalid
	}

	oauthState, err := srv.stateStore.Consume(state)
	if err != nil {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	token, err := srv.oauth.Exchange(ctx, code, oauthState.Flow)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WithDetails(err.Error())
	}

	output := &usecase.CallbackOutput{
		Flow:   oauthState.Flow,
		UserID: oauthState.UserID,
		Token:  token,
	}

	if oauthState.Flow == service.OAuthFlowBound && oauthState.UserID != nil {
		token.UserID = *oauthState.UserID
		if err := srv.tokenRepo.Upsert(ctx, token); err != nil {
			return nil, err
		}
		srv.log(ctx).Info("Stored google credentials", slog.String("userID", oauthState.UserID.String()))
	}

	return output, nil
}

// SaveToken stores a token pair obtained through the test flow.
func (srv *googleConnectService) SaveToken(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string) error {
	if strings.TrimSpace(accessToken) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("access_token is required")
	}

	err := srv.tokenRepo.Upsert(ctx, &entity.OAuthToken{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Saved google credentials", slog.String("userID", userID.String()))

	return nil
}
