package impl

import (
	"context"
	"log/slog"

	deliverycontext "nativoseo/internal/delivery/context"
	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"

	"github.com/google/uuid"
)

// credentialResolver loads a user's Google token, refreshing and persisting it when expired.
type credentialResolver struct {
	tokenRepo repository.OAuthTokenRepository
	oauth     service.GoogleOAuthService
	logger    *slog.Logger
}

func newCredentialResolver(tokenRepo repository.OAuthTokenRepository, oauth service.GoogleOAuthService, logger *slog.Logger) *credentialResolver {
	return &credentialResolver{tokenRepo: tokenRepo, oauth: oauth, logger: logger}
}

func (r *credentialResolver) resolve(ctx context.Context, userID uuid.UUID) (*entity.OAuthToken, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	token, err := r.tokenRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOAuthTokenNotFound) {
			return nil, domainerrors.ErrGoogleNotConnected
		}

		return nil, errors.Wrap(err, "failed to load google credentials")
	}

	fresh, changed, err := r.oauth.Refresh(ctx, token)
	if err != nil {
		logger.Warn("Google token refresh failed", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrGoogleNotConnected.WrapMessage(err.Error())
	}

	if changed {
		if err := r.tokenRepo.Upsert(ctx, fresh); err != nil {
			// The fresh token is still usable for this request.
			logger.Error("Failed to persist refreshed google token", slog.Any("error", err))
		}
	}

	return fresh, nil
}

// upstreamError maps an upstream failure to the domain error, logging the cause.
func upstreamError(ctx context.Context, logger *slog.Logger, op string, err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, logger).Error("Business Profile call failed",
		slog.String("operation", op),
		slog.Any("error", err),
	)

	return domainerrors.ErrUpstreamFailed.WithDetails(err.Error())
}
