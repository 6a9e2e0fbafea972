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
	"nativoseo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type businessProfileService struct {
	cacheRepo   repository.BusinessCacheRepository
	client      service.BusinessProfileClient
	credentials *credentialResolver
	logger      *slog.Logger
}

// BusinessProfileServiceParams holds dependencies for the account and location listings.
type BusinessProfileServiceParams struct {
	fx.In

	CacheRepo repository.BusinessCacheRepository
	TokenRepo repository.OAuthTokenRepository
	OAuth     service.GoogleOAuthService
	Client    service.BusinessProfileClient
	Logger    *slog.Logger
}

// NewBusinessProfileService is the constructor for businessProfileService.
func NewBusinessProfileService(params BusinessProfileServiceParams) usecase.BusinessProfileUsecase {
	return &businessProfileService{
		cacheRepo:   params.CacheRepo,
		client:      params.Client,
		credentials: newCredentialResolver(params.TokenRepo, params.OAuth, params.Logger),
		logger:      params.Logger,
	}
}

func (srv *businessProfileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *businessProfileService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.GoogleAccount, error) {
	creds, err := srv.credentials.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts, err := srv.client.ListAccounts(ctx, creds)
	if err != nil {
		return nil, upstreamError(ctx, srv.logger, "list accounts", err)
	}

	for _, account := range accounts {
		account.UserID = userID
	}

	return accounts, nil
}

func (srv *businessProfileService) ListLocations(ctx context.Context, userID uuid.UUID, accountID string) ([]*entity.Location, error) {
	if accountID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("account_id is required")
	}

	creds, err := srv.credentials.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	locations, err := srv.client.ListLocations(ctx, creds, entity.BareID(accountID))
	if err != nil {
		return nil, upstreamError(ctx, srv.logger, "list locations", err)
	}

	return locations, nil
}

// CachedAccounts serves the cached accounts; the first call fetches and stores them.
func (srv *businessProfileService) CachedAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.GoogleAccount, error) {
	cached, err := srv.cacheRepo.FindAccounts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cached accounts")
	}
	if len(cached) > 0 {
		return cached, nil
	}

	accounts, err := srv.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := srv.cacheRepo.SaveAccounts(ctx, userID, accounts); err != nil {
		srv.log(ctx).Warn("Failed to cache accounts", slog.Any("error", err))

		return accounts, nil
	}

	srv.log(ctx).Info("Cached accounts", slog.Int("count", len(accounts)))

	return srv.cacheRepo.FindAccounts(ctx, userID)
}

// CachedLocations serves the cached locations of an account; the first call fetches and stores them.
func (srv *businessProfileService) CachedLocations(ctx context.Context, userID uuid.UUID, accountID string) ([]*entity.Location, error) {
	accountID = entity.BareID(accountID)

	cached, err := srv.cacheRepo.FindLocations(ctx, userID, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cached locations")
	}
	if len(cached) > 0 {
		return cached, nil
	}

	locations, err := srv.ListLocations(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if err := srv.cacheRepo.SaveLocations(ctx, userID, accountID, locations); err != nil {
		srv.log(ctx).Warn("Failed to cache locations", slog.String("accountID", accountID), slog.Any("error", err))

		return locations, nil
	}

	return srv.cacheRepo.FindLocations(ctx, userID, accountID)
}
