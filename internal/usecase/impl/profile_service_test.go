package impl

import (
	"context"
	"testing"

	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	mockRepo "nativoseo/internal/mocks/repository"
	mockSvc "nativoseo/internal/mocks/service"
	"nativoseo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   usecase.BusinessProfileUsecase
	cacheRepo *mockRepo.MockBusinessCacheRepository
	tokenRepo *mockRepo.MockOAuthTokenRepository
	oauth     *mockSvc.MockGoogleOAuthService
	client    *mockSvc.MockBusinessProfileClient
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	cacheRepo := mockRepo.NewMockBusinessCacheRepository(t)
	tokenRepo := mockRepo.NewMockOAuthTokenRepository(t)
	oauth := mockSvc.NewMockGoogleOAuthService(t)
	client := mockSvc.NewMockBusinessProfileClient(t)

	return profileServiceFixtures{
		service: NewBusinessProfileService(BusinessProfileServiceParams{
			CacheRepo: cacheRepo,
			TokenRepo: tokenRepo,
			OAuth:     oauth,
			Client:    client,
			Logger:    newDiscardLogger(),
		}),
		cacheRepo: cacheRepo,
		tokenRepo: tokenRepo,
		oauth:     oauth,
		client:    client,
	}
}

func TestBusinessProfileService_ListAccounts(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.client.EXPECT().ListAccounts(ctx, creds).Return([]*entity.GoogleAccount{
		{Name: "accounts/1", AccountID: "1", AccountName: "Panadería Sol"},
	}, nil)

	accounts, err := fx.service.ListAccounts(ctx, userID)

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, userID, accounts[0].UserID)
}

func TestBusinessProfileService_ListAccounts_UpstreamFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.client.EXPECT().ListAccounts(ctx, creds).Return(nil, errors.New("googleapi: Error 403"))

	_, err := fx.service.ListAccounts(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestBusinessProfileService_ListLocations_StripsAccountPrefix(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)

	fx.client.EXPECT().ListLocations(ctx, creds, "42").Return([]*entity.Location{{LocationID: "7"}}, nil)

	locations, err := fx.service.ListLocations(ctx, userID, "accounts/42")

	require.NoError(t, err)
	assert.Len(t, locations, 1)
}

func TestBusinessProfileService_CachedAccounts_ServesCache(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	cached := []*entity.GoogleAccount{{ID: uuid.New(), AccountID: "1"}}

	fx.cacheRepo.EXPECT().FindAccounts(ctx, userID).Return(cached, nil)

	accounts, err := fx.service.CachedAccounts(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, cached, accounts)
}

func TestBusinessProfileService_CachedAccounts_FillsCacheOnFirstUse(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)
	live := []*entity.GoogleAccount{{AccountID: "1"}}
	stored := []*entity.GoogleAccount{{ID: uuid.New(), AccountID: "1"}}

	fx.cacheRepo.EXPECT().FindAccounts(ctx, userID).Return(nil, nil).Once()
	fx.client.EXPECT().ListAccounts(ctx, creds).Return(live, nil)
	fx.cacheRepo.EXPECT().SaveAccounts(ctx, userID, live).Return(nil)
	fx.cacheRepo.EXPECT().FindAccounts(ctx, userID).Return(stored, nil).Once()

	accounts, err := fx.service.CachedAccounts(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored, accounts)
}

func TestBusinessProfileService_CachedLocations_SaveFailureReturnsLive(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	creds := expectCredentials(fx.tokenRepo, fx.oauth, userID)
	live := []*entity.Location{{LocationID: "7"}}

	fx.cacheRepo.EXPECT().FindLocations(ctx, userID, "1").Return(nil, nil)
	fx.client.EXPECT().ListLocations(ctx, creds, "1").Return(live, nil)
	fx.cacheRepo.EXPECT().SaveLocations(ctx, userID, "1", live).Return(errors.New("disk full"))

	locations, err := fx.service.CachedLocations(ctx, userID, "1")

	require.NoError(t, err)
	assert.Equal(t, live, locations)
}

func TestBusinessProfileService_NotConnected(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	fx.tokenRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(nil, repository.ErrOAuthTokenNotFound)

	_, err := fx.service.ListAccounts(context.Background(), userID)

	require.ErrorIs(t, err, domainerrors.ErrGoogleNotConnected)
}
