package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	mockUc "nativoseo/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountFixture(t *testing.T) (*testServer, *mockUc.MockBusinessProfileUsecase) {
	t.Helper()

	srv := newTestServer(t)
	uc := mockUc.NewMockBusinessProfileUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{Usecase: uc})

	srv.e.GET("/test-accounts", h.LiveAccounts, srv.auth)
	srv.e.GET("/test-locations/:accountId", h.LiveLocations, srv.auth)
	srv.e.GET("/accounts/", h.CachedAccounts, srv.auth)
	srv.e.GET("/accounts/:accountId/locations", h.CachedLocations, srv.auth)

	return srv, uc
}

func TestAccountHandler_LiveAccounts(t *testing.T) {
	srv, uc := newAccountFixture(t)
	uc.EXPECT().ListAccounts(mock.Anything, srv.userID).Return([]*entity.GoogleAccount{
		{AccountID: "111", AccountName: "Panadería Sol", Type: "PERSONAL", Role: "PRIMARY_OWNER"},
	}, nil)

	rec := srv.do(t, httptest.NewRequest(http.MethodGet, "/test-accounts", nil), true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string][]LiveAccount](t, rec)
	require.Len(t, body["accounts"], 1)
	assert.Equal(t, "accounts/111", body["accounts"][0].Name)
	assert.Equal(t, "Panadería Sol", body["accounts"][0].AccountName)
	assert.Equal(t, "PRIMARY_OWNER", body["accounts"][0].Role)
}

func TestAccountHandler_LiveLocations(t *testing.T) {
	t.Run("upstream shape", func(t *testing.T) {
		srv, uc := newAccountFixture(t)
		uc.EXPECT().ListLocations(mock.Anything, srv.userID, "111").Return([]*entity.Location{
			{LocationID: "9", Title: "Sol Centro", Address: "Calle Mayor 1, Madrid", Phone: "+34 600", Status: "OPEN"},
			{LocationID: "10", Title: "Sol Norte"},
		}, nil)

		rec := srv.do(t, httptest.NewRequest(http.MethodGet, "/test-locations/111", nil), true)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[map[string][]LiveLocation](t, rec)
		require.Len(t, body["locations"], 2)
		first := body["locations"][0]
		assert.Equal(t, "locations/9", first.Name)
		require.NotNil(t, first.StorefrontAddress)
		assert.Equal(t, "Calle Mayor 1, Madrid", first.StorefrontAddress.FormattedAddress)
		assert.Equal(t, "+34 600", first.PhoneNumbers.PrimaryPhone)
		assert.Equal(t, "OPEN", first.BusinessStatus)
		assert.Nil(t, body["locations"][1].StorefrontAddress)
	})

	t.Run("google not connected", func(t *testing.T) {
		srv, uc := newAccountFixture(t)
		uc.EXPECT().ListLocations(mock.Anything, srv.userID, "111").Return(nil, domainerrors.ErrGoogleNotConnected)

		rec := srv.do(t, httptest.NewRequest(http.MethodGet, "/test-locations/111", nil), true)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "GOOGLE_NOT_CONNECTED", decodeError(t, rec).Code)
	})
}

func TestAccountHandler_Cached(t *testing.T) {
	srv, uc := newAccountFixture(t)
	rowID := uuid.New()
	uc.EXPECT().CachedAccounts(mock.Anything, srv.userID).Return([]*entity.GoogleAccount{
		{ID: rowID, UserID: srv.userID, AccountID: "111", AccountName: "Panadería Sol"},
	}, nil)
	uc.EXPECT().CachedLocations(mock.Anything, srv.userID, "111").Return([]*entity.Location{
		{ID: uuid.New(), GoogleAccountID: rowID, LocationID: "9", Title: "Sol Centro", Phone: "+34 600"},
	}, nil)

	rec := srv.do(t, httptest.NewRequest(http.MethodGet, "/accounts/", nil), true)
	require.Equal(t, http.StatusOK, rec.Code)
	accounts := decodeBody[[]GoogleAccountResponse](t, rec)
	require.Len(t, accounts, 1)
	assert.Equal(t, rowID, accounts[0].ID)
	assert.Equal(t, "111", accounts[0].AccountID)

	rec = srv.do(t, httptest.NewRequest(http.MethodGet, "/accounts/111/locations", nil), true)
	require.Equal(t, http.StatusOK, rec.Code)
	locations := decodeBody[[]LocationResponse](t, rec)
	require.Len(t, locations, 1)
	assert.Equal(t, "Sol Centro", locations[0].LocationName)
	assert.Equal(t, "+34 600", locations[0].PhoneNumber)
	assert.Equal(t, rowID, locations[0].GoogleAccountID)
}
