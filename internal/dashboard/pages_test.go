package dashboard

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"nativoseo/internal/errors"
	"nativoseo/internal/infra/qrcode"
	mockSvc "nativoseo/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountsPage_FailedLoadShowsExamples(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.Fail("GET /test-accounts", http.StatusBadGateway)

	page := h.app.Accounts()
	require.NoError(t, page.Load(context.Background()))

	assert.True(t, page.Fallback)
	assert.Equal(t, exampleAccounts(), page.Accounts)

	var out strings.Builder
	page.Render(&out)
	assert.Contains(t, out.String(), AccountsFallbackBanner)
}

func TestAccountsPage_Load(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	page := h.app.Accounts()
	require.NoError(t, page.Load(context.Background()))

	require.Len(t, page.Accounts, 1)
	assert.Equal(t, "acc-1", page.Accounts[0].ID())
	assert.Empty(t, page.Banner)
}

func TestLocationsPage_FailedLoadShowsExamples(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.Fail("GET /test-locations/{accountId}", http.StatusBadGateway)

	page := h.app.Locations("acc-1")
	require.NoError(t, page.Load(context.Background()))

	assert.Equal(t, LocationsFallbackBanner, page.Banner)
	require.Len(t, page.Cards, 1)
	assert.Equal(t, ExampleLocationName, page.Cards[0].Location.Title)
}

func TestHomePage_Load(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.activate("loc-1", "loc-2")

	page := h.app.Home()
	require.NoError(t, page.Load(context.Background()))

	require.NotNil(t, page.User)
	assert.Equal(t, "ana", page.User.Username)
	assert.Equal(t, 1, page.AccountCount)
	assert.Equal(t, 2, page.ActiveLocations)
	assert.Empty(t, page.Banner)
}

func TestHomePage_CounterFailureShowsBanner(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.Fail("GET /test-accounts", http.StatusInternalServerError)

	page := h.app.Home()
	require.NoError(t, page.Load(context.Background()))

	assert.Equal(t, ProfileFallbackBanner, page.Banner)
	assert.Equal(t, len(exampleAccounts()), page.AccountCount)
}

func TestHomePage_ProfileFailureRedirects(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.Fail("GET /auth/me", http.StatusServiceUnavailable)

	page := h.app.Home()
	err := page.Load(context.Background())

	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.False(t, h.app.Session().Authenticated())
	assert.Contains(t, h.out.String(), LoginPath)
	assert.Zero(t, countCalls(h.backend.Calls(), "GET /test-accounts"))
}

func TestHomePage_WithoutSessionRedirects(t *testing.T) {
	h := newHarness(t)

	err := h.app.Home().Load(context.Background())

	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Empty(t, h.backend.Calls())
	assert.Contains(t, h.out.String(), LoginPath)
}

func TestConnectGooglePage(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	page := h.app.ConnectGoogle(qrcode.NewQRCodeService(0, "L"))
	require.NoError(t, page.Start(context.Background()))

	assert.Contains(t, page.AuthURL, "accounts.google.com")
	assert.NotEmpty(t, page.QR)

	require.NoError(t, page.SaveTokens(context.Background(), "ya29.token", "1//refresh"))
	assert.Equal(t, msgTokensSaved, page.Notice.Text)
}

func TestConnectGooglePage_Failures(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.Fail("GET /auth/login-test", http.StatusBadGateway)
	h.backend.Fail("GET /save-token", http.StatusInternalServerError)

	page := h.app.ConnectGoogle(nil)

	require.Error(t, page.Start(context.Background()))
	assert.Equal(t, msgConnectFailed, page.Notice.Text)
	assert.Empty(t, page.AuthURL)

	require.Error(t, page.SaveTokens(context.Background(), "ya29.token", ""))
	assert.Equal(t, msgTokensFailed, page.Notice.Text)
}

func TestConnectGooglePage_QRFailureKeepsURL(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	qr := mockSvc.NewMockQRCodeService(t)
	qr.EXPECT().GenerateTerminal("https://accounts.google.com/o/oauth2/auth?state=abc").
		Return("", errors.New("content too long"))

	page := h.app.ConnectGoogle(qr)
	require.NoError(t, page.Start(context.Background()))

	assert.NotEmpty(t, page.AuthURL)
	assert.Empty(t, page.QR)
	assert.Nil(t, page.Notice)
}
