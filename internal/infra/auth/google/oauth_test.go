package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"nativoseo/config"
	"nativoseo/internal/domain/entity"
	"nativoseo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testOAuthConfig() *config.GoogleOAuthConfig {
	return &config.GoogleOAuthConfig{
		ClientID:     "test_client_id",
		ClientSecret: "test_secret",
		RedirectURI:  "http://localhost:8000/auth/callback",
		TestRedirect: "http://localhost:8000/auth/callback-test",
		Scopes:       []string{"https://www.googleapis.com/auth/business.manage"},
	}
}

func newTokenServer(t *testing.T, handler func(form url.Values) string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handler(r.PostForm)))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestOAuthService_AuthCodeURL(t *testing.T) {
	svc := NewOAuthService(&config.Config{GoogleOAuth: testOAuthConfig()})

	tests := []struct {
		name     string
		flow     service.OAuthFlow
		redirect string
	}{
		{name: "bound flow", flow: service.OAuthFlowBound, redirect: "http://localhost:8000/auth/callback"},
		{name: "test flow", flow: service.OAuthFlowTest, redirect: "http://localhost:8000/auth/callback-test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := svc.AuthCodeURL(&service.OAuthState{Value: "abc", Flow: tt.flow})

			parsed, err := url.Parse(raw)
			require.NoError(t, err)

			q := parsed.Query()
			assert.Equal(t, "accounts.google.com", parsed.Host)
			assert.Equal(t, "test_client_id", q.Get("client_id"))
			assert.Equal(t, tt.redirect, q.Get("redirect_uri"))
			assert.Equal(t, "abc", q.Get("state"))
			assert.Equal(t, "offline", q.Get("access_type"))
			assert.Equal(t, "consent", q.Get("prompt"))
			assert.Equal(t, "https://www.googleapis.com/auth/business.manage", q.Get("scope"))
		})
	}
}

func TestOAuthService_Exchange(t *testing.T) {
	srv := newTokenServer(t, func(form url.Values) string {
		assert.Equal(t, "authorization_code", form.Get("grant_type"))
		assert.Equal(t, "the-code", form.Get("code"))
		assert.Equal(t, "http://localhost:8000/auth/callback-test", form.Get("redirect_uri"))

		return `{"access_token":"ya29.a","refresh_token":"1//r","token_type":"Bearer","expires_in":3600}`
	})

	svc := newOAuthService(testOAuthConfig(), oauth2.Endpoint{
		TokenURL:  srv.URL,
		AuthStyle: oauth2.AuthStyleInParams,
	})

	tok, err := svc.Exchange(context.Background(), "the-code", service.OAuthFlowTest)
	require.NoError(t, err)
	assert.Equal(t, "ya29.a", tok.AccessToken)
	assert.Equal(t, "1//r", tok.RefreshToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	require.NotNil(t, tok.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *tok.ExpiresAt, time.Minute)
}

func TestOAuthService_RefreshKeepsValidToken(t *testing.T) {
	svc := newOAuthService(testOAuthConfig(), oauth2.Endpoint{TokenURL: "http://127.0.0.1:0"})
	expiry := time.Now().Add(time.Hour)
	token := &entity.OAuthToken{AccessToken: "a", RefreshToken: "r", ExpiresAt: &expiry}

	got, changed, err := svc.Refresh(context.Background(), token)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Same(t, token, got)
}

func TestOAuthService_RefreshExpiredToken(t *testing.T) {
	srv := newTokenServer(t, func(form url.Values) string {
		assert.Equal(t, "refresh_token", form.Get("grant_type"))
		assert.Equal(t, "r", form.Get("refresh_token"))

		return `{"access_token":"fresh","token_type":"Bearer","expires_in":3600}`
	})

	svc := newOAuthService(testOAuthConfig(), oauth2.Endpoint{
		TokenURL:  srv.URL,
		AuthStyle: oauth2.AuthStyleInParams,
	})
	expired := time.Now().Add(-time.Minute)
	token := &entity.OAuthToken{AccessToken: "stale", RefreshToken: "r", ExpiresAt: &expired}

	got, changed, err := svc.Refresh(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "fresh", got.AccessToken)
	assert.Equal(t, "r", got.RefreshToken)
	assert.Equal(t, "stale", token.AccessToken)
}

func TestOAuthService_RefreshWithoutRefreshToken(t *testing.T) {
	svc := newOAuthService(testOAuthConfig(), oauth2.Endpoint{TokenURL: "http://127.0.0.1:0"})
	expired := time.Now().Add(-time.Minute)

	_, _, err := svc.Refresh(context.Background(), &entity.OAuthToken{AccessToken: "stale", ExpiresAt: &expired})
	assert.Error(t, err)
}
