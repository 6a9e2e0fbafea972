package google

import (
	"context"
	"strings"
	"time"

	"nativoseo/config"
	"nativoseo/internal/domain/entity"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

// OAuthService runs the Business Profile consent flow with golang.org/x/oauth2.
type OAuthService struct {
	bound *oauth2.Config // redirects to /auth/callback
	test  *oauth2.Config // redirects to /auth/callback-test
	now   func() time.Time
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config) service.GoogleOAuthService {
	return newOAuthService(cfg.GoogleOAuth, googleoauth.Endpoint)
}

func newOAuthService(cfg *config.GoogleOAuthConfig, endpoint oauth2.Endpoint) *OAuthService {
	base := oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     endpoint,
		Scopes:       cfg.Scopes,
	}

	bound := base
	bound.RedirectURL = cfg.RedirectURI

	test := base
	test.RedirectURL = cfg.TestRedirect
	if test.RedirectURL == "" {
		test.RedirectURL = cfg.RedirectURI
	}

	return &OAuthService{
		bound: &bound,
		test:  &test,
		now:   time.Now,
	}
}

func (s *OAuthService) configFor(flow service.OAuthFlow) *oauth2.Config {
	if flow == service.OAuthFlowTest {
		return s.test
	}

	return s.bound
}

// AuthCodeURL asks for offline access so Google returns a refresh token.
func (s *OAuthService) AuthCodeURL(state *service.OAuthState) string {
	return s.configFor(state.Flow).AuthCodeURL(
		state.Value,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

// Exchange trades an authorization code for tokens.
func (s *OAuthService) Exchange(ctx context.Context, code string, flow service.OAuthFlow) (*entity.OAuthToken, error) {
	conf := s.configFor(flow)

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	return fromOAuth2Token(tok, strings.Join(conf.Scopes, " ")), nil
}

// Refresh returns token untouched while it is valid, otherwise a refreshed copy.
func (s *OAuthService) Refresh(ctx context.Context, token *entity.OAuthToken) (*entity.OAuthToken, bool, error) {
	if !token.IsExpired(s.now().Add(time.Minute)) {
		return token, false, nil
	}
	if token.RefreshToken == "" {
		return nil, false, errors.New("access token expired and no refresh token is stored")
	}

	src := s.bound.TokenSource(ctx, toOAuth2Token(token))
	fresh, err := src.Token()
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to refresh google token")
	}

	refreshed := *token
	refreshed.AccessToken = fresh.AccessToken
	if fresh.RefreshToken != "" {
		refreshed.RefreshToken = fresh.RefreshToken
	}
	if fresh.TokenType != "" {
		refreshed.TokenType = fresh.TokenType
	}
	refreshed.ExpiresAt = expiryOf(fresh)

	return &refreshed, refreshed.AccessToken != token.AccessToken, nil
}

func toOAuth2Token(token *entity.OAuthToken) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
	}
	if token.ExpiresAt != nil {
		tok.Expiry = *token.ExpiresAt
	}

	return tok
}

func fromOAuth2Token(tok *oauth2.Token, scopes string) *entity.OAuthToken {
	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &entity.OAuthToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tokenType,
		ExpiresAt:    expiryOf(tok),
		Scopes:       scopes,
	}
}

func expiryOf(tok *oauth2.Token) *time.Time {
	if tok.Expiry.IsZero() {
		return nil
	}
	expiry := tok.Expiry

	return &expiry
}
