package dashboard

import (
	"context"
	"log/slog"

	"nativoseo/internal/dashboard/localstore"
	"nativoseo/internal/errors"
	"nativoseo/pkg/client"
)

// Session is the auth context: the stored token and the profile fetched with it.
type Session struct {
	api    API
	store  *localstore.Store
	logger *slog.Logger
}

// Authenticated reports whether a token is stored.
func (s *Session) Authenticated() bool {
	return s.store.Token() != ""
}

// User is the cached profile, nil before the first successful fetch.
func (s *Session) User() *client.User {
	return s.store.User()
}

// Login exchanges credentials for a token, stores it, then fetches the profile
// with it. A failed profile fetch leaves no session behind.
func (s *Session) Login(ctx context.Context, username, password string) (*client.User, error) {
	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}

	if err := s.store.SetToken(token.AccessToken); err != nil {
		return nil, errors.Wrap(err, "store token")
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.discard()

		return nil, errors.Wrap(err, "fetch profile")
	}

	if err := s.store.SetUser(user); err != nil {
		return nil, errors.Wrap(err, "store profile")
	}

	s.logger.Info("Logged in", slog.String("username", user.Username))

	return user, nil
}

// Register creates the user and logs in with the same credentials.
func (s *Session) Register(ctx context.Context, in client.RegisterRequest) (*client.User, error) {
	if _, err := s.api.Register(ctx, in); err != nil {
		return nil, errors.Wrap(err, "register")
	}

	return s.Login(ctx, in.Username, in.Password)
}

// Logout forgets the token and profile.
func (s *Session) Logout() error {
	return errors.Wrap(s.store.ClearSession(), "clear session")
}

// Current refetches the profile for the stored token. Any failure invalidates the
// session.
func (s *Session) Current(ctx context.Context) (*client.User, error) {
	if !s.Authenticated() {
		return nil, ErrLoginRequired
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.discard()

		return nil, errors.Wrap(err, "fetch profile")
	}

	if err := s.store.SetUser(user); err != nil {
		s.logger.Warn("Failed to cache profile", slog.Any("error", err))
	}

	return user, nil
}

// SaveGoogleToken hands Google tokens obtained elsewhere to the backend.
func (s *Session) SaveGoogleToken(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken == "" {
		return errors.New("access token is required")
	}

	return errors.Wrap(s.api.SaveToken(ctx, accessToken, refreshToken), "save google token")
}

func (s *Session) discard() {
	if err := s.store.ClearSession(); err != nil {
		s.logger.Error("Failed to clear session", slog.Any("error", err))
	}
}
