package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"nativoseo/config"
	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/service"
	mockUc "nativoseo/internal/mocks/usecase"
	"nativoseo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	srv     *testServer
	users   *mockUc.MockUserUsecase
	connect *mockUc.MockGoogleConnectUsecase
}

func newAuthFixture(t *testing.T, frontendURL string) *authFixture {
	t.Helper()

	srv := newTestServer(t)
	users := mockUc.NewMockUserUsecase(t)
	connect := mockUc.NewMockGoogleConnectUsecase(t)

	h := NewAuthHandler(AuthHandlerParams{
		UserUsecase:    users,
		ConnectUsecase: connect,
		Config:         &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{FrontendConnectURL: frontendURL}},
		Logger:         newDiscardLogger(),
	})

	srv.e.POST("/auth/register", h.Register)
	srv.e.POST("/auth/token", h.Token)
	srv.e.GET("/auth/me", h.Me, srv.auth)
	srv.e.GET("/auth/login-test", h.LoginTest)
	srv.e.GET("/auth/login", h.Login, srv.auth)
	srv.e.GET("/auth/callback", h.Callback)
	srv.e.GET("/auth/callback-test", h.CallbackTest)
	srv.e.GET("/save-token", h.SaveToken, srv.auth)

	return &authFixture{srv: srv, users: users, connect: connect}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates the user", func(t *testing.T) {
		f := newAuthFixture(t, "")
		created := &entity.User{ID: uuid.New(), Username: "ana", Email: "ana@example.com", IsActive: true, CreatedAt: time.Now()}
		f.users.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Username: "ana",
			Email:    "ana@example.com",
			Password: "secreto1",
		}).Return(created, nil)

		rec := f.srv.do(t, newJSONRequest(http.MethodPost, "/auth/register",
			`{"username":"ana","email":"ana@example.com","password":"secreto1"}`), false)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[map[string]any](t, rec)
		assert.Equal(t, created.ID.String(), body["id"])
		assert.Equal(t, "ana", body["username"])
		assert.Equal(t, true, body["is_active"])
		assert.NotContains(t, body, "hashed_password")
	})

	t.Run("rejects an invalid email before calling the usecase", func(t *testing.T) {
		f := newAuthFixture(t, "")

		rec := f.srv.do(t, newJSONRequest(http.MethodPost, "/auth/register",
			`{"username":"ana","email":"no-es-email","password":"secreto1"}`), false)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errBody := decodeError(t, rec)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errBody.Code)
		assert.Contains(t, errBody.Details, "email")
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.users.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := f.srv.do(t, newJSONRequest(http.MethodPost, "/auth/register",
			`{"username":"ana","email":"ana@example.com","password":"secreto1"}`), false)

		require.Equal(t, http.StatusConflict, rec.Code)
		errBody := decodeError(t, rec)
		assert.Equal(t, "USER_ALREADY_EXISTS", errBody.Code)
		assert.Equal(t, "El email ya está registrado", errBody.Detail)
	})
}

func TestAuthHandler_Token(t *testing.T) {
	formRequest := func(values url.Values) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(values.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

		return req
	}

	t.Run("issues a bearer token", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.users.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "ana", Password: "secreto1"}).
			Return(&usecase.LoginOutput{AccessToken: "jwt", TokenType: "bearer", ExpiresIn: 1800}, nil)

		rec := f.srv.do(t, formRequest(url.Values{"username": {" ana "}, "password": {"secreto1"}}), false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[TokenResponse](t, rec)
		assert.Equal(t, "jwt", body.AccessToken)
		assert.Equal(t, "bearer", body.TokenType)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.users.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec := f.srv.do(t, formRequest(url.Values{"username": {"ana"}, "password": {"mala"}}), false)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newAuthFixture(t, "")

		rec := f.srv.do(t, formRequest(url.Values{"username": {"ana"}}), false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("without bearer", func(t *testing.T) {
		f := newAuthFixture(t, "")

		rec := f.srv.do(t, httptest.NewRequest(http.MethodGet, "/auth/me", nil), false)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)
	})

	t.Run("returns the caller", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.users.EXPECT().Me(mock.Anything, f.srv.userID).
			Return(&entity.User{ID: f.srv.userID, Username: "ana", Email: "ana@example.com", IsActive: true}, nil)

		rec := f.srv.do(t, httptest.NewRequest(http.MethodGet, "/auth/me", nil), true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ana", decodeBody[UserResponse](t, rec).Username)
	})
}

func TestAuthHandler_ConsentURLs(t *testing.T) {
	f := newAuthFixture(t, "")
	f.connect.EXPECT().ConsentURL(mock.Anything, service.OAuthFlowTest, (*uuid.UUID)(nil)).
		Return("https://accounts.google.com/o/oauth2/auth?state=t", nil)
	f.connect.EXPECT().ConsentURL(mock.Anything, service.OAuthFlowBound, &f.srv.userID).
		Return("https://accounts.google.com/o/oauth2/auth?state=b", nil)

	rec := f.srv.do(t, httptest.NewRequest(http.MethodGet, "/auth/login-test", nil), false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=t", decodeBody[AuthURLResponse](t, rec).AuthURL)

	rec = f.srv.do(t, httptest.NewRequest(http.MethodGet, "/auth/login", nil), true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=b", decodeBody[AuthURLResponse](t, rec).AuthURL)
}

func TestAuthHandler_Callback(t *testing.T) {
	t.Run("bound flow", func(t *testing.T) {
		f := newAuthFixture(t, "")
		userID := uuid.New()
		f.connect.EXPECT().HandleCallback(mock.Anything, "code-1", "state-1").Return(&usecase.CallbackOutput{
			Flow:   service.OAuthFlowBound,
			UserID: &userID,
			Token:  &entity.OAuthToken{AccessToken: "ya29"},
		}, nil)

		rec := f.srv.do(t, httptest.NewRequest(http.MethodGet, "/auth/callback?code=code-1&state=state-1", nil), false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Autenticación exitosa", decodeBody[MessageResponse](t, rec).Message)
	})

	t.Run("consent denied by the user", func(t *testing.T) {
		f := newAuthFixture(t, "")

		rec := f.srv.do(t, httptest.NewRequest(http.MethodGet, "/auth/callback?error=access_denied", nil), false)

		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "OAUTH_FAILED", decodeError(t, rec).Code)
	})

	t.Run("invalid state", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.connect.EXPECT().HandleCallback(mock.Anything, "code-1", "forged").Return(nil, domainerrors.ErrOAuthStateInvalid)

		rec := f.srv.do(t, httptest.NewRequest(http.MethodGet, "/auth/callback?code=code-1&state=forged", nil), false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_CallbackTest(t *testing.T) {
	out := &usecase.CallbackOutput{
		Flow:  service.OAuthFlowTest,
		Token: &entity.OAuthToken{AccessToken: "ya29.a", RefreshToken: "1//r"},
	}

	t.Run("redirects to the frontend", func(t *testing.T) {
		f := newAuthFixture(t, "http://localhost:3000/connect-google")
		f.connect.EXPECT().HandleCallback(mock.Anything, "c", "s").Return(out, nil)

		rec := f.srv.do(t, httptest.NewRequest(http.MethodGet, "/auth/callback-test?code=c&state=s", nil), false)

		require.Equal(t, http.StatusFound, rec.Code)
		location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
		require.NoError(t, err)
		assert.Equal(t, "/connect-google", location.Path)
		assert.Equal(t, "ya29.a", location.Query().Get("access_token"))
		assert.Equal(t, "1//r", location.Query().Get("refresh_token"))
	})

	t.Run("returns the tokens without a frontend", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.connect.EXPECT().HandleCallback(mock.Anything, "c", "s").Return(out, nil)

		rec := f.srv.do(t, httptest.NewRequest(http.MethodGet, "/auth/callback-test?code=c&state=s", nil), false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ya29.a", decodeBody[map[string]string](t, rec)["access_token"])
	})
}

func TestAuthHandler_SaveToken(t *testing.T) {
	t.Run("stores the pair", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.connect.EXPECT().SaveToken(mock.Anything, f.srv.userID, "ya29.a", "1//r").Return(nil)

		rec := f.srv.do(t, httptest.NewRequest(http.MethodGet, "/save-token?access_token=ya29.a&refresh_token=1//r", nil), true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Token guardado", decodeBody[MessageResponse](t, rec).Message)
	})

	t.Run("access token is required", func(t *testing.T) {
		f := newAuthFixture(t, "")

		rec := f.srv.do(t, httptest.NewRequest(http.MethodGet, "/save-token?refresh_token=1//r", nil), true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Details, "access_token")
	})
}
