package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"nativoseo/config"
	"nativoseo/internal/delivery/api/response"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUsecase    usecase.UserUsecase
	ConnectUsecase usecase.GoogleConnectUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// AuthHandler serves session auth and the Google connect flow.
type AuthHandler struct {
	users    usecase.UserUsecase
	connect  usecase.GoogleConnectUsecase
	frontURL string
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{
		users:   params.UserUsecase,
		connect: params.ConnectUsecase,
		logger:  params.Logger,
	}
	if params.Config != nil && params.Config.GoogleOAuth != nil {
		h.frontURL = params.Config.GoogleOAuth.FrontendConnectURL
	}

	return h
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Register creates a user account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindBody(c, &req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.users.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// Token logs in with form encoded credentials.
func (h *AuthHandler) Token(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" || password == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("username y password son obligatorios"))
	}

	out, err := h.users.Login(c.Request().Context(), &usecase.LoginInput{Username: username, Password: password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresIn:   out.ExpiresIn,
	})
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.users.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// LoginTest returns a consent URL whose tokens are handed back to the frontend.
func (h *AuthHandler) LoginTest(c echo.Context) error {
	authURL, err := h.connect.ConsentURL(c.Request().Context(), service.OAuthFlowTest, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AuthURLResponse{AuthURL: authURL})
}

// Login returns a consent URL bound to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	authURL, err := h.connect.ConsentURL(c.Request().Context(), service.OAuthFlowBound, &userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AuthURLResponse{AuthURL: authURL})
}

// Callback finishes a bound consent round trip and stores the tokens.
func (h *AuthHandler) Callback(c echo.Context) error {
	out, err := h.callback(c)
	if err != nil {
		return err
	}
	if out.UserID != nil {
		requestLogger(c, h.logger).Info("Google account connected", slog.String("user_id", out.UserID.String()))
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Autenticación exitosa"})
}

// CallbackTest finishes a test consent round trip and redirects the tokens to the
// frontend connect page, or returns them when no frontend is configured.
func (h *AuthHandler) CallbackTest(c echo.Context) error {
	out, err := h.callback(c)
	if err != nil {
		return err
	}

	if h.frontURL == "" {
		return response.Success(c, http.StatusOK, map[string]string{
			"access_token":  out.Token.AccessToken,
			"refresh_token": out.Token.RefreshToken,
		})
	}

	target, err := url.Parse(h.frontURL)
	if err != nil {
		return errors.Wrap(err, "parse frontend connect url")
	}
	q := target.Query()
	q.Set("access_token", out.Token.AccessToken)
	if out.Token.RefreshToken != "" {
		q.Set("refresh_token", out.Token.RefreshToken)
	}
	target.RawQuery = q.Encode()

	return c.Redirect(http.StatusFound, target.String())
}

func (h *AuthHandler) callback(c echo.Context) (*usecase.CallbackOutput, error) {
	if reason := c.QueryParam("error"); reason != "" {
		return nil, errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails(reason))
	}

	out, err := h.connect.HandleCallback(c.Request().Context(), c.QueryParam("code"), c.QueryParam("state"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return out, nil
}

type saveTokenRequest struct {
	AccessToken  string `query:"access_token" validate:"required"`
	RefreshToken string `query:"refresh_token"`
}

// SaveToken stores a token pair obtained through the test flow.
func (h *AuthHandler) SaveToken(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req saveTokenRequest
	if err := bindQuery(c, &req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.connect.SaveToken(c.Request().Context(), userID, req.AccessToken, req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Token guardado"})
}
